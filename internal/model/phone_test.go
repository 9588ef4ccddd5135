package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "All digits", input: "1234567890"},
		{name: "Leading zeros", input: "0000000000"},
		{name: "Repeated digit", input: "9999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := ParsePhone(tt.input)
			require.NoError(t, err)

			// Валидный номер возвращается без изменений
			assert.Equal(t, tt.input, phone.String())
		})
	}
}

func TestParsePhone_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Too short", input: "123"},
		{name: "Too long", input: "12345678901"},
		{name: "Letters", input: "12345abcde"},
		{name: "Leading plus", input: "+380501234"},
		{name: "Separators", input: "123-456-78"},
		{name: "Inner space", input: "12345 6789"},
		{name: "Unicode digits", input: "١٢٣٤٥٦٧٨٩٠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePhone(tt.input)
			assert.ErrorIs(t, err, ErrInvalidPhone)
		})
	}
}
