package store

import (
	"testing"

	"github.com/avc-dev/address-book/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, name string, phones ...string) *model.Record {
	t.Helper()

	record, err := model.NewRecord(name)
	require.NoError(t, err)
	for _, phone := range phones {
		require.NoError(t, record.AddPhone(phone))
	}

	return record
}

func TestStore_PutAndGet(t *testing.T) {
	s := NewStore()

	record := newRecord(t, "Ann", "1234567890")
	require.NoError(t, s.Put(record))

	got, err := s.Get("Ann")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := NewStore()

	_, err := s.Get("Ann")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Get_CaseSensitive(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(newRecord(t, "Ann")))

	// Имена сравниваются посимвольно, без нормализации
	_, err := s.Get("ann")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Put_Overwrite(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Put(newRecord(t, "Ann", "1111111111")))
	require.NoError(t, s.Put(newRecord(t, "Ann", "2222222222")))

	// Last write wins: старые телефоны не сохраняются
	got, err := s.Get("Ann")
	require.NoError(t, err)
	require.Len(t, got.Phones, 1)
	assert.Equal(t, "2222222222", got.Phones[0].String())
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Put(newRecord(t, "Ann")))

	existed, err := s.Delete("Ann")
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = s.Get("Ann")
	assert.ErrorIs(t, err, ErrNotFound)

	// Повторное удаление - no-op, состояние не меняется
	existed, err = s.Delete("Ann")
	require.NoError(t, err)
	assert.False(t, existed)

	records, err := s.All()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_All_InsertionOrder(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Put(newRecord(t, "Charlie")))
	require.NoError(t, s.Put(newRecord(t, "Ann")))
	require.NoError(t, s.Put(newRecord(t, "Bob")))

	// Перезапись не меняет позицию записи
	require.NoError(t, s.Put(newRecord(t, "Charlie", "1234567890")))

	records, err := s.All()
	require.NoError(t, err)

	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.Name
	}
	assert.Equal(t, []string{"Charlie", "Ann", "Bob"}, names)
}
