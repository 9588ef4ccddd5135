package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contains(records []string, name string) bool {
	for _, record := range records {
		if record == name {
			return true
		}
	}
	return false
}

func upcomingNames(t *testing.T, uc *ContactUsecase, today time.Time) []string {
	t.Helper()

	records, err := uc.UpcomingBirthdays(today)
	require.NoError(t, err)

	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.Name
	}
	return names
}

func TestUpcomingBirthdays(t *testing.T) {
	uc := newTestUsecase(t)

	require.NoError(t, uc.AddContact("Ann", []string{"1234567890"}))
	require.NoError(t, uc.AddBirthday("Ann", "15.03.1990"))

	// 10 марта день рождения Анны попадает в недельное окно
	names := upcomingNames(t, uc, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, contains(names, "Ann"))

	// 20 марта окно уже закрыто - до следующего года
	names = upcomingNames(t, uc, time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	assert.False(t, contains(names, "Ann"))

	// В начале марта следующего года окно снова открывается
	names = upcomingNames(t, uc, time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC))
	assert.True(t, contains(names, "Ann"))
}

func TestAddBirthday_InvalidDate(t *testing.T) {
	uc := newTestUsecase(t)
	require.NoError(t, uc.AddContact("Ann", nil))

	err := uc.AddBirthday("Ann", "31.02.2024")
	assert.Error(t, err)

	_, err = uc.ShowBirthday("Ann")
	assert.ErrorIs(t, err, ErrNoBirthday)
}

func TestShowBirthday(t *testing.T) {
	uc := newTestUsecase(t)
	require.NoError(t, uc.AddContact("Ann", nil))
	require.NoError(t, uc.AddBirthday("Ann", "15.03.1990"))

	birthday, err := uc.ShowBirthday("Ann")
	require.NoError(t, err)
	assert.Equal(t, "15.03.1990", birthday.String())

	_, err = uc.ShowBirthday("Ghost")
	assert.ErrorIs(t, err, ErrContactNotFound)
}
