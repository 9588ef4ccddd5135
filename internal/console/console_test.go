package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/address-book/internal/config"
	"github.com/avc-dev/address-book/internal/repository"
	"github.com/avc-dev/address-book/internal/store"
	"github.com/avc-dev/address-book/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// runScript прогоняет список команд через консоль и возвращает весь вывод
func runScript(t *testing.T, commands ...string) string {
	t.Helper()

	cfg := config.NewDefaultConfig()
	repo := repository.New(store.NewStore())
	uc := usecase.NewContactUsecase(repo, cfg, zap.NewNop())

	in := strings.NewReader(strings.Join(commands, "\n") + "\n")
	var out bytes.Buffer

	c := New(uc, zap.NewNop(), in, &out, cfg.BirthdayWindow.Days())
	c.now = func() time.Time {
		return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	}

	require.NoError(t, c.Run())

	return out.String()
}

func TestConsole_HelloAndExit(t *testing.T) {
	output := runScript(t, "hello", "exit")

	assert.Contains(t, output, "Welcome to the assistant bot!")
	assert.Contains(t, output, "How can I help you?")
	assert.Contains(t, output, "Good bye!")
}

func TestConsole_AddFindPhone(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"phone Ann",
		"find Ann",
		"close",
	)

	assert.Contains(t, output, "Contact added.")
	assert.Contains(t, output, "Ann's phone numbers: 1234567890")
	assert.Contains(t, output, "Found record: Contact name: Ann, phones: 1234567890")
}

func TestConsole_Change(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"change Ann 0987654321",
		"phone Ann",
		"exit",
	)

	assert.Contains(t, output, "Contact updated.")
	assert.Contains(t, output, "Ann's phone numbers: 0987654321")
	assert.NotContains(t, output, "1234567890,")
}

func TestConsole_InvalidPhoneRejected(t *testing.T) {
	output := runScript(t,
		"add Bob 123",
		"find Bob",
		"exit",
	)

	assert.Contains(t, output, "Phone number must contain 10 digits.")
	assert.Contains(t, output, "Contact not found.")
}

func TestConsole_Delete(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"delete Ann",
		"delete Ann",
		"exit",
	)

	assert.Contains(t, output, `Record "Ann" deleted successfully.`)
	assert.Contains(t, output, "Record not found.")
}

func TestConsole_All(t *testing.T) {
	output := runScript(t,
		"all",
		"add Ann 1234567890",
		"add Bob 5555555555",
		"all",
		"exit",
	)

	assert.Contains(t, output, "Phonebook is empty.")
	assert.Contains(t, output, "All contacts:")

	// Порядок вставки сохраняется
	annIdx := strings.Index(output, "Contact name: Ann")
	bobIdx := strings.Index(output, "Contact name: Bob")
	require.Greater(t, annIdx, -1)
	require.Greater(t, bobIdx, -1)
	assert.Less(t, annIdx, bobIdx)
}

func TestConsole_Birthdays(t *testing.T) {
	// "Сегодня" в тестовой консоли - 10.03.2024
	output := runScript(t,
		"add Ann 1234567890",
		"add-birthday Ann 15.03.1990",
		"show-birthday Ann",
		"birthdays",
		"exit",
	)

	assert.Contains(t, output, "Birthday added.")
	assert.Contains(t, output, "Ann's birthday is: 15.03.1990")
	assert.Contains(t, output, "Contacts to greet in the next 7 days:")
	assert.Contains(t, output, "Ann")
}

func TestConsole_BirthdaysEmpty(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"add-birthday Ann 01.01.1990",
		"birthdays",
		"exit",
	)

	assert.Contains(t, output, "No upcoming birthdays in the next 7 days.")
}

func TestConsole_ShowBirthdayMissing(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"show-birthday Ann",
		"exit",
	)

	assert.Contains(t, output, "Ann has no registered birthday.")
}

func TestConsole_InvalidBirthdayFormat(t *testing.T) {
	output := runScript(t,
		"add Ann 1234567890",
		"add-birthday Ann 29.02.2023",
		"exit",
	)

	assert.Contains(t, output, "Invalid date format. Use DD.MM.YYYY.")
}

func TestConsole_UnknownCommand(t *testing.T) {
	output := runScript(t, "frobnicate", "exit")

	assert.Contains(t, output, "Invalid command. Please try again.")
}

func TestConsole_EOFStopsLoop(t *testing.T) {
	// Конец потока ввода завершает цикл без ошибки
	output := runScript(t, "hello")

	assert.Contains(t, output, "How can I help you?")
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name            string
		line            string
		expectedCommand string
		expectedArgs    string
	}{
		{name: "Command only", line: "hello", expectedCommand: "hello", expectedArgs: ""},
		{name: "Command with args", line: "add Ann 1234567890", expectedCommand: "add", expectedArgs: "Ann 1234567890"},
		{name: "Uppercase command", line: "ADD Ann", expectedCommand: "add", expectedArgs: "Ann"},
		{name: "Surrounding spaces", line: "  delete Ann  ", expectedCommand: "delete", expectedArgs: "Ann"},
		{name: "Empty line", line: "", expectedCommand: "", expectedArgs: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, args := parseInput(tt.line)
			assert.Equal(t, tt.expectedCommand, command)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}
