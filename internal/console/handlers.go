package console

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avc-dev/address-book/internal/model"
	"github.com/avc-dev/address-book/internal/usecase"
)

func (c *Console) handleHello(_ string) (string, error) {
	return "How can I help you?", nil
}

func (c *Console) handleHelp(_ string) (string, error) {
	lines := []string{
		"Available commands:",
		"  - hello: print a welcome message",
		"  - add <name> <phone...>: add a new contact",
		"  - change <name> <newphone>: change a contact's phone number",
		"  - phone <name>: show a contact's phone numbers",
		"  - find <name>: find a record",
		"  - delete <name>: delete a record",
		"  - all: show all contacts",
		"  - add-birthday <name> <DD.MM.YYYY>: add a contact's birthday",
		"  - show-birthday <name>: show a contact's birthday",
		fmt.Sprintf("  - birthdays: show upcoming birthdays for the next %d days", c.windowDays),
		"  - exit, close: save and quit",
	}

	return strings.Join(lines, "\n"), nil
}

func (c *Console) handleAdd(args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", errors.New("Invalid command format. Please provide a name.")
	}

	if err := c.uc.AddContact(fields[0], fields[1:]); err != nil {
		return "", err
	}

	return "Contact added.", nil
}

func (c *Console) handleChange(args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", errors.New("Invalid command format. Please provide name and new phone.")
	}

	if err := c.uc.ChangePhone(fields[0], fields[1]); err != nil {
		return "", err
	}

	return "Contact updated.", nil
}

func (c *Console) handlePhone(args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("Invalid command format. Please provide a name.")
	}

	phones, err := c.uc.Phones(name)
	if err != nil {
		return "", err
	}

	if len(phones) == 0 {
		return fmt.Sprintf("%s has no phone numbers.", name), nil
	}

	return fmt.Sprintf("%s's phone numbers: %s", name, strings.Join(phones, ", ")), nil
}

func (c *Console) handleFind(args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("Invalid command format. Please provide a name.")
	}

	record, err := c.uc.FindContact(name)
	if err != nil {
		return "", err
	}

	return "Found record: " + record.String(), nil
}

func (c *Console) handleDelete(args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("Invalid command format. Please provide a name.")
	}

	existed, err := c.uc.DeleteContact(name)
	if err != nil {
		return "", err
	}

	if !existed {
		return "Record not found.", nil
	}

	return fmt.Sprintf("Record %q deleted successfully.", name), nil
}

func (c *Console) handleAll(_ string) (string, error) {
	records, err := c.uc.AllContacts()
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "Phonebook is empty.", nil
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "All contacts:")
	for _, record := range records {
		lines = append(lines, record.String())
	}

	return strings.Join(lines, "\n"), nil
}

func (c *Console) handleAddBirthday(args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return "", errors.New("Invalid command format. Please provide name and birthday.")
	}

	if err := c.uc.AddBirthday(fields[0], fields[1]); err != nil {
		return "", err
	}

	return "Birthday added.", nil
}

func (c *Console) handleShowBirthday(args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("Invalid command format. Please provide a name.")
	}

	birthday, err := c.uc.ShowBirthday(name)
	if err != nil {
		if errors.Is(err, usecase.ErrNoBirthday) {
			return fmt.Sprintf("%s has no registered birthday.", name), nil
		}
		return "", err
	}

	return fmt.Sprintf("%s's birthday is: %s", name, birthday), nil
}

func (c *Console) handleBirthdays(_ string) (string, error) {
	records, err := c.uc.UpcomingBirthdays(c.now())
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return fmt.Sprintf("No upcoming birthdays in the next %d days.", c.windowDays), nil
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, fmt.Sprintf("Contacts to greet in the next %d days:", c.windowDays))
	for _, record := range records {
		lines = append(lines, record.Name)
	}

	return strings.Join(lines, "\n"), nil
}

// errorMessage переводит ошибку операции в сообщение для пользователя
func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidPhone):
		return fmt.Sprintf("Phone number must contain %d digits.", model.PhoneLength)
	case errors.Is(err, model.ErrInvalidBirthday):
		return "Invalid date format. Use DD.MM.YYYY."
	case errors.Is(err, model.ErrEmptyName):
		return "Contact name is required."
	case errors.Is(err, usecase.ErrContactNotFound):
		return "Contact not found."
	case errors.Is(err, usecase.ErrNoPhones):
		return "Contact has no phone numbers."
	default:
		return err.Error()
	}
}
