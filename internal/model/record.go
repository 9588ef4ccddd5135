package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Record представляет одну запись адресной книги: имя, упорядоченный
// список телефонов (дубликаты допустимы) и необязательную дату рождения.
// Имя - ключ записи в книге, сравнивается посимвольно без нормализации.
type Record struct {
	UUID     string
	Name     string
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord создает запись без телефонов и даты рождения.
// Пустое имя (или имя из одних пробелов) не допускается.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	return &Record{
		UUID: uuid.New().String(),
		Name: name,
	}, nil
}

// AddPhone валидирует номер и добавляет его в конец списка.
// Дубликаты внутри записи не отсеиваются.
func (r *Record) AddPhone(raw string) error {
	phone, err := ParsePhone(raw)
	if err != nil {
		return fmt.Errorf("failed to add phone: %w", err)
	}

	r.Phones = append(r.Phones, phone)

	return nil
}

// RemovePhone удаляет все телефоны с точно совпадающим значением.
// Отсутствие совпадений не является ошибкой.
func (r *Record) RemovePhone(number string) {
	kept := r.Phones[:0]
	for _, phone := range r.Phones {
		if phone.String() != number {
			kept = append(kept, phone)
		}
	}
	r.Phones = kept
}

// EditPhone заменяет первый телефон, равный oldNumber, на newNumber.
// Новый номер проходит валидацию. Если oldNumber не найден,
// запись остается без изменений и ошибка не возвращается.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	phone, err := ParsePhone(newNumber)
	if err != nil {
		return fmt.Errorf("failed to edit phone: %w", err)
	}

	for i := range r.Phones {
		if r.Phones[i].String() == oldNumber {
			r.Phones[i] = phone
			break
		}
	}

	return nil
}

// FindPhone возвращает первый телефон с точно совпадающим значением
func (r *Record) FindPhone(number string) (Phone, error) {
	for _, phone := range r.Phones {
		if phone.String() == number {
			return phone, nil
		}
	}

	return "", fmt.Errorf("phone %s: %w", number, ErrPhoneNotFound)
}

// SetBirthday устанавливает дату рождения, перезаписывая предыдущее значение
func (r *Record) SetBirthday(birthday Birthday) {
	r.Birthday = &birthday
}

// String возвращает человекочитаемое представление записи
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, phone := range r.Phones {
		phones[i] = phone.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name, strings.Join(phones, "; "))
}
