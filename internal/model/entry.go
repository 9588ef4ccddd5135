package model

import "fmt"

// SnapshotVersion - текущая версия схемы файла адресной книги
const SnapshotVersion = 1

// RecordEntry представляет запись контакта в персистентном формате.
// Дата рождения хранится строкой в формате DD.MM.YYYY, пустая строка - нет даты.
type RecordEntry struct {
	UUID     string   `json:"uuid"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// BookSnapshot представляет полное состояние адресной книги в файле.
// Явная версия схемы позволяет эволюционировать формат без тихих поломок.
type BookSnapshot struct {
	Version int           `json:"version"`
	Records []RecordEntry `json:"records"`
}

// ToEntry преобразует запись в персистентное представление
func (r *Record) ToEntry() RecordEntry {
	phones := make([]string, len(r.Phones))
	for i, phone := range r.Phones {
		phones[i] = phone.String()
	}

	entry := RecordEntry{
		UUID:   r.UUID,
		Name:   r.Name,
		Phones: phones,
	}

	if r.Birthday != nil {
		entry.Birthday = r.Birthday.String()
	}

	return entry
}

// RecordFromEntry восстанавливает запись из персистентного представления.
// Телефоны и дата рождения проходят ту же валидацию, что и при вводе,
// поэтому поврежденный файл обнаруживается при загрузке, а не при использовании.
func RecordFromEntry(entry RecordEntry) (*Record, error) {
	record, err := NewRecord(entry.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to restore record: %w", err)
	}

	if entry.UUID != "" {
		record.UUID = entry.UUID
	}

	for _, raw := range entry.Phones {
		if err := record.AddPhone(raw); err != nil {
			return nil, fmt.Errorf("failed to restore record %q: %w", entry.Name, err)
		}
	}

	if entry.Birthday != "" {
		birthday, err := ParseBirthday(entry.Birthday)
		if err != nil {
			return nil, fmt.Errorf("failed to restore record %q: %w", entry.Name, err)
		}
		record.SetBirthday(birthday)
	}

	return record, nil
}
