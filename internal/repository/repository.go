package repository

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
)

// Store определяет контракт хранилища записей адресной книги
type Store interface {
	Get(name string) (*model.Record, error)
	Put(record *model.Record) error
	Delete(name string) (bool, error)
	All() ([]*model.Record, error)
}

type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Get возвращает запись по имени контакта
func (r Repository) Get(name string) (*model.Record, error) {
	record, err := r.underlying.Get(name)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

// Put вставляет запись или перезаписывает существующую с тем же именем
func (r Repository) Put(record *model.Record) error {
	err := r.underlying.Put(record)
	if err != nil {
		return fmt.Errorf("failed to put record: %w", err)
	}
	return nil
}

// Delete удаляет запись по имени, возвращает признак того, что запись существовала
func (r Repository) Delete(name string) (bool, error) {
	existed, err := r.underlying.Delete(name)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}
	return existed, nil
}

// All возвращает все записи в порядке вставки
func (r Repository) All() ([]*model.Record, error) {
	records, err := r.underlying.All()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
