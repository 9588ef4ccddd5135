package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/address-book/internal/model"
)

var (
	// ErrNotFound возвращается при поиске записи, которой нет в хранилище
	ErrNotFound = errors.New("record not found")
)

// Store - in-memory хранилище записей адресной книги, ключ - имя контакта.
// Порядок вставки сохраняется: All возвращает записи в том порядке,
// в котором они были впервые добавлены. Перезапись по существующему имени
// не меняет позицию записи.
type Store struct {
	records map[string]*model.Record
	order   []string
	mutex   sync.Mutex
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]*model.Record),
	}
}

// Get возвращает запись по имени (точное совпадение, без нормализации)
func (s *Store) Get(name string) (*model.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", name, ErrNotFound)
	}

	return record, nil
}

// Put вставляет запись или перезаписывает существующую с тем же именем
// (last write wins, без слияния)
func (s *Store) Put(record *model.Record) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.records[record.Name]; !exists {
		s.order = append(s.order, record.Name)
	}

	s.records[record.Name] = record

	return nil
}

// Delete удаляет запись по имени. Возвращает false, если записи не было,
// повторный вызов безопасен (идемпотентная операция).
func (s *Store) Delete(name string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.records[name]; !exists {
		return false, nil
	}

	delete(s.records, name)

	for i, key := range s.order {
		if key == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true, nil
}

// All возвращает все записи в порядке вставки
func (s *Store) All() ([]*model.Record, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	records := make([]*model.Record, 0, len(s.order))
	for _, name := range s.order {
		records = append(records, s.records[name])
	}

	return records, nil
}

// InitializeWith инициализирует хранилище записями (без проверки на существование)
// Используется для массовой загрузки данных, например, из файла
func (s *Store) InitializeWith(records []*model.Record) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, record := range records {
		if _, exists := s.records[record.Name]; !exists {
			s.order = append(s.order, record.Name)
		}
		s.records[record.Name] = record
	}
}
