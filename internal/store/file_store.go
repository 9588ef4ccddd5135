package store

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
)

// FileStore - декоратор над Store, который добавляет персистентность через файл.
// Вся книга загружается при создании и полностью перезаписывается
// после каждой успешной мутации, поэтому отдельного сохранения при
// завершении процесса не требуется.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// Get читает запись из in-memory store
func (fs *FileStore) Get(name string) (*model.Record, error) {
	return fs.store.Get(name)
}

// Put записывает запись в in-memory store и сохраняет снимок книги в файл
func (fs *FileStore) Put(record *model.Record) error {
	if err := fs.store.Put(record); err != nil {
		return fmt.Errorf("failed to write to in-memory store: %w", err)
	}

	return fs.flush()
}

// Delete удаляет запись из in-memory store и сохраняет снимок книги в файл.
// Удаление отсутствующей записи не трогает файл.
func (fs *FileStore) Delete(name string) (bool, error) {
	existed, err := fs.store.Delete(name)
	if err != nil || !existed {
		return existed, err
	}

	if err := fs.flush(); err != nil {
		return true, err
	}

	return true, nil
}

// All возвращает все записи в порядке вставки
func (fs *FileStore) All() ([]*model.Record, error) {
	return fs.store.All()
}

// loadFromFile загружает данные из файла в in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return fmt.Errorf("failed to load data from file: %w", err)
	}

	records := make([]*model.Record, 0, len(entries))
	for _, entry := range entries {
		record, err := model.RecordFromEntry(entry)
		if err != nil {
			return fmt.Errorf("failed to decode entry: %w", err)
		}
		records = append(records, record)
	}

	fs.store.InitializeWith(records)

	return nil
}

// flush сохраняет полный снимок книги в файл
func (fs *FileStore) flush() error {
	records, err := fs.store.All()
	if err != nil {
		return fmt.Errorf("failed to snapshot store: %w", err)
	}

	entries := make([]model.RecordEntry, len(records))
	for i, record := range records {
		entries[i] = record.ToEntry()
	}

	if err := fs.fileStorage.Save(entries); err != nil {
		return fmt.Errorf("failed to save to file: %w", err)
	}

	return nil
}
