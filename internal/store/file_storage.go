package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avc-dev/address-book/internal/model"
)

// FileStorage управляет персистентным хранилищем адресной книги в JSON файле
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла.
// Отсутствие файла - не ошибка (первый запуск): возвращается пустой список.
// Любая другая ошибка ввода-вывода или несовпадение версии схемы пробрасывается.
func (fs *FileStorage) Load() ([]model.RecordEntry, error) {
	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return []model.RecordEntry{}, nil
	}

	data, err := os.ReadFile(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return []model.RecordEntry{}, nil
	}

	var snapshot model.BookSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if snapshot.Version != model.SnapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d, expected %d", snapshot.Version, model.SnapshotVersion)
	}

	return snapshot.Records, nil
}

// Save сохраняет все записи в файл, полностью перезаписывая его
func (fs *FileStorage) Save(entries []model.RecordEntry) error {
	snapshot := model.BookSnapshot{
		Version: model.SnapshotVersion,
		Records: entries,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(fs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
