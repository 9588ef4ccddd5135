package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/address-book/internal/config/db"
	"github.com/avc-dev/address-book/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseStore реализует хранилище записей поверх PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	// Получаем pgxpool.Pool из адаптера
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

// Get читает запись контакта по имени
func (ds *DatabaseStore) Get(name string) (*model.Record, error) {
	query := `
		SELECT uuid, name, phones, birthday
		FROM contacts
		WHERE name = $1
	`

	record, err := ds.scanRecord(ds.pool.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("record %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read from database: %w", err)
	}

	return record, nil
}

// Put вставляет запись или перезаписывает существующую с тем же именем.
// Позиция записи в выдаче All при перезаписи сохраняется (id не меняется).
func (ds *DatabaseStore) Put(record *model.Record) error {
	query := `
		INSERT INTO contacts (uuid, name, phones, birthday)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET uuid = EXCLUDED.uuid, phones = EXCLUDED.phones, birthday = EXCLUDED.birthday
	`

	phones := make([]string, len(record.Phones))
	for i, phone := range record.Phones {
		phones[i] = phone.String()
	}

	var birthday any
	if record.Birthday != nil {
		birthday = record.Birthday.Date()
	}

	_, err := ds.pool.Exec(context.Background(), query, record.UUID, record.Name, phones, birthday)
	if err != nil {
		return fmt.Errorf("failed to write to database: %w", err)
	}

	return nil
}

// Delete удаляет запись по имени, отсутствие записи не является ошибкой
func (ds *DatabaseStore) Delete(name string) (bool, error) {
	query := `
		DELETE FROM contacts
		WHERE name = $1
	`

	tag, err := ds.pool.Exec(context.Background(), query, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete from database: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// All возвращает все записи в порядке вставки
func (ds *DatabaseStore) All() ([]*model.Record, error) {
	query := `
		SELECT uuid, name, phones, birthday
		FROM contacts
		ORDER BY id
	`

	rows, err := ds.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query database: %w", err)
	}
	defer rows.Close()

	var records []*model.Record
	for rows.Next() {
		record, err := ds.scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return records, nil
}

// scanRecord восстанавливает запись из строки результата запроса
func (ds *DatabaseStore) scanRecord(row pgx.Row) (*model.Record, error) {
	var entry model.RecordEntry
	var birthday *time.Time

	if err := row.Scan(&entry.UUID, &entry.Name, &entry.Phones, &birthday); err != nil {
		return nil, err
	}

	record, err := model.RecordFromEntry(entry)
	if err != nil {
		return nil, err
	}

	if birthday != nil {
		record.SetBirthday(model.BirthdayFromDate(*birthday))
	}

	return record, nil
}
