package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/address-book/internal/config"
	"github.com/avc-dev/address-book/internal/config/db"
	"github.com/avc-dev/address-book/internal/migrations"
	"github.com/avc-dev/address-book/internal/repository"
	"github.com/avc-dev/address-book/internal/store"
	"github.com/avc-dev/address-book/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*usecase.ContactUsecase, error) {
	storage, err := initStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	uc := usecase.NewContactUsecase(repo, cfg, logger)

	return uc, nil
}

// initStorage создает хранилище на основе конфигурации:
// PostgreSQL при заданном DSN, иначе файл, иначе только память
func initStorage(cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.DatabaseDSN != "" {
		databaseStore, err := initDatabaseStorage(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create database store: %w", err)
		}
		logger.Info("Using database storage")
		return databaseStore, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

// initDatabaseStorage подключается к PostgreSQL и применяет миграции
func initDatabaseStorage(cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store.NewDatabaseStore(database), nil
}
