package usecase

import (
	"github.com/avc-dev/address-book/internal/config"
	"github.com/avc-dev/address-book/internal/model"
	"go.uber.org/zap"
)

// ContactRepository определяет интерфейс для работы с хранилищем записей
type ContactRepository interface {
	Get(name string) (*model.Record, error)
	Put(record *model.Record) error
	Delete(name string) (bool, error)
	All() ([]*model.Record, error)
}

// ContactUsecase содержит бизнес-логику для работы с адресной книгой
type ContactUsecase struct {
	repo   ContactRepository
	cfg    *config.Config
	logger *zap.Logger
}

// NewContactUsecase создает новый экземпляр ContactUsecase
func NewContactUsecase(repo ContactRepository, cfg *config.Config, logger *zap.Logger) *ContactUsecase {
	return &ContactUsecase{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
	}
}
