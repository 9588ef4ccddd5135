package usecase

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
	"go.uber.org/zap"
)

// AllContacts возвращает все записи книги в порядке вставки
func (u *ContactUsecase) AllContacts() ([]*model.Record, error) {
	records, err := u.repo.All()
	if err != nil {
		u.logger.Error("failed to list contacts", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return records, nil
}
