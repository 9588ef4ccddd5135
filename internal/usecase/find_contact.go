package usecase

import (
	"errors"
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
	"github.com/avc-dev/address-book/internal/store"
	"go.uber.org/zap"
)

// FindContact возвращает запись по точному совпадению имени
func (u *ContactUsecase) FindContact(name string) (*model.Record, error) {
	record, err := u.repo.Get(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("contact %q: %w", name, ErrContactNotFound)
		}

		u.logger.Error("failed to find contact",
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return record, nil
}
