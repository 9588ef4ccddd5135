package usecase

import (
	"fmt"

	"go.uber.org/zap"
)

// DeleteContact удаляет запись по имени. Отсутствие записи не является
// ошибкой: операция идемпотентна, возвращается признак того,
// что запись существовала.
func (u *ContactUsecase) DeleteContact(name string) (bool, error) {
	existed, err := u.repo.Delete(name)
	if err != nil {
		u.logger.Error("failed to delete contact",
			zap.String("name", name),
			zap.Error(err),
		)
		return false, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return existed, nil
}
