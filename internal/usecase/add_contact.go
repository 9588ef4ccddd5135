package usecase

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
	"go.uber.org/zap"
)

// AddContact создает запись с именем и телефонами и помещает ее в книгу.
// Любой невалидный телефон отменяет всю операцию - запись не сохраняется.
// Существующая запись с тем же именем полностью перезаписывается (last write wins).
func (u *ContactUsecase) AddContact(name string, phones []string) error {
	record, err := model.NewRecord(name)
	if err != nil {
		return err
	}

	for _, phone := range phones {
		if err := record.AddPhone(phone); err != nil {
			return err
		}
	}

	if err := u.repo.Put(record); err != nil {
		u.logger.Error("failed to add contact",
			zap.String("name", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}
