package usecase

import (
	"fmt"

	"go.uber.org/zap"
)

// ChangePhone заменяет первый телефон существующего контакта на новый.
// Новый номер проходит валидацию до сохранения.
func (u *ContactUsecase) ChangePhone(name, newPhone string) error {
	record, err := u.FindContact(name)
	if err != nil {
		return err
	}

	if len(record.Phones) == 0 {
		return fmt.Errorf("contact %q: %w", name, ErrNoPhones)
	}

	if err := record.EditPhone(record.Phones[0].String(), newPhone); err != nil {
		return err
	}

	if err := u.repo.Put(record); err != nil {
		u.logger.Error("failed to change phone",
			zap.String("name", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}
