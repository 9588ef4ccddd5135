package usecase

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
	"go.uber.org/zap"
)

// AddBirthday устанавливает дату рождения контакта,
// перезаписывая прежнее значение без предупреждения
func (u *ContactUsecase) AddBirthday(name, rawDate string) error {
	birthday, err := model.ParseBirthday(rawDate)
	if err != nil {
		return err
	}

	record, err := u.FindContact(name)
	if err != nil {
		return err
	}

	record.SetBirthday(birthday)

	if err := u.repo.Put(record); err != nil {
		u.logger.Error("failed to add birthday",
			zap.String("name", name),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	return nil
}
