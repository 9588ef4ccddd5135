package usecase

import (
	"fmt"

	"github.com/avc-dev/address-book/internal/model"
)

// ShowBirthday возвращает дату рождения контакта
func (u *ContactUsecase) ShowBirthday(name string) (model.Birthday, error) {
	record, err := u.FindContact(name)
	if err != nil {
		return model.Birthday{}, err
	}

	if record.Birthday == nil {
		return model.Birthday{}, fmt.Errorf("contact %q: %w", name, ErrNoBirthday)
	}

	return *record.Birthday, nil
}
