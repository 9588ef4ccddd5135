package usecase

import (
	"time"

	"github.com/avc-dev/address-book/internal/model"
	"github.com/avc-dev/address-book/internal/service"
)

// UpcomingBirthdays возвращает записи, чей ближайший день рождения попадает
// в окно [today, today+window]. Размер окна берется из конфигурации.
// today передается вызывающей стороной для детерминизма.
func (u *ContactUsecase) UpcomingBirthdays(today time.Time) ([]*model.Record, error) {
	records, err := u.AllContacts()
	if err != nil {
		return nil, err
	}

	return service.UpcomingBirthdays(records, today, u.cfg.BirthdayWindow.Days()), nil
}
