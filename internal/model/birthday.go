package model

import (
	"fmt"
	"time"
)

// BirthdayLayout - внешний текстовый формат даты рождения (DD.MM.YYYY)
const BirthdayLayout = "02.01.2006"

// Birthday представляет дату рождения без компонента времени суток
type Birthday struct {
	date time.Time
}

// ParseBirthday разбирает строку в формате DD.MM.YYYY и проверяет,
// что она обозначает реальную григорианскую дату
// (29.02 принимается только в високосные годы)
func ParseBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q does not match DD.MM.YYYY", ErrInvalidBirthday, raw)
	}

	return Birthday{date: date}, nil
}

// BirthdayFromDate создает дату рождения из time.Time,
// отбрасывая время суток и часовой пояс
func BirthdayFromDate(date time.Time) Birthday {
	year, month, day := date.Date()
	return Birthday{date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Date возвращает дату рождения как time.Time (полночь UTC)
func (b Birthday) Date() time.Time {
	return b.date
}

// Month возвращает месяц рождения
func (b Birthday) Month() time.Month {
	return b.date.Month()
}

// Day возвращает день рождения
func (b Birthday) Day() int {
	return b.date.Day()
}

// String форматирует дату обратно в DD.MM.YYYY
func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
