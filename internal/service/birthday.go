package service

import (
	"time"

	"github.com/avc-dev/address-book/internal/model"
)

// NextOccurrence возвращает ближайшую дату наступления дня рождения,
// начиная с today включительно.
//
// Дата строится через time.Date(today.Year(), месяц, день): для 29 февраля
// в невисокосный год Go нормализует результат в 1 марта - это и есть
// принятая политика переноса (29.02 отмечается 1 марта).
func NextOccurrence(birthday model.Birthday, today time.Time) time.Time {
	today = TruncateToDay(today)

	next := occurrenceInYear(birthday, today.Year(), today.Location())
	if next.Before(today) {
		next = occurrenceInYear(birthday, today.Year()+1, today.Location())
	}

	return next
}

// UpcomingBirthdays выбирает записи, чей ближайший день рождения попадает
// в окно [today, today+windowDays] (обе границы включительно).
// Порядок результата совпадает с порядком обхода records, без сортировки по дате.
func UpcomingBirthdays(records []*model.Record, today time.Time, windowDays int) []*model.Record {
	today = TruncateToDay(today)
	windowEnd := today.AddDate(0, 0, windowDays)

	var upcoming []*model.Record
	for _, record := range records {
		if record.Birthday == nil {
			continue
		}

		next := NextOccurrence(*record.Birthday, today)
		if !next.Before(today) && !next.After(windowEnd) {
			upcoming = append(upcoming, record)
		}
	}

	return upcoming
}

// TruncateToDay отбрасывает компонент времени суток
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func occurrenceInYear(birthday model.Birthday, year int, loc *time.Location) time.Time {
	return time.Date(year, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
}
