package model

import "errors"

var (
	// ErrEmptyName возвращается при попытке создать запись без имени
	ErrEmptyName = errors.New("contact name is empty")
	// ErrInvalidPhone возвращается, если номер телефона не состоит ровно из 10 цифр
	ErrInvalidPhone = errors.New("invalid phone number format")
	// ErrInvalidBirthday возвращается, если дата не соответствует формату DD.MM.YYYY
	// или не является реальной календарной датой
	ErrInvalidBirthday = errors.New("invalid birthday format")
	// ErrPhoneNotFound возвращается при поиске номера, которого нет в записи
	ErrPhoneNotFound = errors.New("phone number not found")
)
