package model

import "fmt"

// PhoneLength - требуемое количество цифр в номере телефона
const PhoneLength = 10

// Phone представляет валидированный номер телефона: ровно 10 ASCII цифр,
// без разделителей, пробелов и ведущего "+"
type Phone string

func (p Phone) String() string {
	return string(p)
}

// ParsePhone валидирует сырую строку и возвращает типизированный номер телефона
func ParsePhone(raw string) (Phone, error) {
	if len(raw) != PhoneLength {
		return "", fmt.Errorf("%w: expected %d digits, got %d characters", ErrInvalidPhone, PhoneLength, len(raw))
	}

	for _, c := range raw {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: %q is not a digit", ErrInvalidPhone, c)
		}
	}

	return Phone(raw), nil
}
