package config

import (
	"fmt"
	"strconv"
)

// WindowDays - размер окна поиска ближайших дней рождения в днях
type WindowDays int

func (w WindowDays) String() string {
	return strconv.Itoa(int(w))
}

func (w *WindowDays) Set(value string) error {
	days, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid window size: %w", err)
	}

	if days < 0 {
		return fmt.Errorf("invalid window size: %d days", days)
	}

	*w = WindowDays(days)

	return nil
}

func (w *WindowDays) UnmarshalText(text []byte) error {
	return w.Set(string(text))
}

// Days возвращает размер окна как int
func (w WindowDays) Days() int {
	return int(w)
}
