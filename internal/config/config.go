package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultWindowDays - окно поиска дней рождения по умолчанию (неделя)
const DefaultWindowDays = 7

// Config содержит настройки приложения.
// Значения берутся из флагов командной строки, переменные окружения
// имеют приоритет над флагами.
type Config struct {
	// FileStoragePath - путь к файлу адресной книги
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	// DatabaseDSN - строка подключения к PostgreSQL; если задана,
	// используется вместо файлового хранилища
	DatabaseDSN string `env:"DATABASE_DSN"`
	// BirthdayWindow - окно поиска ближайших дней рождения
	BirthdayWindow WindowDays `env:"BIRTHDAY_WINDOW_DAYS"`
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		FileStoragePath: "addressbook.json",
		BirthdayWindow:  WindowDays(DefaultWindowDays),
	}
}

// Load собирает конфигурацию из флагов и переменных окружения
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "path to address book file")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	flag.Var(&cfg.BirthdayWindow, "w", "upcoming birthdays window in days")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
