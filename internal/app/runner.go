package app

import (
	"os"

	"github.com/avc-dev/address-book/internal/console"
	"go.uber.org/zap"
)

// start запускает консоль адресной книги
func (a *App) start() error {
	c := console.New(a.uc, a.logger, os.Stdin, os.Stdout, a.config.BirthdayWindow.Days())

	a.logger.Info("Starting address book console",
		zap.String("storage_path", a.config.FileStoragePath),
		zap.Int("birthday_window_days", a.config.BirthdayWindow.Days()),
	)

	if err := c.Run(); err != nil {
		a.logger.Error("Console failed", zap.Error(err))
		return err
	}

	return nil
}
