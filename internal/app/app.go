package app

import (
	"github.com/avc-dev/address-book/internal/config"
	"github.com/avc-dev/address-book/internal/usecase"
	"go.uber.org/zap"
)

// App представляет приложение адресной книги
type App struct {
	config *config.Config
	logger *zap.Logger
	uc     *usecase.ContactUsecase
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	uc, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		uc:     uc,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	return app.start()
}
