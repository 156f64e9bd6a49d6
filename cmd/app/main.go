package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/DRSN-tech/catalog-service/internal/app"
	config "github.com/DRSN-tech/catalog-service/internal/cfg"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			Catalog Service API
//	@version		1.0
//	@description	REST API каталога товаров, покупателей и отзывов.
//	@BasePath		/api/v1
func main() {
	bootLog := logger.NewSlogLogger()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		bootLog.Warnf("failed to load .env: %v", err)
	}

	cfg, err := config.Load(bootLog)
	if err != nil {
		bootLog.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
