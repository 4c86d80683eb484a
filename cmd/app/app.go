package main

import (
	"os"

	"github.com/takara-tech/product-api/internal/app"
	config "github.com/takara-tech/product-api/internal/cfg"
	"github.com/takara-tech/product-api/pkg/logger"
)

//	@title			Product Management API
//	@version		1.0.0
//	@description	CRUD и поиск продуктов каталога

//	@BasePath	/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
