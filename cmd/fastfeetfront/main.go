package main

import (
	"log"

	"github.com/mvillar/fastfeet-front/internal/app"
	"github.com/mvillar/fastfeet-front/internal/config"
	"github.com/mvillar/fastfeet-front/pgk/logger"
)

func main() {
	lg, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	cfg, err := config.Read()
	if err != nil {
		lg.Fatal(err)
	}

	if err := app.Run(cfg, lg); err != nil {
		log.Fatal(err)
	}
}
