package main

import (
	"log"

	"github.com/ocf/api/config"
	"github.com/ocf/api/internal/app"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	app.Run(cfg)
}
