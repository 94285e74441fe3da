package main

import (
	"github.com/rs/zerolog/log"

	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
)

func main() {
	logger.InitLogger()

	if err := config.Init(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize configuration")
	}

	logger.SetLogLevel(config.Get())

	http := di.InitializeService()
	http.SetupAndServe()
}
