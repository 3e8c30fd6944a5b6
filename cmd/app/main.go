package main

import (
	"context"

	"nyumba/config"
	"nyumba/di"
	"nyumba/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeConsumer()
	go consumer.Run(context.Background())

	http := di.InitializeService()
	http.Serve()
}
