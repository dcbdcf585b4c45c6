package main

import (
	stdLog "log"

	"github.com/Astemirdum/booking-service/notifier/app"
	"github.com/Astemirdum/booking-service/notifier/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
