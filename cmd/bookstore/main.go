package main

import (
	stdLog "log"
	"time"

	"github.com/Astemirdum/bookstore-service/bookstore/app"
	"github.com/Astemirdum/bookstore-service/bookstore/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

//go:generate swag init -d ../../ -g cmd/bookstore/main.go -o ../../swagger --parseInternal

// @title Bookstore API
// @version 1.0
// @description Borrowing, selling and accounting for a bookstore library.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file:", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal(err)
	}
}
