package main

import (
	"flag"
	stdLog "log"

	"github.com/Astemirdum/bookstore-service/bookstore/app"
	"github.com/Astemirdum/bookstore-service/bookstore/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	runOnce := flag.Bool("run-once", false, "run a single accrual sweep and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file:", err)
	}
	cfg := config.NewConfig(config.WithLogLevel(zapcore.InfoLevel))

	if err := app.RunAccrual(cfg, *runOnce); err != nil {
		stdLog.Fatal(err)
	}
}
