package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cinelog/cinelog/internal/app/bootstrap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := bootstrap.Run(context.Background(), logger); err != nil {
		logger.Error("startup failed", zap.Error(err))
		os.Exit(1)
	}
}
