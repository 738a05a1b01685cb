package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"member-qa/handler"
	"member-qa/internal/app"
	"member-qa/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()

	svc, err := app.BuildAskService(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to build ask service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(svc)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}
