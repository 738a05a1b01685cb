package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"member-qa/internal/app"
	"member-qa/internal/config"
	"member-qa/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()

	svc, err := app.BuildAskService(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to build ask service", "err", err)
		os.Exit(1)
	}

	r := server.NewRouter(svc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("listening", "addr", addr, "messages_api_url", cfg.MessagesAPIURL, "model", cfg.OpenAIModel)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
