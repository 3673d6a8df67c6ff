package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/theezequiel42/water-tracker/internal/config"
	waterHttp "github.com/theezequiel42/water-tracker/internal/http"
	statementHandler "github.com/theezequiel42/water-tracker/internal/http/statement"
	"github.com/theezequiel42/water-tracker/internal/logger"
	"github.com/theezequiel42/water-tracker/internal/sheet"
	"github.com/theezequiel42/water-tracker/internal/statement"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log, err := logger.New("api", cfg.Log.Level, os.Stderr)
	if err != nil {
		slog.Error("failed to create logger", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(log)

	layout, err := cfg.Layout()
	if err != nil {
		slog.Error("failed to load layout", "error", err)
		os.Exit(1)
	}

	opts, err := cfg.SheetOptions()
	if err != nil {
		slog.Error("failed to read sheet settings", "error", err)
		os.Exit(1)
	}

	loader, err := sheet.NewLoader(context.Background(), opts)
	if err != nil {
		slog.Error("failed to create sheet loader", "error", err)
		os.Exit(1)
	}

	var (
		statementService = statement.NewService(loader, layout)
		statementH       = statementHandler.NewHandler(statementService)
	)

	router := waterHttp.New(statementH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "source", opts.Source)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
