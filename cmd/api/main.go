package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/gst2tally/internal/config"
	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	gstHttp "github.com/MrJamesThe3rd/gst2tally/internal/http"
	convertHandler "github.com/MrJamesThe3rd/gst2tally/internal/http/convert"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.App.LogLevel)

	var (
		convertService = convert.NewService(cfg.Convert.DefaultCompany)
		convertH       = convertHandler.NewHandler(convertService, cfg.Server.MaxUploadBytes)
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      gstHttp.New(convertH, cfg.Server.AllowedOrigins),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "port", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
