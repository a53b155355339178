package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/xtding233/montyhall-backend/internal/logger"
	"github.com/xtding233/montyhall-backend/internal/preset"
	"github.com/xtding233/montyhall-backend/internal/server"
)

type config struct {
	Port          string
	PresetDir     string
	LogLevel      string
	LogJSON       bool
	WatchInterval time.Duration
}

func loadConfig() config {
	_ = godotenv.Load()

	cfg := config{
		Port:          "8080",
		PresetDir:     ".",
		LogLevel:      "info",
		WatchInterval: 5 * time.Second,
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("PRESET_DIR"); v != "" {
		cfg.PresetDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogJSON = os.Getenv("LOG_JSON") == "true"
	if v := os.Getenv("PRESET_WATCH_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WatchInterval = time.Duration(n) * time.Millisecond
		}
	}
	return cfg
}

func main() {
	cfg := loadConfig()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	loader := preset.NewLoader(cfg.PresetDir)
	watcher := preset.NewDirWatcher(loader, cfg.WatchInterval, func(path string) {
		logger.Info("preset changed, cache invalidated", "path", path)
		loader.Invalidate()
	})
	watcher.Start()
	defer watcher.Stop()

	mux := server.Routes(loader)

	logger.Info("listening", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}
