package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/sports-dashboard-service/internal/config"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "sports-dashboard-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	envErr := loadDotEnv(os.Getenv("ENV_FILE"))

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
		Version: appVersion,
	})
	if envErr != nil {
		logger.Warn("failed to load env file", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}

// loadDotEnv loads variables from path (default .env) without overriding the
// environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
