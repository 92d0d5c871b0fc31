package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"wreaths/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	BacklogCron    string `envconfig:"BACKLOG_CRON" default:"*/5 * * * *"`
	PriceTablePath string `envconfig:"PRICE_TABLE_PATH"`
}

// LoadConfig reads envFile into the environment when it exists, then decodes the environment.
// Variables already set in the process win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

func (c Config) DSN() string {
	return postgres.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
	}.DSN()
}

// NewLogger builds a JSON production logger, or the console development logger for LOG_LEVEL=debug.
func (c Config) NewLogger() (*zap.Logger, error) {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	if level == "debug" {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	if level != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(l)
	}
	return config.Build()
}
