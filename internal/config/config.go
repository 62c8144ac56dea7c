package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Source selects where the snapshot comes from.
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
	SourceCSV      = "csv"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"ventaspanel"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Data struct {
		Source  string `envconfig:"DATA_SOURCE" default:"seed"`
		CSVDir  string `envconfig:"DATA_CSV_DIR" default:"./data"`
		Seed    int64  `envconfig:"DATA_SEED" default:"1"`
		Records int    `envconfig:"DATA_RECORDS" default:"150"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"ventaspanel"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Export struct {
		Dir string `envconfig:"EXPORT_DIR" default:"./exports"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
