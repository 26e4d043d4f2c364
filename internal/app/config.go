package app

import (
	"os"

	server "github.com/Luciacosmos/astrorailway/internal/adapters/primary/http"
	astroApi "github.com/Luciacosmos/astrorailway/internal/adapters/secondary/astroApi"
	"github.com/Luciacosmos/astrorailway/internal/adapters/secondary/storage/chartdir"
	"github.com/Luciacosmos/astrorailway/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Log      *logger.Config   `envconfig:"LOG"`
	Server   *server.Config   `envconfig:"APISERVER"`
	AstroAPI *astroApi.Config `envconfig:"ASTRO_API"`
	Charts   *chartdir.Config `envconfig:"CHARTS"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	// Railway задаёт порт через PORT без префикса
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	return cfg, nil
}
