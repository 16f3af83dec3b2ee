package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del cliente y del stub de desarrollo.
type Config struct {
	PredictBaseURL string        `env:"PREDICT_BASE_URL" envDefault:"http://localhost:8000"`
	PredictTimeout time.Duration `env:"PREDICT_TIMEOUT" envDefault:"0s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string        `env:"LOG_FILE"`
	BarWidth       int           `env:"BAR_WIDTH" envDefault:"40"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"0s"`
	StubHTTPPort   string        `env:"STUB_HTTP_PORT" envDefault:"8000"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = 40
	}
	return &cfg, nil
}
