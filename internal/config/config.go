package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/paydeck/transactions-console/internal/clipboard"
	"github.com/paydeck/transactions-console/internal/engine"
)

type Config struct {
	Addr            string
	LogLevel        string
	GatewayBaseURL  string
	PageSize        int
	CounterDuration time.Duration
	CopiedTTL       time.Duration
}

func New() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Addr:            getenv("ADDR", ":8080"),
		LogLevel:        os.Getenv("LOGLEVEL"),
		GatewayBaseURL:  getenv("GATEWAY_BASE_URL", "https://school-payment-manage-backend.onrender.com"),
		PageSize:        engine.DefaultPageSize,
		CounterDuration: engine.DefaultCounterDuration,
		CopiedTTL:       clipboard.DefaultCopiedTTL,
	}
}

// settings is the optional console tuning file (console.yaml).
type settings struct {
	PageSize          int `yaml:"page_size"`
	CounterDurationMs int `yaml:"counter_duration_ms"`
	CopiedTTLMs       int `yaml:"copied_ttl_ms"`
}

// LoadSettings overlays console tuning from a YAML file. A missing file
// leaves the defaults in place.
func (c *Config) LoadSettings(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var s settings
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if s.PageSize > 0 {
		c.PageSize = s.PageSize
	}
	if s.CounterDurationMs > 0 {
		c.CounterDuration = time.Duration(s.CounterDurationMs) * time.Millisecond
	}
	if s.CopiedTTLMs > 0 {
		c.CopiedTTL = time.Duration(s.CopiedTTLMs) * time.Millisecond
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
