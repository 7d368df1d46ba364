package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"promptatlas/internal/platform/envutil"
)

func defaultConfig() *Config {
	return &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: Duration{5 * time.Second},
			IdleTimeout:       Duration{60 * time.Second},
			ShutdownTimeout:   Duration{10 * time.Second},
			AllowOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
		DataPath: "data/dataset.json",
	}
}

// Load builds the config from defaults, an optional YAML file, and env
// overrides, in that order. An empty path skips the file step; a named
// file that cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Env = envutil.String("LOG_MODE", c.Env)
	c.HTTP.Addr = envutil.String("PROMPTATLAS_ADDR", c.HTTP.Addr)
	c.DataPath = envutil.String("PROMPTATLAS_DATA", c.DataPath)
	if port := envutil.String("PORT", ""); port != "" {
		c.HTTP.Addr = ":" + port
	}
}
