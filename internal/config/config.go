package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration. Values come from an optional YAML
// file, with environment variables taking precedence so deployments can
// override without editing the file.
type Config struct {
	Port        string   `yaml:"port"`
	DatabaseURL string   `yaml:"database_url"`
	CORSOrigins []string `yaml:"cors_origins"`
	InMemory    bool     `yaml:"in_memory"` // run without Postgres; listings reset on restart
}

const (
	portEnv        = "PORT"
	databaseURLEnv = "DATABASE_URL"
	corsOriginsEnv = "CORS_ORIGINS"
	inMemoryEnv    = "IN_MEMORY"
)

// Load reads the YAML file at path (if path is non-empty) and applies env
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Config{
		Port:        "8081",
		CORSOrigins: []string{"http://localhost:5173"},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(portEnv); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv(databaseURLEnv); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv(corsOriginsEnv); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}
	if v := os.Getenv(inMemoryEnv); v != "" {
		cfg.InMemory = strings.EqualFold(v, "true") || v == "1"
	}

	return cfg, nil
}
