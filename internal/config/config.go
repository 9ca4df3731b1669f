package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Engine    EngineConfig    `yaml:"engine"`
	Readiness ReadinessConfig `yaml:"readiness"`
	Data      DataConfig      `yaml:"data"`
	Events    EventsConfig    `yaml:"events"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

type EngineConfig struct {
	LowThreshold    float64 `yaml:"low_threshold"`
	HighThreshold   float64 `yaml:"high_threshold"`
	TopContributors int     `yaml:"top_contributors"`
}

type ReadinessConfig struct {
	HighResidualThreshold int `yaml:"high_residual_threshold"`
}

type DataConfig struct {
	DecisionMatrixPath   string `yaml:"decision_matrix_path"`
	ControlCataloguePath string `yaml:"control_catalogue_path"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Engine: EngineConfig{
			LowThreshold:    20.0,
			HighThreshold:   45.0,
			TopContributors: 5,
		},
		Readiness: ReadinessConfig{
			HighResidualThreshold: 4,
		},
		Data: DataConfig{
			DecisionMatrixPath:   "data/decision_matrices/approve_supplier_onboarding.json",
			ControlCataloguePath: "data/control_catalogue.csv",
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Engine.LowThreshold >= cfg.Engine.HighThreshold {
		return nil, fmt.Errorf("low threshold %.2f must be below high threshold %.2f",
			cfg.Engine.LowThreshold, cfg.Engine.HighThreshold)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("VERDICT_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("VERDICT_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("VERDICT_LOW_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.LowThreshold = f
		}
	}
	if v := os.Getenv("VERDICT_HIGH_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Engine.HighThreshold = f
		}
	}
	if v := os.Getenv("VERDICT_TOP_CONTRIBUTORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.TopContributors = n
		}
	}
	if v := os.Getenv("VERDICT_HIGH_RESIDUAL_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Readiness.HighResidualThreshold = n
		}
	}
	if v := os.Getenv("VERDICT_DECISION_MATRIX_PATH"); v != "" {
		cfg.Data.DecisionMatrixPath = v
	}
	if v := os.Getenv("VERDICT_CONTROL_CATALOGUE_PATH"); v != "" {
		cfg.Data.ControlCataloguePath = v
	}
	if v := os.Getenv("VERDICT_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("VERDICT_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
