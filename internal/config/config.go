package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment" env:"FITLOG_ENVIRONMENT"`
	Host        string `toml:"host" env:"FITLOG_HOST"`
	Port        int    `toml:"port" env:"FITLOG_PORT"`

	// logging
	LogLevel      string `toml:"log_level" env:"FITLOG_LOG_LEVEL"`
	LogsPath      string `toml:"logs_path" env:"FITLOG_LOGS_PATH"`
	LogToStdout   bool   `toml:"log_to_stdout" env:"FITLOG_LOG_TO_STDOUT"`
	SentryEnabled bool   `toml:"sentry_enabled" env:"FITLOG_SENTRY_ENABLED"`

	// postgres
	PostgresHost   string `toml:"postgres_host" env:"FITLOG_POSTGRES_HOST"`
	PostgresPort   string `toml:"postgres_port" env:"FITLOG_POSTGRES_PORT"`
	PostgresDBName string `toml:"postgres_db_name" env:"FITLOG_POSTGRES_DB_NAME"`

	// redis
	RedisHost string `toml:"redis_host" env:"FITLOG_REDIS_HOST"`
	RedisPort string `toml:"redis_port" env:"FITLOG_REDIS_PORT"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host" env:"FITLOG_PROM_HOST"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port" env:"FITLOG_PROM_PORT"`

	// open food facts client
	NutritionApiBaseURL string `toml:"nutrition_api_base_url" env:"FITLOG_NUTRITION_API_BASE_URL"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min" env:"FITLOG_LOGIN_RATE_LIMIT_PER_MIN"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config for the given environment, then applies
// env var overrides on top of it.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	if cfg.Environment == "" {
		cfg.Environment = env
	}

	return cfg, nil
}
