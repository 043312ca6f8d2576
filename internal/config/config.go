package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	MigrateOnStart bool   `toml:"migrate_on_start"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// domain
	ProgramID                int    `toml:"program_id"`
	IncludeUnscopedExercises bool   `toml:"include_unscoped_exercises"`
	CatalogCacheSizeMB       int    `toml:"catalog_cache_size_mb"`
	CatalogCacheTTLSeconds   int    `toml:"catalog_cache_ttl_seconds"`
	DefaultMetric            string `toml:"default_metric"`
	WritesAllowedPerMin      int    `toml:"writes_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	return cfg, nil
}

// Load reads the TOML file and returns the config section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.CatalogCacheSizeMB <= 0 {
		c.CatalogCacheSizeMB = 10
	}
	if c.CatalogCacheTTLSeconds <= 0 {
		c.CatalogCacheTTLSeconds = 300
	}
	if c.DefaultMetric == "" {
		c.DefaultMetric = "lb"
	}
	if c.WritesAllowedPerMin <= 0 {
		c.WritesAllowedPerMin = 120
	}
}
