// Package config loads process settings from an optional config file and the environment.
//
// Keys are read with the DAOEX_ prefix (DAOEX_DATABASE_DSN, DAOEX_HTTP_PORT, ...).
// The unprefixed variables older deployments set (POSTGRES_DSN, PORT, TEMPORAL_*)
// are still honoured when the prefixed form is absent.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const envPrefix = "DAOEX"

// Config is the root configuration shared by the api, worker and migrate binaries.
type Config struct {
	Environment string          `mapstructure:"environment" validate:"required"`
	HTTP        HTTPConfig      `mapstructure:"http"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Temporal    TemporalConfig  `mapstructure:"temporal"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
}

type HTTPConfig struct {
	Port     string `mapstructure:"port" validate:"required,numeric"`
	BasePath string `mapstructure:"base_path" validate:"required,startswith=/"`
}

type DatabaseConfig struct {
	// DSN may be empty; the api then falls back to in-memory repositories.
	DSN                 string        `mapstructure:"dsn"`
	AutoMigrate         bool          `mapstructure:"auto_migrate"`
	MaxOpenConns        int           `mapstructure:"max_open_conns" validate:"min=1"`
	MaxIdleConns        int           `mapstructure:"max_idle_conns" validate:"min=0,ltefield=MaxOpenConns"`
	ConnMaxLifetime     time.Duration `mapstructure:"conn_max_lifetime" validate:"min=0"`
	TraceQueryVariables bool          `mapstructure:"trace_query_variables"`
}

type TemporalConfig struct {
	Address   string `mapstructure:"address" validate:"required,hostname_port"`
	Namespace string `mapstructure:"namespace" validate:"required"`
	Disabled  bool   `mapstructure:"disabled"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool   `mapstructure:"otlp_insecure"`
	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// legacyEnv lists unprefixed variables accepted for a key after its DAOEX_ form.
var legacyEnv = map[string][]string{
	"environment":             {"ENVIRONMENT"},
	"http.port":               {"PORT"},
	"database.dsn":            {"POSTGRES_DSN"},
	"temporal.address":        {"TEMPORAL_ADDRESS"},
	"temporal.namespace":      {"TEMPORAL_NAMESPACE"},
	"temporal.disabled":       {"TEMPORAL_DISABLED"},
	"telemetry.otlp_endpoint": {"OTEL_EXPORTER_OTLP_ENDPOINT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "local")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.base_path", "/api/v1")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.auto_migrate", false)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)
	v.SetDefault("database.trace_query_variables", false)
	v.SetDefault("temporal.address", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.disabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.otlp_insecure", true)
	v.SetDefault("telemetry.log_level", "info")
}

// Load reads config.yaml (if present), then the environment, and validates the result.
// Environment variables take precedence over the file.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/daoex")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range legacyEnv {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(append([]string{key, prefixed}, names...)...); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Telemetry.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Telemetry.LogLevel))
	cfg.Database.DSN = strings.TrimSpace(cfg.Database.DSN)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the struct constraints and reports every failing field.
func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
