package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FOLIO"

// legacyEnv maps config keys to the unprefixed variable names used by the
// original deployment. They are consulted after the FOLIO_ variant.
var legacyEnv = map[string]string{
	"database.url":        "DATABASE_URL",
	"supabase.url":        "SUPABASE_URL",
	"supabase.key":        "SUPABASE_KEY",
	"supabase.jwt_secret": "SUPABASE_JWT_SECRET",
}

// Load configuration from a .env file, an optional config.yaml and
// environment variables. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading or validation fails.
func Load() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:3000"})
	v.SetDefault("server.max_upload_bytes", 10<<20)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 0)

	v.SetDefault("supabase.url", "")
	v.SetDefault("supabase.key", "")
	v.SetDefault("supabase.jwt_secret", "")

	v.SetDefault("auth.mode", "remote")

	v.SetDefault("storage.driver", "supabase")
	v.SetDefault("storage.bucket", "portfolio-assets")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.access_key_id", "")
	v.SetDefault("storage.secret_access_key", "")
	v.SetDefault("storage.use_ssl", true)
	v.SetDefault("storage.public_base_url", "")

	v.SetDefault("remote.timeout_seconds", 10)
}

// validate runs struct-tag validation followed by the rules that depend on
// more than one field.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	if cfg.Auth.Mode == "jwt" && len(cfg.Supabase.JWTSecret) < 32 {
		return errors.New("supabase.jwt_secret must be at least 32 characters when auth.mode is jwt")
	}

	if cfg.Storage.Driver == "s3" {
		switch {
		case cfg.Storage.Endpoint == "":
			return errors.New("storage.endpoint is required for the s3 driver")
		case cfg.Storage.AccessKeyID == "" || cfg.Storage.SecretAccessKey == "":
			return errors.New("storage credentials are required for the s3 driver")
		case cfg.Storage.PublicBaseURL == "":
			return errors.New("storage.public_base_url is required for the s3 driver")
		}
	}

	return nil
}

// RemoteTimeout returns the per-call deadline for outbound requests.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.Remote.TimeoutSeconds) * time.Second
}
