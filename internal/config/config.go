package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the service configuration. Values come from an optional
// config file and the process environment.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Port     int    `mapstructure:"port"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	Name        string `mapstructure:"name"`
	SSLRequired string `mapstructure:"ssl_required"`
	Debug       bool   `mapstructure:"debug"`
}

// SSL reports whether the connection should use TLS. Only the literal
// "false" disables it.
func (d DatabaseConfig) SSL() bool {
	return strings.TrimSpace(strings.ToLower(d.SSLRequired)) != "false"
}

// DSN renders a lib/pq connection URL.
func (d DatabaseConfig) DSN() string {
	sslMode := "disable"
	if d.SSL() {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func (d DatabaseConfig) GetDebug() bool { return d.Debug }

type S3Config struct {
	Bucket          string        `mapstructure:"bucket"`
	Region          string        `mapstructure:"region"`
	AccessKeyID     string        `mapstructure:"access_key_id"`
	SecretAccessKey string        `mapstructure:"secret_access_key"`
	Endpoint        string        `mapstructure:"endpoint"`
	SignedURLTTL    time.Duration `mapstructure:"signed_url_ttl"`
}

// Enabled reports whether uploads can be served.
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

type EventsConfig struct {
	RedisURL string `mapstructure:"redis_url"`
	Stream   string `mapstructure:"stream"`
}

var envBindings = map[string]string{
	"server.port":           "PORT",
	"server.env":            "APP_ENV",
	"server.log_level":      "LOG_LEVEL",
	"database.host":         "DB_HOST",
	"database.port":         "DB_PORT",
	"database.user":         "DB_USER",
	"database.password":     "DB_PASSWORD",
	"database.name":         "DB_NAME",
	"database.ssl_required": "SSL_REQUIRED",
	"database.debug":        "DB_DEBUG",
	"s3.bucket":             "AWS_BUCKET_NAME",
	"s3.region":             "AWS_REGION",
	"s3.access_key_id":      "AWS_ACCESS_KEY_ID",
	"s3.secret_access_key":  "AWS_SECRET_ACCESS_KEY",
	"s3.endpoint":           "AWS_S3_ENDPOINT",
	"s3.signed_url_ttl":     "AWS_SIGNED_URL_TTL",
	"events.redis_url":      "REDIS_URL",
	"events.stream":         "EVENTS_STREAM",
}

// Load reads config.yaml from paths (if present) and overlays the environment.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("server.port", 3002)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_required", "true")
	v.SetDefault("s3.region", "eu-west-1")
	v.SetDefault("s3.signed_url_ttl", "15m")
	v.SetDefault("events.stream", "club-setup:events")

	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.Database.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.Database.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Database.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
