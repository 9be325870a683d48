package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the file-sharing API.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	MinIO    MinIOConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Share    ShareConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// MinIOConfig carries MinIO connection and bucket information.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	Region          string
}

// SMTPConfig carries outbound mail settings for share notifications.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	SenderEmail string
	SenderName  string
}

// AuthConfig groups bearer-token settings. Tokens are issued by an
// external identity provider; this service only decodes their claims.
type AuthConfig struct {
	BearerScheme  string
	UsernameClaim string
}

// ShareConfig groups file-sharing settings.
type ShareConfig struct {
	PresignTTL time.Duration
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("FILESHARE_API_HOST", "0.0.0.0"),
			Port:         getInt("FILESHARE_API_PORT", 8080),
			ReadTimeout:  getDuration("FILESHARE_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("FILESHARE_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("FILESHARE_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     getString("POSTGRES_HOST", "localhost"),
			Port:     getInt("POSTGRES_PORT", 5432),
			User:     getString("POSTGRES_USER", "fileshare_app"),
			Password: getString("POSTGRES_PASSWORD", "change-me"),
			Database: getString("POSTGRES_DB", "fileshare"),
			SSLMode:  strings.ToLower(getString("POSTGRES_SSL_MODE", "disable")),
		},
		MinIO: MinIOConfig{
			Endpoint:        getString("MINIO_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getString("MINIO_ROOT_USER", "fileshare"),
			SecretAccessKey: getString("MINIO_ROOT_PASSWORD", "change-me-strong-password"),
			Bucket:          getString("USER_FILES_BUCKET", "user-files"),
			UseSSL:          getBool("MINIO_USE_SSL", false),
			Region:          getString("MINIO_REGION", ""),
		},
		SMTP: SMTPConfig{
			Host:        getString("SMTP_HOST", "localhost"),
			Port:        getInt("SMTP_PORT", 587),
			Username:    getString("SMTP_USERNAME", ""),
			Password:    getString("SMTP_PASSWORD", ""),
			SenderEmail: getString("SENDER_EMAIL", "noreply@thecadors.example"),
			SenderName:  getString("SENDER_NAME", "TheCadors team"),
		},
		Auth: AuthConfig{
			BearerScheme:  getString("FILESHARE_BEARER_SCHEME", "Bearer"),
			UsernameClaim: getString("FILESHARE_USERNAME_CLAIM", "username"),
		},
		Share: ShareConfig{
			PresignTTL: getDuration("FILESHARE_PRESIGN_TTL", time.Hour),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("FILESHARE_METRICS_PATH", "/metrics"),
		},
		Logging: LoggingConfig{
			Level:  getString("FILESHARE_LOG_LEVEL", "info"),
			Format: getString("FILESHARE_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}
