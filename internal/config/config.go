package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Database    DatabaseConfig
	Advisor     AdvisorConfig
	CORS        CORSConfig
	Environment EnvironmentConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type AdvisorConfig struct {
	Enabled     bool
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type EnvironmentConfig struct {
	DescriptorPath string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "postgres")
	v.SetDefault("DATABASE_NAME", "tokenomics")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_CONNS", 10)
	v.SetDefault("DATABASE_MIN_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("ADVISOR_ENABLED", true)
	v.SetDefault("ADVISOR_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("ADVISOR_MODEL", "gpt-4o")
	v.SetDefault("ADVISOR_TEMPERATURE", 0.7)
	v.SetDefault("ADVISOR_MAX_TOKENS", 1000)
	v.SetDefault("ADVISOR_TIMEOUT", "60s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("DEVCONTAINER_PATH", ".devcontainer/devcontainer.json")

	// Env
	v.AutomaticEnv()

	connLifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		connLifetime = time.Hour
	}

	advisorTimeout, err := time.ParseDuration(v.GetString("ADVISOR_TIMEOUT"))
	if err != nil {
		advisorTimeout = 60 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MIN_CONNS"),
			ConnMaxLifetime: connLifetime,
		},
		Advisor: AdvisorConfig{
			Enabled:     v.GetBool("ADVISOR_ENABLED"),
			APIKey:      v.GetString("OPENAI_API_KEY"),
			BaseURL:     v.GetString("ADVISOR_BASE_URL"),
			Model:       v.GetString("ADVISOR_MODEL"),
			Temperature: v.GetFloat64("ADVISOR_TEMPERATURE"),
			MaxTokens:   v.GetInt("ADVISOR_MAX_TOKENS"),
			Timeout:     advisorTimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Environment: EnvironmentConfig{
			DescriptorPath: v.GetString("DEVCONTAINER_PATH"),
		},
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
