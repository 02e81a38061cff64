package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Security SecurityConfig `mapstructure:"security"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port" default:"3000"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" split_words:"true" default:"15s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" split_words:"true" default:"15s"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user" default:"postgres"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name" default:"clinic"`
	SSLMode  string `mapstructure:"sslmode" default:"disable"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours" split_words:"true" default:"1"`
}

type SecurityConfig struct {
	BcryptCost     int      `mapstructure:"bcrypt_cost" split_words:"true" default:"10"`
	AllowedOrigins []string `mapstructure:"allowed_origins" split_words:"true" default:"*"`
}

// TokenExpiry returns the session token validity window.
func (c JWTConfig) TokenExpiry() time.Duration {
	return time.Duration(c.ExpiryHours) * time.Hour
}

// LoadConfig reads config.yml via viper; when no config file is present it
// falls back to CLINIC_* environment variables. There is no process-wide
// mutable state: the returned struct is handed to each component at startup.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return loadFromEnv()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &config, nil
}

func loadFromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("clinic", &config); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &config, nil
}
