package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Config mirrors config/config.yaml.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Google   GoogleConfig   `mapstructure:"google"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig is the HTTP listener configuration.
type ServerConfig struct {
	Port int    `mapstructure:"port"` // listen port
	Mode string `mapstructure:"mode"` // gin mode: debug/release/test
}

// DatabaseConfig is the PostgreSQL connection configuration.
type DatabaseConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// GoogleConfig configures access to the Google Sheets API. Exactly one of
// CredentialsJSON, CredentialsFile or APIKey is required; they are tried in
// that order.
type GoogleConfig struct {
	CredentialsJSON string `mapstructure:"credentials_json"` // inline service-account key
	CredentialsFile string `mapstructure:"credentials_file"` // path to a service-account key file
	APIKey          string `mapstructure:"api_key"`          // API key, read-only public sheets
	Timeout         int    `mapstructure:"timeout"`          // request timeout in seconds
	Proxy           string `mapstructure:"proxy"`            // optional HTTP proxy
}

// CORSConfig lists the origins the dashboard frontend is served from.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoadConfig reads config/config.yaml, then overrides sensitive fields from
// the environment (.env is loaded first if present, env > yaml).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	viper.SetTypeByDefaultValue(true)
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	overrideFromEnv(&cfg)
	return &cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_JSON"); v != "" {
		cfg.Google.CredentialsJSON = v
	}
	if v := os.Getenv("GOOGLE_CREDENTIALS_FILE"); v != "" {
		cfg.Google.CredentialsFile = v
	}
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Google.APIKey = v
	}
	if v := os.Getenv("GOOGLE_PROXY"); v != "" {
		cfg.Google.Proxy = v
	}
}

// GetGORMConfig returns the gorm options used when opening the database.
func (d *DatabaseConfig) GetGORMConfig() gorm.Config {
	return gorm.Config{}
}
