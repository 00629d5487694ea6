package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is established once at startup and handed to the services that
// need it; nothing reads the environment after Load returns.
type Config struct {
	Server struct {
		Port string
	}
	DB struct {
		Driver   string // "postgres" or "sqlite"
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		Path     string // sqlite file, used when Driver == "sqlite"
	}
	JWT struct {
		Secret   string
		TokenTTL time.Duration
	}
	Admin struct {
		APIKey string // guards the global wipe endpoint
	}
	S3 struct {
		Region string
		Bucket string
	}
}

// Load reads .env (if present), then the environment, with defaults for
// everything that has a sensible one. JWT_SECRET has no default on purpose.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("SERVER_PORT", "5000")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "macrology.db")
	v.SetDefault("JWT_TTL", time.Hour)

	v.AutomaticEnv()

	cfg := &Config{}
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.DB.Driver = v.GetString("DB_DRIVER")
	cfg.DB.Host = v.GetString("DB_HOST")
	cfg.DB.Port = v.GetString("DB_PORT")
	cfg.DB.User = v.GetString("DB_USER")
	cfg.DB.Password = v.GetString("DB_PASSWORD")
	cfg.DB.Name = v.GetString("DB_NAME")
	cfg.DB.SSLMode = v.GetString("DB_SSLMODE")
	cfg.DB.Path = v.GetString("DB_PATH")
	cfg.JWT.Secret = v.GetString("JWT_SECRET")
	cfg.JWT.TokenTTL = v.GetDuration("JWT_TTL")
	cfg.Admin.APIKey = v.GetString("ADMIN_API_KEY")
	cfg.S3.Region = v.GetString("S3_REGION")
	cfg.S3.Bucket = v.GetString("S3_BUCKET")

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

// DSN builds the postgres connection string from the DB section.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode)
}
