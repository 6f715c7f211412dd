package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDR" env-default:":3000"`
}

type Database struct {
	Host            string        `yaml:"host" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"password" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"name" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"sslmode" env:"PG_SSLMODE" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"development"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
}

// Load reads configuration from the given YAML file with environment
// overrides. An empty path falls back to CONFIG_PATH, and to environment
// variables alone when neither is set.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading config from environment: %w", err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return &cfg, nil
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}
