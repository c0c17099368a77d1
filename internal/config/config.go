// Package config loads store, server and logging settings for lightbnb.
//
// Values are layered: built-in defaults, then an optional YAML file, then a
// .env file, then LBNB_* environment variables. The result is validated
// before it is returned.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration.
type Config struct {
	DB     DBConfig     `yaml:"database"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// DBConfig holds the store connection parameters.
type DBConfig struct {
	Driver   string `yaml:"driver" validate:"required,oneof=postgres sqlite"`
	Host     string `yaml:"host" validate:"required_if=Driver postgres"`
	Port     int    `yaml:"port" validate:"required_if=Driver postgres,gte=0,lte=65535"`
	Database string `yaml:"database" validate:"required_if=Driver postgres"`
	User     string `yaml:"user" validate:"required_if=Driver postgres"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	Path     string `yaml:"path" validate:"required_if=Driver sqlite"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Dev bool `yaml:"dev"`
}

// DSN returns the connection string for the configured driver.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return "file:" + c.Path + "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	} else {
		u.User = url.User(c.User)
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// Default returns the configuration used when nothing overrides it.
// Credentials are deliberately left empty.
func Default() Config {
	return Config{
		DB: DBConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			Database: "lightbnb",
			SSLMode:  "disable",
		},
		Server: ServerConfig{Port: 3000},
	}
}

// DefaultPath returns the default config file path: ~/.config/lbnb/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "lbnb", "config.yaml"), nil
}

// Load builds the configuration. An explicit path must exist; the default
// path is optional.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	if err := readFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required fields for the selected driver.
func Validate(cfg Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with any LBNB_* variables that are set.
func applyEnv(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"LBNB_DB_DRIVER", &cfg.DB.Driver},
		{"LBNB_DB_HOST", &cfg.DB.Host},
		{"LBNB_DB_NAME", &cfg.DB.Database},
		{"LBNB_DB_USER", &cfg.DB.User},
		{"LBNB_DB_PASSWORD", &cfg.DB.Password},
		{"LBNB_DB_SSLMODE", &cfg.DB.SSLMode},
		{"LBNB_DB_PATH", &cfg.DB.Path},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"LBNB_DB_PORT", &cfg.DB.Port},
		{"LBNB_SERVER_PORT", &cfg.Server.Port},
	}
	for _, i := range ints {
		v, ok := os.LookupEnv(i.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", i.key, err)
		}
		*i.dst = n
	}

	if v, ok := os.LookupEnv("LBNB_LOG_DEV"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing LBNB_LOG_DEV: %w", err)
		}
		cfg.Log.Dev = dev
	}

	return nil
}
