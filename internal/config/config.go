// Package config loads service settings from configs/config.yml and AUTHAPI_* env vars.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"

	envPrefix       = "AUTHAPI"
	appDirName      = "authapi"
	defaultDataFile = "userData.json"
)

type Config struct {
	Server  ServerConfig
	Routing RoutingConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr joins host and port, e.g. "localhost:8080".
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type RoutingConfig struct {
	// Strict requires exact paths instead of substring matches.
	Strict bool
}

type StorageConfig struct {
	Driver     string
	Path       string
	SQLitePath string
}

type LogConfig struct {
	Level string
	File  string
}

// Load reads config.yml from dir (missing file is fine) and applies env overrides.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		Routing: RoutingConfig{Strict: v.GetBool("routing.strict")},
		Storage: StorageConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
			Path:       v.GetString("storage.path"),
			SQLitePath: v.GetString("storage.sqlite_path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("routing.strict", false)
	v.SetDefault("storage.driver", DriverJSON)
	v.SetDefault("storage.path", DefaultDataPath())
	v.SetDefault("storage.sqlite_path", "users.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// DefaultDataPath is the per-user application data location of the users file.
func DefaultDataPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return defaultDataFile
	}
	return filepath.Join(dir, appDirName, defaultDataFile)
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid server.shutdown_timeout %s", c.Server.ShutdownTimeout)
	}
	switch c.Storage.Driver {
	case DriverJSON:
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the json driver")
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	return nil
}
