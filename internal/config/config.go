package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	timex "github.com/ferdiebergado/accounts/internal/pkg/time"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Server struct {
	URL             string         `json:"url,omitempty"`
	Port            int            `json:"port,omitempty"`
	ReadTimeout     timex.Duration `json:"read_timeout,omitempty"`
	WriteTimeout    timex.Duration `json:"write_timeout,omitempty"`
	IdleTimeout     timex.Duration `json:"idle_timeout,omitempty"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout,omitempty"`
	MaxBodyBytes    int64          `json:"max_body_bytes,omitempty"`
}

type DB struct {
	Driver          string         `json:"driver,omitempty"`
	MaxOpenConns    int            `json:"max_open_conns,omitempty"`
	MaxIdleConns    int            `json:"max_idle_conns,omitempty"`
	ConnMaxIdleTime timex.Duration `json:"conn_max_idle_time,omitempty"`
	ConnMaxLifetime timex.Duration `json:"conn_max_lifetime,omitempty"`
	PingTimeout     timex.Duration `json:"ping_timeout,omitempty"`
	AutoMigrate     bool           `json:"auto_migrate,omitempty"`
}

type Argon2 struct {
	Memory     uint32 `json:"memory,omitempty"`
	Iterations uint32 `json:"iterations,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLength uint32 `json:"salt_length,omitempty"`
	KeyLength  uint32 `json:"key_length,omitempty"`
}

type Log struct {
	Level string `json:"level,omitempty"`
}

// Store selects the User Store implementation.
type Store struct {
	Driver string `json:"driver,omitempty"`
}

type Config struct {
	Server *Server `json:"server,omitempty"`
	DB     *DB     `json:"db,omitempty"`
	Argon2 *Argon2 `json:"argon2,omitempty"`
	Log    *Log    `json:"log,omitempty"`
	Store  *Store  `json:"store,omitempty"`
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("server", c.Server),
		slog.Any("db", c.DB),
		slog.Any("argon2", c.Argon2),
		slog.Any("log", c.Log),
		slog.Any("store", c.Store),
	)
}

// Load reads the JSON config file and applies environment overrides.
func Load(cfgFile string) (*Config, error) {
	slog.Info("Loading config...")
	cfg, err := parseFile(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Info("Config loaded.", "config_file", cfgFile, slog.Any("config", cfg))
	return cfg, nil
}

func parseFile(cfgFile string) (*Config, error) {
	cfgFile = filepath.Clean(cfgFile)
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", cfgFile, err)
	}

	cfg := &Config{
		Server: &Server{},
		DB:     &DB{},
		Argon2: &Argon2{},
		Log:    &Log{},
		Store:  &Store{Driver: StoreDriverPostgres},
	}
	if err := json.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("decode json config %s: %w", cfgFile, err)
	}

	return cfg, nil
}

func overrideWithEnv(cfg *Config) error {
	if url, ok := os.LookupEnv("URL"); ok {
		cfg.Server.URL = url
	}

	if portStr, ok := os.LookupEnv("PORT"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("parse PORT %q: %w", portStr, err)
		}
		cfg.Server.Port = port
	}

	if driver, ok := os.LookupEnv("STORE_DRIVER"); ok {
		cfg.Store.Driver = driver
	}

	if level, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.Log.Level = level
	}

	return nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported store driver: %q", c.Store.Driver)
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	return nil
}
