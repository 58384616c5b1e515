package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config defines server configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	DB      DBConfig      `yaml:"db"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	Auth    AuthConfig    `yaml:"auth"`
	Mock    MockConfig    `yaml:"mock"`
}

type StorageConfig struct {
	Backend   string `yaml:"backend"`
	Namespace string `yaml:"namespace"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// AuthConfig holds the simulated sign-in latency.
type AuthConfig struct {
	LoginDelay  time.Duration `yaml:"login_delay"`
	SignupDelay time.Duration `yaml:"signup_delay"`
}

// MockConfig seeds the mock data generator. Zero picks a seed from the clock.
type MockConfig struct {
	Seed uint64 `yaml:"seed"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
		DB: DBConfig{
			Path: "shielddash.db",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			LoginDelay:  time.Second,
			SignupDelay: 1200 * time.Millisecond,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("SHIELDDASH_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if backend := os.Getenv("SHIELDDASH_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if ns := os.Getenv("SHIELDDASH_STORAGE_NAMESPACE"); ns != "" {
		cfg.Storage.Namespace = ns
	}
	if dbPath := os.Getenv("SHIELDDASH_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if addr := os.Getenv("SHIELDDASH_REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("SHIELDDASH_REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if dbStr := os.Getenv("SHIELDDASH_REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHIELDDASH_REDIS_DB: %w", err)
		}
		cfg.Redis.DB = db
	}
	if level := os.Getenv("SHIELDDASH_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("SHIELDDASH_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if err := durationFromEnv("SHIELDDASH_LOGIN_DELAY", &cfg.Auth.LoginDelay); err != nil {
		return Config{}, err
	}
	if err := durationFromEnv("SHIELDDASH_SIGNUP_DELAY", &cfg.Auth.SignupDelay); err != nil {
		return Config{}, err
	}
	if seedStr := os.Getenv("SHIELDDASH_MOCK_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHIELDDASH_MOCK_SEED: %w", err)
		}
		cfg.Mock.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendMemory, BackendRedis:
	default:
		return fmt.Errorf("invalid storage backend %q", c.Storage.Backend)
	}
	if c.Auth.LoginDelay < 0 || c.Auth.SignupDelay < 0 {
		return fmt.Errorf("auth delays must not be negative")
	}
	return nil
}

func durationFromEnv(name string, dst *time.Duration) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
