package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Relay RelayConfig `yaml:"relay"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	CORSOrigins     []string      `yaml:"corsOrigins"`
}

// RelayConfig points the relay at the summarization endpoint.
type RelayConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	MaxBodyBytes   int           `yaml:"maxBodyBytes"`
	Rooms          []string      `yaml:"rooms"`
}

// Load reads configuration from .env, a YAML file and environment variables, in that order.
func Load() (*Config, error) {
	if err := loadDotEnv(os.Getenv("DOTENV_PATH")); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv never overrides variables that are already set. A missing
// default .env file is not an error; a missing explicit one is.
func loadDotEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load dotenv file: %w", err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load dotenv file: %w", err)
	}
	return nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_WRITE_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.WriteTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_SHUTDOWN_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ShutdownTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("RELAY_ENDPOINT"); v != "" {
		cfg.Relay.Endpoint = v
	}
	if v := os.Getenv("RELAY_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Relay.ConnectTimeout = parsed
		}
	}
	if v := os.Getenv("RELAY_READ_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Relay.ReadTimeout = parsed
		}
	}
	if v := os.Getenv("RELAY_MAX_BODY_BYTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Relay.MaxBodyBytes = parsed
		}
	}
	if v := os.Getenv("RELAY_ROOMS"); v != "" {
		cfg.Relay.Rooms = splitList(v)
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    160 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Relay: RelayConfig{
			ConnectTimeout: 30 * time.Second,
			ReadTimeout:    120 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ReadTimeout < 0 || c.HTTP.WriteTimeout < 0 || c.HTTP.ShutdownTimeout < 0 {
		return errors.New("http timeouts cannot be negative")
	}
	endpoint := strings.TrimSpace(c.Relay.Endpoint)
	if endpoint == "" {
		return errors.New("relay.endpoint cannot be empty")
	}
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("relay.endpoint must be an absolute http(s) URL, got %q", endpoint)
	}
	if c.Relay.ConnectTimeout <= 0 {
		return errors.New("relay.connectTimeout must be positive")
	}
	if c.Relay.ReadTimeout <= 0 {
		return errors.New("relay.readTimeout must be positive")
	}
	if c.Relay.MaxBodyBytes <= 0 {
		return errors.New("relay.maxBodyBytes must be positive")
	}
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout < c.Relay.ConnectTimeout+c.Relay.ReadTimeout {
		return errors.New("http.writeTimeout must cover relay.connectTimeout + relay.readTimeout")
	}
	return nil
}
