package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Logger      struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		Output     string `yaml:"output"`
		TimeFormat string `yaml:"time_format"`
	} `yaml:"logger"`
	Input struct {
		// Path carries the positional CLI argument; it is not read from
		// yaml.
		Path         string        `yaml:"-"`
		FetchTimeout time.Duration `yaml:"fetch_timeout"`
	} `yaml:"input"`
	Query struct {
		Runs int `yaml:"runs"` // timed evaluation repetitions, minimum duration is reported
	} `yaml:"query"`
	Server struct {
		Enabled         bool          `yaml:"enabled"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Publisher struct {
		Type      string `yaml:"type"` // "" disables publishing, or "kafka"
		Topic     string `yaml:"topic"`
		LogsTopic string `yaml:"logs_topic"` // aggregated error logs, empty disables
	} `yaml:"publisher"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	Cache struct {
		Backend string        `yaml:"backend"` // memory, redis, layered
		TTL     time.Duration `yaml:"ttl"`
		Memory  struct {
			MaxSize int `yaml:"max_size"`
		} `yaml:"memory"`
		Redis struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Default returns the configuration used when no file is present. The
// binary must work with a bare input path and nothing else.
func Default() *Config {
	c := &Config{}
	c.Environment = "production"
	c.Logger.Level = "info"
	c.Logger.Format = "console"
	c.Logger.Output = "stderr"
	c.Input.FetchTimeout = 30 * time.Second
	c.Query.Runs = 5
	c.Server.Port = 8080
	c.Server.ReadTimeout = 10 * time.Second
	c.Server.WriteTimeout = 10 * time.Second
	c.Server.ShutdownTimeout = 10 * time.Second
	c.Metrics.Enabled = true
	c.Metrics.Path = "/metrics"
	c.Cache.Backend = "memory"
	c.Cache.TTL = 5 * time.Minute
	c.Cache.Memory.MaxSize = 1000
	c.Cache.Redis.Host = "localhost"
	c.Cache.Redis.Port = 6379
	c.Cache.Redis.Prefix = "fintab"
	return c
}

// Load reads and parses a YAML configuration file over the defaults, so a
// partial file only overrides what it names.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// LoadWithEnv loads config and overrides with environment variables. A
// missing file is not an error; the defaults apply.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		c = Default()
	} else if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("PUBLISHER"); v != "" {
		c.Publisher.Type = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Publisher.Topic = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Cache.Redis.Host = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Publisher.Type {
	case "", "kafka":
	default:
		return fmt.Errorf("publisher.type must be empty or 'kafka', got '%s'", c.Publisher.Type)
	}
	if c.Publisher.Type == "kafka" {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty")
		}
		if c.Publisher.Topic == "" {
			return fmt.Errorf("publisher.topic is required")
		}
	}
	switch c.Cache.Backend {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.backend must be 'memory', 'redis' or 'layered', got '%s'", c.Cache.Backend)
	}
	if c.Query.Runs < 1 {
		return fmt.Errorf("query.runs must be at least 1")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be a valid port, got %d", c.Server.Port)
	}
	return nil
}
