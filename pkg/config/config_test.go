package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "query:\n  runs: 9\nserver:\n  port: 9999\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Query.Runs != 9 || c.Server.Port != 9999 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Cache.Backend != "memory" || c.Logger.Level != "info" {
		t.Fatalf("defaults lost: %+v", c)
	}
}

func TestLoadWithEnvMissingFileFallsBack(t *testing.T) {
	t.Setenv("PUBLISHER", "")
	t.Setenv("KAFKA_BROKERS", "")
	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected defaults, got %v", err)
	}
	if c.Query.Runs != 5 {
		t.Fatalf("unexpected runs %d", c.Query.Runs)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PUBLISHER", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_TOPIC", "fintab.results")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("HTTP_PORT", "7070")

	c, err := LoadWithEnv(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Publisher.Type != "kafka" || c.Publisher.Topic != "fintab.results" {
		t.Fatalf("publisher overrides missing: %+v", c.Publisher)
	}
	if len(c.Kafka.Brokers) != 2 || c.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("broker override missing: %v", c.Kafka.Brokers)
	}
	if c.Server.Port != 7070 {
		t.Fatalf("port override missing: %d", c.Server.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"missing environment", func(c *Config) { c.Environment = "" }},
		{"bad publisher", func(c *Config) { c.Publisher.Type = "rabbitmq" }},
		{"kafka without brokers", func(c *Config) { c.Publisher.Type = "kafka"; c.Publisher.Topic = "t" }},
		{"kafka without topic", func(c *Config) {
			c.Publisher.Type = "kafka"
			c.Kafka.Brokers = []string{"k:9092"}
		}},
		{"bad cache backend", func(c *Config) { c.Cache.Backend = "disk" }},
		{"zero runs", func(c *Config) { c.Query.Runs = 0 }},
		{"bad port", func(c *Config) { c.Server.Port = -1 }},
	}
	for _, tc := range cases {
		c := Default()
		tc.mut(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
