package config

import (
	"testing"
	"time"
)

type testConfig struct {
	HTTP struct {
		Port string `yaml:"port" env:"TESTCFG_HTTP_PORT"`
	} `yaml:"http"`
	Cache struct {
		TTL time.Duration `yaml:"ttl" env:"TESTCFG_CACHE_TTL"`
	} `yaml:"cache"`
	Nested struct {
		Limit int `yaml:"limit"`
	} `yaml:"nested"`
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("TESTCFG_HTTP_PORT", "9090")
	t.Setenv("TESTCFG_CACHE_TTL", "90s")
	t.Setenv("NESTED_LIMIT", "42")

	cfg := &testConfig{}
	cfg.HTTP.Port = "8080"

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTP.Port != "9090" {
		t.Fatalf("expected env override for port, got %q", cfg.HTTP.Port)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Fatalf("expected 90s ttl, got %s", cfg.Cache.TTL)
	}
	if cfg.Nested.Limit != 42 {
		t.Fatalf("expected generated NESTED_LIMIT key to apply, got %d", cfg.Nested.Limit)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg := &testConfig{}
	cfg.HTTP.Port = "8080"

	if err := LoadConfig(cfg); err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTP.Port != "8080" {
		t.Fatalf("expected default port preserved, got %q", cfg.HTTP.Port)
	}
}

func TestLoadConfigRejectsNonStruct(t *testing.T) {
	if err := LoadConfig(nil); err == nil {
		t.Fatal("expected error for nil target")
	}
	value := "plain"
	if err := LoadConfig(&value); err == nil {
		t.Fatal("expected error for non-struct target")
	}
}
