package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	libconfig "eyewave/backend/libs/config"
)

// Config defines report service configuration.
type Config struct {
	HTTP struct {
		Port string `yaml:"port" env:"REPORT_HTTP_PORT"`
	} `yaml:"http"`
	Platform struct {
		BaseURL        string `yaml:"baseUrl" env:"PLATFORM_BASE_URL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" env:"PLATFORM_HTTP_TIMEOUT"`
	} `yaml:"platform"`
	JWT struct {
		Secret     string `yaml:"secret" env:"REPORT_JWT_SECRET"`
		TTLMinutes int    `yaml:"ttlMinutes" env:"REPORT_JWT_TTL"`
	} `yaml:"jwt"`
	Redis struct {
		Addr              string `yaml:"addr" env:"REPORT_REDIS_ADDR"`
		Password          string `yaml:"password" env:"REPORT_REDIS_PASSWORD"`
		DB                int    `yaml:"db" env:"REPORT_REDIS_DB"`
		SessionTTLMinutes int    `yaml:"sessionTtlMinutes" env:"REPORT_SESSION_TTL"`
		SamplesTTLMinutes int    `yaml:"samplesTtlMinutes" env:"REPORT_SAMPLES_TTL"`
	} `yaml:"redis"`
	Chart struct {
		DefaultBucketSize int `yaml:"defaultBucketSize" env:"REPORT_CHART_BUCKET_SIZE"`
	} `yaml:"chart"`
}

// Load reads configuration via shared helper. The redis addr is optional:
// without it sessions live in process memory and sample caching is off.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP: struct {
			Port string `yaml:"port" env:"REPORT_HTTP_PORT"`
		}{
			Port: "8080",
		},
		Platform: struct {
			BaseURL        string `yaml:"baseUrl" env:"PLATFORM_BASE_URL"`
			TimeoutSeconds int    `yaml:"timeoutSeconds" env:"PLATFORM_HTTP_TIMEOUT"`
		}{
			BaseURL:        "https://api-hlp.o-r.kr",
			TimeoutSeconds: 10,
		},
		JWT: struct {
			Secret     string `yaml:"secret" env:"REPORT_JWT_SECRET"`
			TTLMinutes int    `yaml:"ttlMinutes" env:"REPORT_JWT_TTL"`
		}{
			TTLMinutes: 60,
		},
		Redis: struct {
			Addr              string `yaml:"addr" env:"REPORT_REDIS_ADDR"`
			Password          string `yaml:"password" env:"REPORT_REDIS_PASSWORD"`
			DB                int    `yaml:"db" env:"REPORT_REDIS_DB"`
			SessionTTLMinutes int    `yaml:"sessionTtlMinutes" env:"REPORT_SESSION_TTL"`
			SamplesTTLMinutes int    `yaml:"samplesTtlMinutes" env:"REPORT_SAMPLES_TTL"`
		}{
			SessionTTLMinutes: 720,
			SamplesTTLMinutes: 10,
		},
		Chart: struct {
			DefaultBucketSize int `yaml:"defaultBucketSize" env:"REPORT_CHART_BUCKET_SIZE"`
		}{
			DefaultBucketSize: 50,
		},
	}

	if err := libconfig.LoadConfig(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.New("config: jwt secret required")
	}
	if strings.TrimSpace(cfg.Platform.BaseURL) == "" {
		return nil, errors.New("config: platform base url required")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// PlatformTimeout returns http client timeout.
func (c *Config) PlatformTimeout() time.Duration {
	if c.Platform.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Platform.TimeoutSeconds) * time.Second
}

// JWTTTL returns gateway token lifetime.
func (c *Config) JWTTTL() time.Duration {
	if c.JWT.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.JWT.TTLMinutes) * time.Minute
}

// SessionTTL returns session store lifetime.
func (c *Config) SessionTTL() time.Duration {
	if c.Redis.SessionTTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.Redis.SessionTTLMinutes) * time.Minute
}

// SamplesTTL returns samples cache lifetime.
func (c *Config) SamplesTTL() time.Duration {
	if c.Redis.SamplesTTLMinutes <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.Redis.SamplesTTLMinutes) * time.Minute
}

// DefaultBucketSize returns the smoothing default for chart endpoints.
func (c *Config) DefaultBucketSize() int {
	if c.Chart.DefaultBucketSize <= 0 {
		return 50
	}
	return c.Chart.DefaultBucketSize
}
