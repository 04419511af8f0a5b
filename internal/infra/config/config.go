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

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Scraper ScraperConfig `yaml:"scraper"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ScraperConfig points the temperature lookup at the weather site.
type ScraperConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	RulesPath      string        `yaml:"rulesPath"`
	Timeout        time.Duration `yaml:"timeout"`
	AcceptLanguage string        `yaml:"acceptLanguage"`
	UserAgents     []string      `yaml:"userAgents"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
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
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("SCRAPER_BASE_URL"); v != "" {
		cfg.Scraper.BaseURL = v
	}
	if v := os.Getenv("SCRAPER_RULES_PATH"); v != "" {
		cfg.Scraper.RulesPath = v
	}
	if v := os.Getenv("SCRAPER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Scraper.Timeout = parsed
		}
	}
	if v := os.Getenv("SCRAPER_ACCEPT_LANGUAGE"); v != "" {
		cfg.Scraper.AcceptLanguage = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
			},
		},
		Scraper: ScraperConfig{
			BaseURL:        "https://www.timeanddate.com/weather",
			RulesPath:      "configs/selectors.yaml",
			Timeout:        10 * time.Second,
			AcceptLanguage: "en-US,en;q=0.9",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Scraper.BaseURL) == "" {
		return errors.New("scraper.baseUrl cannot be empty")
	}
	if strings.TrimSpace(c.Scraper.RulesPath) == "" {
		return errors.New("scraper.rulesPath cannot be empty")
	}
	if c.Scraper.Timeout <= 0 {
		return errors.New("scraper.timeout must be positive")
	}
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= c.Scraper.Timeout {
		return errors.New("http.writeTimeout must exceed scraper.timeout")
	}
	for i, ua := range c.Scraper.UserAgents {
		if strings.TrimSpace(ua) == "" {
			return fmt.Errorf("scraper.userAgents[%d] cannot be empty", i)
		}
	}
	return nil
}
