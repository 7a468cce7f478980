package config

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/davidahmann/edsign/internal/crypto"
	"github.com/davidahmann/edsign/internal/encoding"
	"github.com/davidahmann/edsign/internal/seed"
)

type Config struct {
	ListenAddr string        `yaml:"listen_addr"`
	Log        LogConfig     `yaml:"log"`
	Signing    SigningConfig `yaml:"signing"`
	Encoding   string        `yaml:"encoding"`
	Metrics    MetricsConfig `yaml:"metrics"`
	Auth       AuthConfig    `yaml:"auth"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type SigningConfig struct {
	Primitive string `yaml:"primitive"`
	SeedHash  string `yaml:"seed_hash"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type AuthConfig struct {
	Token string `yaml:"token"`
}

func Default() Config {
	return Config{
		ListenAddr: ":8080",
		Log:        LogConfig{Level: "warn", Format: "text"},
		Signing:    SigningConfig{Primitive: crypto.PrimitiveStandard, SeedHash: string(seed.SHA256)},
		Encoding:   string(encoding.Hex),
		Metrics:    MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads a YAML file over Default, expanding ${ENV} references first.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is operator-provided config path.
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	expanded := os.ExpandEnv(string(raw))
	expanded = strings.ReplaceAll(expanded, "\r\n", "\n")

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr is required")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error, fatal", c.Log.Level)
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}

	if _, err := crypto.PrimitiveByName(c.Signing.Primitive); err != nil {
		return fmt.Errorf("signing.primitive: %w", err)
	}
	if _, err := seed.ParseAlgorithm(c.Signing.SeedHash); err != nil {
		return fmt.Errorf("signing.seed_hash: %w", err)
	}
	if _, err := encoding.Parse(c.Encoding); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if c.Metrics.Enabled {
		if err := validateMetricsPath(c.Metrics.Path); err != nil {
			return err
		}
	}

	return nil
}

// validateMetricsPath rejects paths the gateway router could not register.
func validateMetricsPath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("metrics.path must start with / when metrics.enabled=true")
	}
	if strings.ContainsAny(path, "{}") || strings.IndexFunc(path, unicode.IsSpace) >= 0 {
		return fmt.Errorf("metrics.path %q must not contain braces or whitespace", path)
	}
	if path == "/" || path == "/healthz" || path == "/v1" || strings.HasPrefix(path, "/v1/") {
		return fmt.Errorf("metrics.path %q collides with a gateway route", path)
	}
	return nil
}
