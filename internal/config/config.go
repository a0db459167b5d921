package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Running localy or not
	Debug  bool   `env:"DEBUG" envDefault:"false"`
	Domain string `env:"DOMAIN"`

	// Transcripts settings
	Languages     []string `env:"TRANSCRIPT_LANGUAGES" envDefault:"en"`
	FailureStatus bool     `env:"HTTP_FAILURE_STATUS" envDefault:"false"`

	// Google APIs settings
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`

	// Local app host and port
	Host         string        `env:"HOST" envDefault:"localhost"`
	Port         int           `env:"PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
}

// New creates new config object
func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}
	return cfg
}

// Default returns the config built from the tag defaults only,
// ignoring the environment
func Default() *Config {
	cfg, err := parse(env.Options{Environment: map[string]string{}})
	if err != nil {
		log.Fatalf("invalid config defaults; %v", err)
	}
	return cfg
}

// Parse parses the config from the environment
func Parse() (*Config, error) {
	return parse(env.Options{})
}

func parse(opts env.Options) (*Config, error) {

	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, err
	}

	// Normalize the language codes, drop the empty ones
	var languages []string
	for _, lang := range cfg.Languages {
		if lang = strings.ToLower(strings.TrimSpace(lang)); lang != "" {
			languages = append(languages, lang)
		}
	}

	if len(languages) == 0 {
		return nil, fmt.Errorf("no transcript languages defined in env: %q", cfg.Languages)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}

	cfg.Languages = languages
	return &cfg, nil
}

// Addr returns the address the HTTP server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadDotEnv loads the env vars from a .env file.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}
