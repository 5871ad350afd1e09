// Package config reads server settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultAddr      = ":8080"
	DefaultBaseURL   = "https://diycalculatorpro.com"
	DefaultStaticDir = "./static/main"
	DefaultRateLimit = 5.0
	DefaultRateBurst = 10
)

type Config struct {
	Addr      string
	BaseURL   string
	TLSCert   string
	TLSKey    string
	StaticDir string
	RateLimit float64
	RateBurst int
}

// TLS reports whether both a certificate and a key are configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads files (default ".env") into the environment without overriding
// variables already set, then builds a Config. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("config: %s not found, using environment", f)
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Config{
		Addr:      or(getenv("ADDR"), DefaultAddr),
		BaseURL:   strings.TrimRight(or(getenv("BASE_URL"), DefaultBaseURL), "/"),
		TLSCert:   getenv("TLS_CERT"),
		TLSKey:    getenv("TLS_KEY"),
		StaticDir: or(getenv("STATIC_DIR"), DefaultStaticDir),
		RateLimit: DefaultRateLimit,
		RateBurst: DefaultRateBurst,
	}
	if v := getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("config: RATE_LIMIT must be a positive number, got %q", v)
		}
		c.RateLimit = f
	}
	if v := getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: RATE_BURST must be a positive integer, got %q", v)
		}
		c.RateBurst = n
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		log.Printf("config: TLS_CERT and TLS_KEY must both be set, serving plain HTTP")
	}
	return c, nil
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
