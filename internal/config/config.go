package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress        = ":3000"
	DefaultAPIAddress        = "http://localhost:3333"
	DefaultSessionCookieName = "fastfeet.session"
	DefaultCacheFreshness    = 30 * time.Second
)

type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	APIAddress        string        `env:"API_ADDRESS"`
	SessionCookieName string        `env:"SESSION_COOKIE_NAME"`
	CacheFreshness    time.Duration `env:"CACHE_FRESHNESS"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.APIAddress, "r", DefaultAPIAddress, "FastFeet API address protocol://hostname:port")
	flag.StringVar(&config.SessionCookieName, "c", DefaultSessionCookieName, "Session cookie name issued by the API")
	flag.DurationVar(&config.CacheFreshness, "f", DefaultCacheFreshness, "Cached data freshness window (e.g. 30s, 1m)")

	flag.Parse()

	// Optional .env next to the binary. Real env vars still win.
	_ = godotenv.Load()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
