package config

import (
	"os"
	"time"
)

// Config carries all runtime settings. It is built once in main and handed to
// the components that need it; nothing in the codebase reads the environment
// after startup.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       []byte
	StripeSecretKey string
	SiteDomain      string // frontend origin used for checkout redirect URLs
	Currency        string // checkout currency, lowercase ISO code
	StoreTimeout    time.Duration
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "5000"),
		DBPath:          getEnv("DB_PATH", "chef_origin.db"),
		JWTSecret:       []byte(getEnv("JWT_SECRET", "chef_origin_super_secret_2024")),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		SiteDomain:      getEnv("SITE_DOMAIN", "http://localhost:5174"),
		Currency:        getEnv("CURRENCY", "usd"),
		StoreTimeout:    getDuration("STORE_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
