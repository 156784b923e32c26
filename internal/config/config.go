package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Simulated latency for the mock collaborators. Zero disables the pause.
	CheckoutDelay time.Duration
	AuthDelay     time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "8085"),
		CheckoutDelay:    parseDuration(getenv("CHECKOUT_DELAY", "2s"), 2*time.Second),
		AuthDelay:        parseDuration(getenv("AUTH_DELAY", "1s"), time.Second),
		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
