package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"
)

// UpstreamTimeout bounds every call to the upstream API. The transport
// default alone is not enough: a hung chat call must trip the fallback
// path instead of holding the request open.
const UpstreamTimeout = 15 * time.Second

// ChatSendTimeout bounds message resolution. AI-backed replies take
// longer than catalog reads, so the send path gets a wider window.
const ChatSendTimeout = 30 * time.Second

// UpstreamBaseURL returns the upstream API root, without a trailing slash.
func UpstreamBaseURL() string {
	url := os.Getenv("UPSTREAM_API_URL")
	if url == "" {
		url = "http://localhost:8000/api"
		log.Println("⚠️  UPSTREAM_API_URL not set, using local default:", url)
	}
	return url
}

// WithTimeout returns a context bounded by the upstream timeout.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), UpstreamTimeout)
}

// WithCustomTimeout returns a context bounded by the given duration,
// for call sites whose budget differs from the upstream default.
func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

// GetEnv reads a string env var with a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt reads an integer env var, falling back on absence or junk.
func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️  %s=%q is not an integer, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetEnvDuration reads a duration env var ("30s", "5m").
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}
