package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Browser   BrowserConfig
	Scraper   ScraperConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // from PORT; default: 5001
	Mode string // "debug", "release", "test"; default: "release"
}

// BrowserConfig controls the Rod browser instance.
type BrowserConfig struct {
	// Headless controls whether the browser runs headless.
	Headless bool // default: true

	// NoSandbox disables Chrome's sandbox (needed in Docker).
	NoSandbox bool // default: false

	// BrowserBin overrides the Chromium binary path.
	BrowserBin string

	// Proxy is an optional proxy URL for all browser traffic.
	Proxy string
}

// ScraperConfig controls scraping behavior.
type ScraperConfig struct {
	// TargetURL is the heatmap page to scrape.
	TargetURL string

	// ScrapeTimeout is the hard deadline for one full scrape operation
	// (navigation + category selection + extraction).
	ScrapeTimeout time.Duration // default: 60s

	// NavigationTimeout is the max time for the initial page navigation.
	NavigationTimeout time.Duration // default: 20s

	// SettleDelay is how long to let the page settle after a category or
	// index click before extraction. The site renders cards asynchronously
	// after tab switches with no reliable completion signal.
	SettleDelay time.Duration // default: 3s

	// BlockedResourceTypes lists browser resource types to block.
	// Stylesheets stay enabled: tile colors come from computed CSS.
	// default: ["Image", "Font", "Media"]
	BlockedResourceTypes []string
}

// CacheConfig controls the snapshot cache.
type CacheConfig struct {
	// TTL is how long a scraped snapshot may be reused. Zero disables caching.
	TTL time.Duration // default: 60s

	// MaxEntries is the maximum number of cached snapshots per cache.
	MaxEntries int // default: 256
}

// RateLimitConfig controls per-IP rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client IP.
	RequestsPerSecond float64 // default: 2

	// Burst is the maximum burst size per client IP.
	Burst int // default: 5
}

// CORSConfig controls cross-origin access.
type CORSConfig struct {
	// AllowedOrigins lists the origins permitted to call the API.
	AllowedOrigins []string // default: the two local dev frontends
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("HEATMAP_HOST", "0.0.0.0"),
			Port: envIntOr("PORT", 5001),
			Mode: envOr("HEATMAP_MODE", "release"),
		},
		Browser: BrowserConfig{
			Headless:   envBoolOr("HEATMAP_HEADLESS", true),
			NoSandbox:  envBoolOr("HEATMAP_NO_SANDBOX", false),
			BrowserBin: os.Getenv("HEATMAP_BROWSER_BIN"),
			Proxy:      os.Getenv("HEATMAP_PROXY"),
		},
		Scraper: ScraperConfig{
			TargetURL:         envOr("HEATMAP_TARGET_URL", "https://www.nseindia.com/market-data/live-market-indices/heatmap"),
			ScrapeTimeout:     envDurationOr("HEATMAP_SCRAPE_TIMEOUT", 60*time.Second),
			NavigationTimeout: envDurationOr("HEATMAP_NAV_TIMEOUT", 20*time.Second),
			SettleDelay:       envDurationOr("HEATMAP_SETTLE_DELAY", 3*time.Second),
			BlockedResourceTypes: envSliceOr("HEATMAP_BLOCKED_RESOURCES", []string{
				"Image", "Font", "Media",
			}),
		},
		Cache: CacheConfig{
			TTL:        envDurationOr("HEATMAP_CACHE_TTL", 60*time.Second),
			MaxEntries: envIntOr("HEATMAP_CACHE_MAX_ENTRIES", 256),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("HEATMAP_RATE_RPS", 2.0),
			Burst:             envIntOr("HEATMAP_RATE_BURST", 5),
		},
		CORS: CORSConfig{
			AllowedOrigins: envSliceOr("HEATMAP_CORS_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost:3001",
			}),
		},
		Log: LogConfig{
			Level:  envOr("HEATMAP_LOG_LEVEL", "info"),
			Format: envOr("HEATMAP_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
