package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.True(t, cfg.Browser.Headless)
	assert.False(t, cfg.Browser.NoSandbox)

	assert.Contains(t, cfg.Scraper.TargetURL, "nseindia.com")
	assert.Equal(t, 60*time.Second, cfg.Scraper.ScrapeTimeout)
	assert.Equal(t, []string{"Image", "Font", "Media"}, cfg.Scraper.BlockedResourceTypes)
	assert.NotContains(t, cfg.Scraper.BlockedResourceTypes, "Stylesheet",
		"stylesheets must load so tile colors render")

	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("HEATMAP_HEADLESS", "false")
	t.Setenv("HEATMAP_CACHE_TTL", "5m")
	t.Setenv("HEATMAP_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HEATMAP_RATE_RPS", "7.5")

	cfg := Load()

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 7.5, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("HEATMAP_CACHE_TTL", "soon")
	t.Setenv("HEATMAP_HEADLESS", "maybe")

	cfg := Load()

	assert.Equal(t, 5001, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Cache.TTL)
	assert.True(t, cfg.Browser.Headless)
}
