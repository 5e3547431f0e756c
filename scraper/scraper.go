package scraper

import (
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/use-agent/tickerheat/config"
	"github.com/use-agent/tickerheat/models"
)

// Scraper drives a single headless browser session against the heatmap page.
//
// The target site tolerates exactly one browser per service instance, so all
// scrape calls serialise on mu. Safe for concurrent use.
type Scraper struct {
	browser    *rod.Browser
	browserCfg config.BrowserConfig
	scraperCfg config.ScraperConfig

	mu     sync.Mutex // guards page + router: one scrape at a time
	page   *rod.Page
	router *rod.HijackRouter

	startTime time.Time
}

// NewScraper launches a headless browser and connects to it. The shared page
// is created lazily on first scrape.
func NewScraper(browserCfg config.BrowserConfig, scraperCfg config.ScraperConfig) (*Scraper, error) {
	l := launcher.New().
		Headless(browserCfg.Headless).
		NoSandbox(browserCfg.NoSandbox)

	if browserCfg.BrowserBin != "" {
		l = l.Bin(browserCfg.BrowserBin)
	}
	if browserCfg.Proxy != "" {
		l = l.Proxy(browserCfg.Proxy)
	}

	// ── Anti-automation flags ───────────────────────────────────────
	l.Set(flags.Flag("disable-blink-features"), "AutomationControlled")
	l.Delete(flags.Flag("enable-automation"))
	l.Set(flags.Flag("disable-features"), "AudioServiceOutOfProcess,TranslateUI")
	l.Set(flags.Flag("disable-popup-blocking"))
	l.Set(flags.Flag("disable-renderer-backgrounding"))
	l.Set(flags.Flag("disable-background-timer-throttling"))
	l.Set(flags.Flag("disable-backgrounding-occluded-windows"))
	l.Set(flags.Flag("disable-component-update"))
	l.Set(flags.Flag("disable-default-apps"))
	l.Set(flags.Flag("disable-dev-shm-usage"))
	l.Set(flags.Flag("disable-extensions"))
	l.Set(flags.Flag("disable-gpu"))
	l.Set(flags.Flag("no-first-run"))

	controlURL, err := l.Launch()
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to launch browser",
			err,
		)
	}
	slog.Info("browser launched", "controlURL", controlURL)

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to connect to browser",
			err,
		)
	}

	return &Scraper{
		browser:    browser,
		browserCfg: browserCfg,
		scraperCfg: scraperCfg,
		startTime:  time.Now(),
	}, nil
}

// ensurePage returns the shared page, creating it if needed.
// Caller must hold mu.
func (s *Scraper) ensurePage() (*rod.Page, error) {
	if s.page != nil {
		return s.page, nil
	}

	page, err := s.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, models.NewScrapeError(
			models.ErrCodeBrowserCrash,
			"failed to create browser page",
			err,
		)
	}

	// Stealth and resource blocking must be installed before any navigation
	// on the page; they only affect subsequent loads.
	if _, evalErr := page.EvalOnNewDocument(stealth.JS); evalErr != nil {
		slog.Warn("stealth injection failed, proceeding without stealth", "error", evalErr)
	}
	s.router = setupHijack(page, s.scraperCfg.BlockedResourceTypes)

	s.page = page
	slog.Info("scrape page created", "blockedResources", s.scraperCfg.BlockedResourceTypes)
	return page, nil
}

// resetPage discards the shared page after a failure so the next scrape
// starts from a fresh tab. Caller must hold mu.
func (s *Scraper) resetPage() {
	if s.router != nil {
		_ = s.router.Stop()
		s.router = nil
	}
	if s.page != nil {
		_ = s.page.Close()
		s.page = nil
	}
}

// Uptime reports how long the scraper has been running.
func (s *Scraper) Uptime() time.Duration {
	return time.Since(s.startTime)
}

// Close stops the hijack router, closes the shared page and kills the
// browser process. Call on graceful shutdown to avoid zombie Chrome processes.
func (s *Scraper) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	slog.Info("scraper shutting down: closing page")
	s.resetPage()
	slog.Info("scraper shutting down: closing browser")
	s.browser.MustClose()
	slog.Info("scraper shutdown complete")
}
