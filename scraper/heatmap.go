package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"

	"github.com/use-agent/tickerheat/models"
)

// Indices scrapes the index cards for one category. categoryKey must be a
// valid key from the static category table.
//
// Lifecycle:
//  1. Timeout guard   – hard deadline on the entire operation
//  2. Lock            – one scrape at a time on the shared page
//  3. Navigate + wait – heatmap landing page, DOM stable
//  4. Category click  – in-page locator by display name
//  5. Scroll + settle – cards render asynchronously after the tab switch
//  6. Extract         – rendered HTML → scoped region → card rows
func (s *Scraper) Indices(ctx context.Context, categoryKey string) ([]models.Index, error) {
	categoryName := models.CategoryName(categoryKey)
	if categoryName == "" {
		return nil, models.NewScrapeError(
			models.ErrCodeInvalidInput,
			fmt.Sprintf("unknown category %q", categoryKey),
			nil,
		)
	}

	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.ScrapeTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.openCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	// Scroll half way down so lazily rendered cards mount.
	_, _ = p.Eval(`() => window.scrollTo(0, document.body.scrollHeight / 2)`)
	if err := sleepCtx(ctx, s.scraperCfg.SettleDelay/2); err != nil {
		return nil, categorizeError(err, "interrupted while waiting for index cards")
	}

	rawHTML, err := p.HTML()
	if err != nil {
		return nil, categorizeError(err, "failed to extract page HTML")
	}

	indices := ParseIndexCards(ScopeHTML(rawHTML, indexRegionSelector))
	if len(indices) == 0 {
		return nil, models.NewScrapeError(
			models.ErrCodeEmptyResult,
			fmt.Sprintf("no index cards found for category %q", categoryKey),
			nil,
		)
	}

	slog.Info("scraped index cards", "category", categoryKey, "count", len(indices))
	return indices, nil
}

// Heatmap scrapes the stock tiles for one index within a category.
func (s *Scraper) Heatmap(ctx context.Context, categoryKey, indexName string) (*models.HeatmapSnapshot, error) {
	categoryName := models.CategoryName(categoryKey)
	if categoryName == "" {
		return nil, models.NewScrapeError(
			models.ErrCodeInvalidInput,
			fmt.Sprintf("unknown category %q", categoryKey),
			nil,
		)
	}

	ctx, cancel := context.WithTimeout(ctx, s.scraperCfg.ScrapeTimeout)
	defer cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.openCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}

	opened, err := openIndexCard(p, indexName)
	if err != nil {
		return nil, categorizeError(err, "failed to activate index card")
	}
	if !opened {
		return nil, models.NewScrapeError(
			models.ErrCodeIndexNotFound,
			fmt.Sprintf("index %q not found in category %q", indexName, categoryKey),
			nil,
		)
	}

	// The heatmap grid renders after the card's own navigation; give it the
	// full settle delay, then sweep the page so every tile mounts.
	if err := sleepCtx(ctx, s.scraperCfg.SettleDelay); err != nil {
		return nil, categorizeError(err, "interrupted while waiting for heatmap")
	}
	_, _ = p.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`)
	if err := sleepCtx(ctx, s.scraperCfg.SettleDelay/2); err != nil {
		return nil, categorizeError(err, "interrupted while waiting for heatmap")
	}
	_, _ = p.Eval(`() => window.scrollTo(0, 0)`)

	tiles, err := collectTiles(p)
	if err != nil {
		return nil, categorizeError(err, "failed to collect heatmap tiles")
	}

	stocks := NormalizeStocks(tiles)
	if len(stocks) == 0 {
		return nil, models.NewScrapeError(
			models.ErrCodeEmptyResult,
			fmt.Sprintf("no stock tiles found for index %q", indexName),
			nil,
		)
	}

	slog.Info("scraped heatmap", "category", categoryKey, "index", indexName, "stocks", len(stocks))
	return &models.HeatmapSnapshot{
		IndexName:       indexName,
		Category:        categoryName,
		TotalStocks:     len(stocks),
		ScrapeTimestamp: time.Now().Format(time.RFC3339),
		Stocks:          stocks,
	}, nil
}

// openCategory navigates to the heatmap page and activates the category tab.
// Caller must hold mu. On failure the shared page is discarded so the next
// request starts from a fresh tab.
func (s *Scraper) openCategory(ctx context.Context, categoryName string) (*rod.Page, error) {
	page, err := s.ensurePage()
	if err != nil {
		return nil, err
	}

	p := page.Context(ctx)

	navCtx, navCancel := context.WithTimeout(ctx, s.scraperCfg.NavigationTimeout)
	navErr := page.Context(navCtx).Navigate(s.scraperCfg.TargetURL)
	navCancel()
	if navErr != nil {
		s.resetPage()
		return nil, categorizeError(navErr, "navigation to heatmap page failed")
	}

	if stableErr := p.WaitDOMStable(300*time.Millisecond, 0.1); stableErr != nil {
		slog.Debug("WaitDOMStable did not converge, proceeding with current DOM",
			"error", stableErr,
		)
	}
	if err := sleepCtx(ctx, s.scraperCfg.SettleDelay); err != nil {
		return nil, categorizeError(err, "interrupted while waiting for page load")
	}

	selected, err := selectCategory(p, categoryName)
	if err != nil {
		return nil, categorizeError(err, "category selection failed")
	}
	if !selected {
		return nil, models.NewScrapeError(
			models.ErrCodeCategorySelect,
			fmt.Sprintf("could not locate category tab %q on page", categoryName),
			nil,
		)
	}
	if err := sleepCtx(ctx, s.scraperCfg.SettleDelay); err != nil {
		return nil, categorizeError(err, "interrupted after category selection")
	}

	return p, nil
}

// selectCategory clicks the tab whose visible text matches the category
// display name. The tabs carry no stable ids or classes, so the locator
// walks candidate elements by text, exact match first.
func selectCategory(p *rod.Page, categoryName string) (bool, error) {
	res, err := p.Eval(`(name) => {
		const candidates = document.querySelectorAll('div, a, button, span');
		const lower = name.toLowerCase();
		let partial = null;
		for (const el of candidates) {
			const text = (el.textContent || '').trim();
			if (text === name) {
				el.scrollIntoView({block: 'center'});
				el.click();
				return true;
			}
			if (!partial && text.toLowerCase() === lower) {
				partial = el;
			}
		}
		if (partial) {
			partial.scrollIntoView({block: 'center'});
			partial.click();
			return true;
		}
		return false;
	}`, categoryName)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

// openIndexCard locates the card whose first text line matches the index
// name and activates it. The site wires cards three different ways, so the
// click ladder is: javascript: href, onclick attribute, plain click.
// Returns false when no card matches.
func openIndexCard(p *rod.Page, indexName string) (bool, error) {
	res, err := p.Eval(`(name) => {
		const target = name.trim().toUpperCase();
		const clickables = document.querySelectorAll('a, div[onclick], button');
		for (const el of clickables) {
			const text = (el.innerText || '').trim();
			if (!text) continue;
			const firstLine = text.split('\n')[0].trim().toUpperCase();
			const match = firstLine === target ||
				firstLine.includes(target) ||
				target.includes(firstLine);
			if (!match || firstLine.length === 0) continue;

			el.scrollIntoView({block: 'center'});
			const href = el.getAttribute('href');
			if (href && href.startsWith('javascript:')) {
				eval(href.slice('javascript:'.length));
				return true;
			}
			const onclick = el.getAttribute('onclick');
			if (onclick) {
				eval(onclick);
				return true;
			}
			el.click();
			return true;
		}
		return false;
	}`, indexName)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

// collectTiles walks the rendered heatmap grid in-page and returns raw tile
// records. Colors must be read in the browser: they come from computed CSS,
// which is invisible in the serialized HTML. The nearest non-transparent
// ancestor supplies the color when the text node itself has none.
func collectTiles(p *rod.Page) ([]TileRecord, error) {
	res, err := p.Eval(`() => {
		const skip = ['scan qr', 'download', 'login', 'nse', 'ncfm', 'back',
			'streaming', 'as on', 'note', 'heatmap', 'indices',
			'nifty', 'broad market', 'sectoral', 'thematic', 'strategy'];

		const visible = (el) => {
			const r = el.getBoundingClientRect();
			return r.width > 0 && r.height > 0;
		};

		const tileColor = (el) => {
			let cur = el;
			for (let depth = 0; cur && depth < 4; depth++) {
				const c = window.getComputedStyle(cur).backgroundColor;
				if (c && c !== 'transparent' && c !== 'rgba(0, 0, 0, 0)') {
					return c;
				}
				cur = cur.parentElement;
			}
			return '';
		};

		const out = [];
		const seen = new Set();
		for (const el of document.querySelectorAll('div, a, span, td')) {
			if (!visible(el)) continue;
			const text = (el.innerText || '').trim();
			if (!text || text.length < 3) continue;

			const lower = text.toLowerCase();
			if (skip.some(s => lower.includes(s))) continue;

			const lines = text.split('\n').map(l => l.trim()).filter(l => l);
			if (lines.length < 2 || lines.length > 3) continue;

			const symbol = lines[0];
			if (seen.has(symbol)) continue;
			if (!/\d/.test(lines[1])) continue;

			seen.add(symbol);
			out.push({
				symbol: symbol,
				price: lines[1],
				change: lines.length > 2 ? lines[2] : '',
				color: tileColor(el),
			});
		}
		return out;
	}`)
	if err != nil {
		return nil, err
	}

	arr := res.Value.Arr()
	tiles := make([]TileRecord, 0, len(arr))
	for _, item := range arr {
		tiles = append(tiles, TileFromJSON(item))
	}
	return tiles, nil
}

// sleepCtx sleeps for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// categorizeError wraps raw errors into typed ScrapeErrors so the API layer
// can map them to appropriate HTTP status codes.
func categorizeError(err error, msg string) *models.ScrapeError {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return models.NewScrapeError(models.ErrCodeTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return models.NewScrapeError(models.ErrCodeTimeout, "request canceled", err)
	default:
		return models.NewScrapeError(models.ErrCodeNavigation, msg, err)
	}
}
