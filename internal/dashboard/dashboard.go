// Package dashboard composes the fetch → normalize → dedupe pipeline
// across every data source, behind the TTL cache. Every stage degrades
// to fewer or no results; nothing here returns a hard error to callers.
package dashboard

import (
	"context"
	"log"
	"time"

	"github.com/malagasr/supply-alert/internal/border"
	"github.com/malagasr/supply-alert/internal/cache"
	"github.com/malagasr/supply-alert/internal/config"
	"github.com/malagasr/supply-alert/internal/feed"
	"github.com/malagasr/supply-alert/internal/weather"
)

// Section is one category of deduped news.
type Section struct {
	Category string
	Title    string
	Items    []feed.Item
}

// PortStatus is one entry on the port congestion board.
type PortStatus struct {
	Name       string
	Congestion string
	DelayDays  int
}

// Snapshot is everything one dashboard render needs.
type Snapshot struct {
	Generated     time.Time
	Sections      []Section
	Crossings     []border.Crossing
	WeatherAlerts []weather.Alert
	Ports         []PortStatus
}

var sectionTitles = map[string]string{
	config.CategoryFreight:     "Freight Industry News",
	config.CategoryPolicy:      "Government & Policy News",
	config.CategoryAI:          "AI in Supply Chain",
	config.CategoryDisruptions: "Disruption Alerts",
	config.CategoryBorder:      "Border News",
	config.CategoryJobs:        "Logistics Jobs",
}

// Builder runs pipeline invocations against a shared cache.
type Builder struct {
	cfg     *config.Config
	cache   *cache.Cache
	fetcher feed.Fetcher
	border  *border.Client
	weather *weather.Client
	logger  *log.Logger
}

func NewBuilder(cfg *config.Config, c *cache.Cache, logger *log.Logger) *Builder {
	timeout := cfg.FetchTimeoutDuration()
	return &Builder{
		cfg:     cfg,
		cache:   c,
		fetcher: feed.NewRSSFetcher(timeout),
		border:  border.NewClient("", timeout),
		weather: weather.NewClient("", timeout),
		logger:  logger,
	}
}

// SetFetcher overrides the feed fetcher, for tests.
func (b *Builder) SetFetcher(f feed.Fetcher) { b.fetcher = f }

// SetBorderClient overrides the border client, for tests.
func (b *Builder) SetBorderClient(c *border.Client) { b.border = c }

// SetWeatherClient overrides the weather client, for tests.
func (b *Builder) SetWeatherClient(c *weather.Client) { b.weather = c }

// News returns the deduped items for one category, cached per the
// category's TTL. Per-source failures contribute zero items; the only
// way to get an empty slice is every source failing or returning nothing.
func (b *Builder) News(ctx context.Context, category string) []feed.Item {
	ttl := b.cfg.CategoryTTL(category)
	items, err := cache.Fill(b.cache, "news:"+category, ttl, func() ([]feed.Item, error) {
		result := feed.FetchAll(ctx, b.fetcher, b.cfg.SourcesForCategory(category))
		for _, fe := range result.Errors {
			if b.logger != nil {
				b.logger.Printf("source degraded: %v", fe)
			}
		}
		return result.Items, nil
	})
	if err != nil {
		return nil
	}
	return items
}

// AllNews merges every category's news, deduped across categories.
func (b *Builder) AllNews(ctx context.Context) []feed.Item {
	var all []feed.Item
	for _, cat := range config.AllCategories() {
		all = append(all, b.News(ctx, cat)...)
	}
	return feed.Dedupe(all)
}

// Crossings returns current border wait times, cached at the status TTL.
// A failed fetch yields nil and the dashboard shows an empty state.
func (b *Builder) Crossings(ctx context.Context) []border.Crossing {
	crossings, err := cache.Fill(b.cache, "border:waits", b.cfg.StatusTTL(), func() ([]border.Crossing, error) {
		return b.border.Fetch(ctx)
	})
	if err != nil {
		if b.logger != nil {
			b.logger.Printf("border waits degraded: %v", err)
		}
		return nil
	}
	return crossings
}

// WeatherAlerts checks every configured crossing location and collects
// threshold alerts. Locations fail independently.
func (b *Builder) WeatherAlerts(ctx context.Context) []weather.Alert {
	alerts, err := cache.Fill(b.cache, "weather:alerts", b.cfg.StatusTTL(), func() ([]weather.Alert, error) {
		var out []weather.Alert
		for _, cr := range b.cfg.Crossings {
			f, err := b.weather.Fetch(ctx, cr.Lat, cr.Lon)
			if err != nil {
				if b.logger != nil {
					b.logger.Printf("weather degraded for %s: %v", cr.Name, err)
				}
				continue
			}
			out = append(out, weather.Classify(cr.Name, f)...)
		}
		return out, nil
	})
	if err != nil {
		return nil
	}
	return alerts
}

// Forecast returns current conditions for one configured crossing.
func (b *Builder) Forecast(ctx context.Context, name string) (weather.Forecast, bool) {
	for _, cr := range b.cfg.Crossings {
		if cr.Name != name {
			continue
		}
		f, err := cache.Fill(b.cache, "weather:"+cr.Name, b.cfg.StatusTTL(), func() (weather.Forecast, error) {
			return b.weather.Fetch(ctx, cr.Lat, cr.Lon)
		})
		if err != nil {
			return weather.Forecast{}, false
		}
		return f, true
	}
	return weather.Forecast{}, false
}

// PortBoard is the port congestion status board. Publicly reported
// figures; refreshed with releases until a live source exists.
func PortBoard() []PortStatus {
	return []PortStatus{
		{Name: "Los Angeles/Long Beach", Congestion: "High", DelayDays: 5},
		{Name: "Savannah", Congestion: "Medium", DelayDays: 2},
		{Name: "New York/New Jersey", Congestion: "Low", DelayDays: 1},
		{Name: "Houston", Congestion: "Medium", DelayDays: 3},
	}
}

// Snapshot assembles one full dashboard view. Sections for categories
// with no surviving data are included with empty Items so the renderer
// can show "no data available right now".
func (b *Builder) Snapshot(ctx context.Context) Snapshot {
	snap := Snapshot{
		Generated: time.Now(),
		Crossings: b.Crossings(ctx),
		Ports:     PortBoard(),
	}
	snap.WeatherAlerts = b.WeatherAlerts(ctx)

	for _, cat := range config.AllCategories() {
		if len(b.cfg.SourcesForCategory(cat)) == 0 {
			continue
		}
		snap.Sections = append(snap.Sections, Section{
			Category: cat,
			Title:    sectionTitles[cat],
			Items:    b.News(ctx, cat),
		})
	}
	return snap
}

// SectionTitle returns the display title for a category.
func SectionTitle(category string) string {
	if t, ok := sectionTitles[category]; ok {
		return t
	}
	return category
}
