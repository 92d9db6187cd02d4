package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/malagasr/supply-alert/internal/config"
	"github.com/mmcdole/gofeed"
)

// FetchError is the typed outcome of a failed source fetch. Sources fail
// independently; the aggregation layer converts a FetchError into zero
// items instead of propagating it.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Fetcher interface {
	Fetch(ctx context.Context, source config.Source) ([]Item, error)
}

// RSSFetcher retrieves and normalizes one RSS/Atom source per call.
type RSSFetcher struct {
	parser  *gofeed.Parser
	timeout time.Duration
}

func NewRSSFetcher(timeout time.Duration) *RSSFetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RSSFetcher{parser: gofeed.NewParser(), timeout: timeout}
}

// Fetch returns the source's entries in upstream order. Any failure
// (network, timeout, malformed response, non-2xx) yields a *FetchError;
// the call never outlives the configured timeout.
func (f *RSSFetcher) Fetch(ctx context.Context, source config.Source) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, &FetchError{Source: source.Name, Err: err}
	}
	return NormalizeAll(parsed.Items, source.Category), nil
}

// Result holds the merged outcome of a multi-source fetch.
type Result struct {
	Items  []Item
	Errors []*FetchError
}

// FetchAll fetches every source concurrently, merges the survivors in
// config order, and dedupes. Source order matters: on a title collision
// the item from the earlier source wins.
func FetchAll(ctx context.Context, fetcher Fetcher, sources []config.Source) Result {
	perSource := make([][]Item, len(sources))
	perError := make([]*FetchError, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, s config.Source) {
			defer wg.Done()
			items, err := fetcher.Fetch(ctx, s)
			if err != nil {
				var fe *FetchError
				if !errors.As(err, &fe) {
					fe = &FetchError{Source: s.Name, Err: err}
				}
				perError[i] = fe
				return
			}
			perSource[i] = items
		}(i, src)
	}
	wg.Wait()

	var result Result
	for i := range sources {
		if perError[i] != nil {
			result.Errors = append(result.Errors, perError[i])
			continue
		}
		result.Items = append(result.Items, perSource[i]...)
	}
	result.Items = Dedupe(result.Items)
	return result
}
