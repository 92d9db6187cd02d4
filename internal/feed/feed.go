package feed

import (
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// SummaryMaxLen bounds stored summaries so downstream scoring and
// prompt-context building stay cheap.
const SummaryMaxLen = 200

// Item is the canonical record every downstream stage consumes.
// A zero Published means the upstream gave no usable timestamp; that is
// distinct from "very old" and must be handled by the window classifier.
type Item struct {
	Title     string
	Link      string
	Published time.Time
	Summary   string
	Category  string
	Tags      []string
}

// Normalize maps one upstream entry into an Item. Title and link are
// mandatory; an entry missing either is rejected (ok=false) and the rest
// of the batch proceeds. Missing summary becomes empty, missing timestamp
// stays zero.
func Normalize(raw *gofeed.Item, category string) (Item, bool) {
	if raw == nil {
		return Item{}, false
	}
	title := strings.TrimSpace(raw.Title)
	link := strings.TrimSpace(raw.Link)
	if title == "" || link == "" {
		return Item{}, false
	}

	var published time.Time
	if raw.PublishedParsed != nil {
		published = *raw.PublishedParsed
	} else if raw.UpdatedParsed != nil {
		published = *raw.UpdatedParsed
	}

	summary := raw.Description
	if summary == "" {
		summary = raw.Content
	}
	summary = truncate(stripHTML(summary), SummaryMaxLen)

	var tags []string
	for _, c := range raw.Categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			tags = append(tags, c)
		}
	}

	return Item{
		Title:     title,
		Link:      link,
		Published: published,
		Summary:   summary,
		Category:  category,
		Tags:      tags,
	}, true
}

// NormalizeAll normalizes a batch, dropping rejected entries.
func NormalizeAll(raw []*gofeed.Item, category string) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		if item, ok := Normalize(r, category); ok {
			items = append(items, item)
		}
	}
	return items
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
