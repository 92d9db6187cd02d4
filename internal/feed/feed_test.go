package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
)

func TestNormalizeMandatoryFields(t *testing.T) {
	tests := []struct {
		name  string
		title string
		link  string
		ok    bool
	}{
		{"both present", "Port Delay Hits LA", "https://example.com/1", true},
		{"missing title", "", "https://example.com/1", false},
		{"missing link", "Port Delay Hits LA", "", false},
		{"whitespace title", "   ", "https://example.com/1", false},
	}

	for _, tt := range tests {
		_, ok := Normalize(&gofeed.Item{Title: tt.title, Link: tt.link}, "disruptions")
		if ok != tt.ok {
			t.Errorf("%s: Normalize ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestNormalizeNilEntry(t *testing.T) {
	if _, ok := Normalize(nil, "policy"); ok {
		t.Error("nil entry should be rejected")
	}
}

func TestNormalizeOptionalFields(t *testing.T) {
	item, ok := Normalize(&gofeed.Item{
		Title: "Storm Warning Texas",
		Link:  "https://example.com/2",
	}, "disruptions")
	if !ok {
		t.Fatal("expected item to normalize")
	}
	if item.Summary != "" {
		t.Errorf("missing summary should become empty, got %q", item.Summary)
	}
	if !item.Published.IsZero() {
		t.Errorf("missing timestamp should stay zero, got %v", item.Published)
	}
	if item.Category != "disruptions" {
		t.Errorf("category = %q, want disruptions", item.Category)
	}
}

func TestNormalizeTimestampPreference(t *testing.T) {
	pub := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	upd := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	item, _ := Normalize(&gofeed.Item{
		Title:           "New Tariff Rules",
		Link:            "https://example.com/3",
		PublishedParsed: &pub,
		UpdatedParsed:   &upd,
	}, "policy")
	if !item.Published.Equal(pub) {
		t.Errorf("published should win over updated, got %v", item.Published)
	}

	item, _ = Normalize(&gofeed.Item{
		Title:         "New Tariff Rules",
		Link:          "https://example.com/3",
		UpdatedParsed: &upd,
	}, "policy")
	if !item.Published.Equal(upd) {
		t.Errorf("updated should be used when published is absent, got %v", item.Published)
	}
}

func TestNormalizeSummaryTruncation(t *testing.T) {
	long := strings.Repeat("word ", 100)
	item, _ := Normalize(&gofeed.Item{
		Title:       "Long One",
		Link:        "https://example.com/4",
		Description: long,
	}, "freight_industry")
	if n := len([]rune(item.Summary)); n > SummaryMaxLen {
		t.Errorf("summary length %d exceeds %d", n, SummaryMaxLen)
	}
	if !strings.HasSuffix(item.Summary, "...") {
		t.Errorf("truncated summary should end with ellipsis, got %q", item.Summary)
	}
}

func TestNormalizeStripsHTML(t *testing.T) {
	item, _ := Normalize(&gofeed.Item{
		Title:       "HTML Summary",
		Link:        "https://example.com/5",
		Description: "<p>Fog closes <b>I-10</b></p>",
	}, "disruptions")
	if item.Summary != "Fog closes I-10" {
		t.Errorf("summary = %q, want %q", item.Summary, "Fog closes I-10")
	}
}

func TestNormalizeTags(t *testing.T) {
	item, _ := Normalize(&gofeed.Item{
		Title:      "Video Report",
		Link:       "https://example.com/6",
		Categories: []string{"Video", " transport ", ""},
	}, "freight_industry")
	want := []string{"video", "transport"}
	if len(item.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", item.Tags, want)
	}
	for i := range want {
		if item.Tags[i] != want[i] {
			t.Errorf("tags[%d] = %q, want %q", i, item.Tags[i], want[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateUTF8(t *testing.T) {
	// Multi-byte characters should truncate by rune
	input := "váдоговор norteamericano"
	got := truncate(input, 5)
	if n := len([]rune(got)); n != 5 {
		t.Errorf("truncate rune length = %d, want 5 (%q)", n, got)
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
		{"<a href=\"url\">Link</a> text", "Link text"},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
