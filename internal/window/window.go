// Package window buckets items by publish-timestamp age for transient
// display grouping.
package window

import (
	"strconv"
	"time"

	"github.com/malagasr/supply-alert/internal/feed"
)

// Bucket is an age band relative to "now" at call time.
type Bucket int

const (
	Today Bucket = iota
	ThisWeek
	ThisMonth
	Excluded
)

func (b Bucket) String() string {
	switch b {
	case Today:
		return "today"
	case ThisWeek:
		return "this week"
	case ThisMonth:
		return "this month"
	default:
		return "excluded"
	}
}

// Buckets groups items by age, preserving input order within each group.
type Buckets struct {
	Today     []feed.Item
	ThisWeek  []feed.Item
	ThisMonth []feed.Item
}

// BucketOf maps a publish timestamp to its age band: day 0 is Today,
// days 1–7 ThisWeek, days 8–30 ThisMonth, older Excluded. An unknown
// (zero) timestamp defaults to ThisWeek rather than being dropped.
func BucketOf(published, now time.Time) Bucket {
	if published.IsZero() {
		return ThisWeek
	}
	days := int(now.Sub(published).Hours() / 24)
	switch {
	case days <= 0:
		return Today
	case days <= 7:
		return ThisWeek
	case days <= 30:
		return ThisMonth
	default:
		return Excluded
	}
}

// Classify splits items into age buckets using wall-clock now supplied by
// the caller. Items older than a month fall out entirely.
func Classify(items []feed.Item, now time.Time) Buckets {
	var b Buckets
	for _, item := range items {
		switch BucketOf(item.Published, now) {
		case Today:
			b.Today = append(b.Today, item)
		case ThisWeek:
			b.ThisWeek = append(b.ThisWeek, item)
		case ThisMonth:
			b.ThisMonth = append(b.ThisMonth, item)
		}
	}
	return b
}

// RelativeLabel renders a publish time the way the dashboard shows it:
// "Just now", "3h ago", "Yesterday", "4 days ago", then "Jan 2".
func RelativeLabel(published, now time.Time) string {
	if published.IsZero() {
		return ""
	}
	diff := now.Sub(published)
	if diff < 0 {
		diff = 0
	}
	days := int(diff.Hours() / 24)
	switch {
	case days == 0:
		hours := int(diff.Hours())
		if hours == 0 {
			return "Just now"
		}
		return strconv.Itoa(hours) + "h ago"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return strconv.Itoa(days) + " days ago"
	default:
		return published.Format("Jan 2")
	}
}

