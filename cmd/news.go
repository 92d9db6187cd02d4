package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/malagasr/supply-alert/internal/browser"
	"github.com/malagasr/supply-alert/internal/config"
	"github.com/malagasr/supply-alert/internal/feed"
	"github.com/malagasr/supply-alert/internal/window"
)

var (
	flagCategory string
	flagSince    string
	flagOpen     int
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List aggregated supply chain news",
	Long: `List deduped news across every configured source, grouped by age.

Filter to one category with --category (freight_industry, policy,
ai_supply_chain, disruptions, border, jobs).`,
	RunE: runNews,
}

func init() {
	newsCmd.Flags().StringVar(&flagCategory, "category", "", "only show one source category")
	newsCmd.Flags().StringVar(&flagSince, "since", "", "only show items from the last duration (e.g., 7d, 24h)")
	newsCmd.Flags().IntVar(&flagOpen, "open", 0, "open the Nth listed item in the browser")
}

func runNews(cmd *cobra.Command, args []string) error {
	builder, _, err := newBuilder()
	if err != nil {
		return err
	}

	if flagCategory != "" {
		if err := validCategory(flagCategory); err != nil {
			return err
		}
	}

	var items []feed.Item
	if flagCategory != "" {
		items = builder.News(cmd.Context(), flagCategory)
	} else {
		items = builder.AllNews(cmd.Context())
	}

	if flagSince != "" {
		d, err := parseSince(flagSince)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		items = filterSince(items, time.Now().Add(-d))
	}

	if flagOpen > 0 {
		if flagOpen > len(items) {
			return fmt.Errorf("--open %d out of range (%d items)", flagOpen, len(items))
		}
		return browser.Open(items[flagOpen-1].Link)
	}

	now := time.Now()
	buckets := window.Classify(items, now)

	printBucket("Today", buckets.Today, now)
	printBucket("This Week", buckets.ThisWeek, now)
	printBucket("This Month", buckets.ThisMonth, now)

	if len(items) == 0 {
		fmt.Println(emptyState)
	}
	return nil
}

func printBucket(label string, items []feed.Item, now time.Time) {
	if len(items) == 0 {
		return
	}
	fmt.Println(sectionStyle.Render(label))
	fmt.Print(renderItems(items, 0, now))
}

func filterSince(items []feed.Item, cutoff time.Time) []feed.Item {
	var out []feed.Item
	for _, item := range items {
		if item.Published.IsZero() || item.Published.After(cutoff) {
			out = append(out, item)
		}
	}
	return out
}

func validCategory(category string) error {
	for _, c := range config.AllCategories() {
		if c == category {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q (valid: %v)", category, config.AllCategories())
}
