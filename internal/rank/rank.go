// Package rank scores news items against a free-text query so a small,
// relevant subset can be embedded in an assistant prompt. The scorer is
// a bag-of-substrings match over title and summary, not TF-IDF or BM25;
// the corpus is tens of items per call.
package rank

import (
	"sort"
	"strings"

	"github.com/malagasr/supply-alert/internal/feed"
)

// DefaultTop bounds how many ranked items callers normally keep.
const DefaultTop = 10

// ScoredItem pairs an item with its per-query relevance score. Scores are
// recomputed on every call and never persisted.
type ScoredItem struct {
	feed.Item
	Score int
}

// Score ranks items against query. Tokenization is whitespace split plus
// lowercasing, with no stemming or stopword removal. An item's score is the
// count of query tokens occurring as substrings of its lowercased
// title+summary; items scoring zero are excluded. Output is sorted by
// score descending with ties kept in input order.
func Score(query string, items []feed.Item) []ScoredItem {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var scored []ScoredItem
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Summary)
		n := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				n++
			}
		}
		if n > 0 {
			scored = append(scored, ScoredItem{Item: item, Score: n})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// Top returns at most k items from an already-ranked slice. The cap is a
// resource-control decision: unbounded prompt context is not allowed.
func Top(scored []ScoredItem, k int) []ScoredItem {
	if k <= 0 {
		k = DefaultTop
	}
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}

// Context formats ranked items into a prompt-context block, one line per
// item, bounded by maxChars.
func Context(scored []ScoredItem, maxChars int) string {
	var b strings.Builder
	for _, s := range scored {
		line := "- " + s.Title
		if s.Summary != "" {
			line += ": " + s.Summary
		}
		line += "\n"
		if maxChars > 0 && b.Len()+len(line) > maxChars {
			break
		}
		b.WriteString(line)
	}
	return b.String()
}
