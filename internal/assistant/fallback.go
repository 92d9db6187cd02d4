package assistant

import (
	"strings"

	"github.com/malagasr/supply-alert/internal/rank"
)

// FallbackAnswer produces deterministic rule-based text when the model is
// unavailable. It routes on question keywords and appends the top ranked
// headlines so the reply still reflects current data.
func FallbackAnswer(question string, items []rank.ScoredItem) string {
	q := strings.ToLower(question)

	var b strings.Builder
	switch {
	case containsAny(q, "border", "crossing", "laredo", "otay", "el paso", "cbp"):
		b.WriteString("Live border wait times come from the CBP feed; check the border view for current commercial and FAST lane delays at major US-Mexico crossings.")
	case containsAny(q, "weather", "storm", "snow", "wind", "fog", "rain"):
		b.WriteString("Weather disruption alerts are derived from current conditions at tracked freight corridors; see the dashboard's active disruptions section.")
	case containsAny(q, "port", "congestion", "vessel", "container"):
		b.WriteString("Port congestion is summarized on the dashboard status board; delays over three days typically indicate sustained backlog.")
	case containsAny(q, "policy", "tariff", "regulation", "usmca", "fmcsa", "dot"):
		b.WriteString("Recent policy and regulatory developments are aggregated under the policy news category.")
	default:
		b.WriteString("The assistant is temporarily unavailable. Recent supply chain headlines are listed below.")
	}

	if len(items) > 0 {
		b.WriteString("\n\nRelated headlines:\n")
		for i, item := range items {
			if i >= 3 {
				break
			}
			b.WriteString("- " + item.Title + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
