package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/malagasr/supply-alert/internal/border"
	"github.com/malagasr/supply-alert/internal/dashboard"
	"github.com/malagasr/supply-alert/internal/feed"
	"github.com/malagasr/supply-alert/internal/weather"
	"github.com/malagasr/supply-alert/internal/window"
)

const emptyState = "no data available right now"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	colorYellow  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	colorRed     = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)
	timeStyle  = lipgloss.NewStyle().Foreground(colorDim)
	emptyStyle = lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	severityStyles = map[string]lipgloss.Style{
		"low":    lipgloss.NewStyle().Foreground(colorGreen),
		"medium": lipgloss.NewStyle().Foreground(colorYellow),
		"high":   lipgloss.NewStyle().Foreground(colorRed),
	}
)

func renderSnapshot(snap dashboard.Snapshot) string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Active Weather Disruptions") + "\n")
	b.WriteString(renderWeatherAlerts(snap.WeatherAlerts))

	b.WriteString(sectionStyle.Render("Port Congestion") + "\n")
	b.WriteString(renderPorts(snap.Ports))

	b.WriteString(sectionStyle.Render("Border Crossings") + "\n")
	b.WriteString(renderCrossings(snap.Crossings))

	for _, section := range snap.Sections {
		b.WriteString(sectionStyle.Render(section.Title) + "\n")
		b.WriteString(renderItems(section.Items, 4, snap.Generated))
	}
	return b.String()
}

func renderWeatherAlerts(alerts []weather.Alert) string {
	if len(alerts) == 0 {
		return emptyStyle.Render(emptyState) + "\n"
	}
	var b strings.Builder
	for _, a := range alerts {
		sev := severityStyles["medium"]
		if a.Severity == weather.SeverityHigh {
			sev = severityStyles["high"]
		}
		card := fmt.Sprintf("%s %s\n%s: %s",
			titleStyle.Render(a.Kind),
			sev.Render(string(a.Severity)),
			a.Location, a.Impact)
		b.WriteString(cardStyle.Render(card) + "\n")
	}
	return b.String()
}

func renderPorts(ports []dashboard.PortStatus) string {
	if len(ports) == 0 {
		return emptyStyle.Render(emptyState) + "\n"
	}
	var b strings.Builder
	for _, p := range ports {
		style := severityStyles[strings.ToLower(p.Congestion)]
		b.WriteString(fmt.Sprintf("  %s  %s congestion, %d day delay\n",
			titleStyle.Render(p.Name), style.Render(p.Congestion), p.DelayDays))
	}
	return b.String()
}

func renderCrossings(crossings []border.Crossing) string {
	if len(crossings) == 0 {
		return emptyStyle.Render(emptyState) + "\n"
	}
	var b strings.Builder
	for _, c := range crossings {
		delay := "closed"
		if c.Commercial.DelayKnown {
			delay = fmt.Sprintf("%d min", c.Commercial.DelayMinutes)
		}
		b.WriteString(fmt.Sprintf("  %s  commercial %s  %s\n",
			titleStyle.Render(c.Name),
			severityStyles[c.Severity()].Render(delay),
			timeStyle.Render(c.Status)))
	}
	return b.String()
}

func renderItems(items []feed.Item, limit int, now time.Time) string {
	if len(items) == 0 {
		return emptyStyle.Render(emptyState) + "\n"
	}
	var b strings.Builder
	for i, item := range items {
		if limit > 0 && i >= limit {
			break
		}
		b.WriteString(fmt.Sprintf("  %d. %s", i+1, titleStyle.Render(item.Title)))
		if label := window.RelativeLabel(item.Published, now); label != "" {
			b.WriteString("  " + timeStyle.Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
