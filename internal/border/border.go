// Package border fetches US-Mexico commercial crossing wait times from
// the CBP border wait time XML feed.
package border

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/malagasr/supply-alert/internal/feed"
)

// DefaultURL is the public CBP wait-time feed.
const DefaultURL = "https://bwt.cbp.gov/xml/bwt.xml"

// MajorCrossings are the commercial ports of entry worth tracking.
// Smaller passenger-only crossings in the feed are skipped.
var MajorCrossings = []string{
	"Laredo", "Otay Mesa", "El Paso", "Hidalgo", "Pharr",
	"Nogales", "Calexico", "Brownsville", "Eagle Pass",
}

type document struct {
	Ports []portXML `xml:"port"`
}

type portXML struct {
	Border       string     `xml:"border"`
	PortName     string     `xml:"port_name"`
	CrossingName string     `xml:"crossing_name"`
	Hours        string     `xml:"hours"`
	PortStatus   string     `xml:"port_status"`
	Commercial   *laneGroup `xml:"commercial_vehicle_lanes"`
}

type laneGroup struct {
	Standard *laneXML `xml:"standard_lanes"`
	FAST     *laneXML `xml:"FAST_lanes"`
}

type laneXML struct {
	UpdateTime        string `xml:"update_time"`
	OperationalStatus string `xml:"operational_status"`
	DelayMinutes      string `xml:"delay_minutes"`
	LanesOpen         string `xml:"lanes_open"`
}

// Lane holds wait data for one lane type. DelayKnown distinguishes a
// reported zero-minute delay from no report at all.
type Lane struct {
	DelayMinutes int
	DelayKnown   bool
	LanesOpen    int
	Status       string
	UpdateTime   string
}

// Crossing is one commercial port of entry with its current waits.
type Crossing struct {
	Name       string // "Laredo - World Trade Bridge"
	PortName   string
	Hours      string
	Status     string
	Commercial Lane
	FAST       Lane
}

// Severity classifies the commercial delay: under 30 minutes is low,
// under 60 medium, anything longer high. Unknown delays are low.
func (c Crossing) Severity() string {
	if !c.Commercial.DelayKnown {
		return "low"
	}
	switch {
	case c.Commercial.DelayMinutes < 30:
		return "low"
	case c.Commercial.DelayMinutes < 60:
		return "medium"
	default:
		return "high"
	}
}

// Item converts the crossing into the canonical record shape so it can
// flow through the shared dedupe/rank/window pipeline.
func (c Crossing) Item(now time.Time) feed.Item {
	delay := "no delay reported"
	if c.Commercial.DelayKnown {
		delay = fmt.Sprintf("%d min commercial delay", c.Commercial.DelayMinutes)
	}
	return feed.Item{
		Title:     fmt.Sprintf("%s: %s", c.Name, delay),
		Link:      DefaultURL,
		Published: now,
		Summary: fmt.Sprintf("Status %s, %d standard lanes open, %d FAST lanes open",
			c.Status, c.Commercial.LanesOpen, c.FAST.LanesOpen),
		Category: "border",
		Tags:     []string{"wait-time"},
	}
}

type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{url: url, client: &http.Client{Timeout: timeout}}
}

// Fetch retrieves wait times for the Mexican border's major commercial
// crossings, in feed order.
func (c *Client) Fetch(ctx context.Context) ([]Crossing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching border waits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("border wait feed returned %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading border wait feed: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing border wait feed: %w", err)
	}

	return convert(doc), nil
}

func convert(doc document) []Crossing {
	var out []Crossing
	for _, p := range doc.Ports {
		if !strings.Contains(p.Border, "Mexican") {
			continue
		}
		if !isMajor(p.PortName) {
			continue
		}

		name := p.PortName
		if p.CrossingName != "" {
			name = p.PortName + " - " + p.CrossingName
		}

		cr := Crossing{
			Name:     name,
			PortName: p.PortName,
			Hours:    p.Hours,
			Status:   p.PortStatus,
		}
		if p.Commercial != nil {
			cr.Commercial = convertLane(p.Commercial.Standard)
			cr.FAST = convertLane(p.Commercial.FAST)
		}
		out = append(out, cr)
	}
	return out
}

func convertLane(l *laneXML) Lane {
	if l == nil {
		return Lane{}
	}
	lane := Lane{
		Status:     l.OperationalStatus,
		UpdateTime: l.UpdateTime,
	}
	if d, err := strconv.Atoi(strings.TrimSpace(l.DelayMinutes)); err == nil {
		lane.DelayMinutes = d
		lane.DelayKnown = true
	}
	if n, err := strconv.Atoi(strings.TrimSpace(l.LanesOpen)); err == nil {
		lane.LanesOpen = n
	}
	return lane
}

func isMajor(portName string) bool {
	for _, major := range MajorCrossings {
		if strings.Contains(portName, major) {
			return true
		}
	}
	return false
}
