// Package weather fetches current conditions from Open-Meteo and flags
// freight-relevant disruptions with simple thresholds.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Current holds the metric readings Open-Meteo reports for "now".
type Current struct {
	TempC    float64
	WindKPH  float64
	GustKPH  float64
	Snowfall float64 // cm over the last hour
	Rain     float64 // mm over the last hour
	Code     int
}

// Forecast combines current conditions with today's range.
type Forecast struct {
	Current Current
	HighC   float64
	LowC    float64
}

// TempF converts the current temperature to Fahrenheit, rounded.
func (f Forecast) TempF() int { return FahrenheitFromC(f.Current.TempC) }

// WindMPH converts the current wind speed to mph, rounded.
func (f Forecast) WindMPH() int { return MPHFromKPH(f.Current.WindKPH) }

// Condition renders the current weather code as a short label.
func (f Forecast) Condition() string { return Condition(f.Current.Code) }

func FahrenheitFromC(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

func MPHFromKPH(kph float64) int {
	return int(math.Round(kph * 0.621))
}

var conditions = map[int]string{
	0: "Clear", 1: "Mostly Clear", 2: "Partly Cloudy", 3: "Overcast",
	45: "Foggy", 48: "Fog", 51: "Light Drizzle", 53: "Drizzle", 55: "Heavy Drizzle",
	61: "Light Rain", 63: "Rain", 65: "Heavy Rain", 71: "Light Snow", 73: "Snow", 75: "Heavy Snow",
	80: "Rain Showers", 81: "Rain Showers", 82: "Heavy Showers", 95: "Thunderstorm",
}

// Condition maps an Open-Meteo weather code to a display label.
func Condition(code int) string {
	if c, ok := conditions[code]; ok {
		return c
	}
	return "Clear"
}

type response struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Windspeed   float64 `json:"windspeed_10m"`
		Windgusts   float64 `json:"windgusts_10m"`
		Snowfall    float64 `json:"snowfall"`
		Rain        float64 `json:"rain"`
		Weathercode int     `json:"weathercode"`
	} `json:"current"`
	Daily struct {
		TempMax []float64 `json:"temperature_2m_max"`
		TempMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: timeout}}
}

// Fetch retrieves current conditions and today's range for a location.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Forecast, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.2f", lat))
	q.Set("longitude", fmt.Sprintf("%.2f", lon))
	q.Set("current", "temperature_2m,windspeed_10m,windgusts_10m,snowfall,rain,weathercode")
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "America/Chicago")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Forecast{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Forecast{}, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Forecast{}, fmt.Errorf("weather endpoint returned %d", resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return Forecast{}, fmt.Errorf("parsing weather response: %w", err)
	}

	f := Forecast{
		Current: Current{
			TempC:    r.Current.Temperature,
			WindKPH:  r.Current.Windspeed,
			GustKPH:  r.Current.Windgusts,
			Snowfall: r.Current.Snowfall,
			Rain:     r.Current.Rain,
			Code:     r.Current.Weathercode,
		},
	}
	if len(r.Daily.TempMax) > 0 {
		f.HighC = r.Daily.TempMax[0]
	}
	if len(r.Daily.TempMin) > 0 {
		f.LowC = r.Daily.TempMin[0]
	}
	return f, nil
}
