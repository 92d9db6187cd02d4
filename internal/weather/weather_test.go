package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleJSON = `{
  "current": {
    "temperature_2m": 21.5,
    "windspeed_10m": 18.0,
    "windgusts_10m": 32.0,
    "snowfall": 0,
    "rain": 0.2,
    "weathercode": 2
  },
  "daily": {
    "temperature_2m_max": [28.1],
    "temperature_2m_min": [14.3]
  }
}`

func testFetch(t *testing.T, body string, status int) (Forecast, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("latitude") == "" {
			t.Error("latitude query parameter missing")
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second).Fetch(context.Background(), 27.5, -99.5)
}

func TestFetchDecodesResponse(t *testing.T) {
	f, err := testFetch(t, sampleJSON, http.StatusOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Current.TempC != 21.5 || f.Current.GustKPH != 32.0 {
		t.Errorf("current = %+v", f.Current)
	}
	if f.HighC != 28.1 || f.LowC != 14.3 {
		t.Errorf("daily range = %v / %v", f.HighC, f.LowC)
	}
	if f.Condition() != "Partly Cloudy" {
		t.Errorf("condition = %q", f.Condition())
	}
}

func TestFetchNon2xx(t *testing.T) {
	if _, err := testFetch(t, "oops", http.StatusTooManyRequests); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	if _, err := testFetch(t, "{not json", http.StatusOK); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConversions(t *testing.T) {
	if got := FahrenheitFromC(0); got != 32 {
		t.Errorf("0C = %dF, want 32", got)
	}
	if got := FahrenheitFromC(37.8); got != 100 {
		t.Errorf("37.8C = %dF, want 100", got)
	}
	if got := MPHFromKPH(100); got != 62 {
		t.Errorf("100 km/h = %d mph, want 62", got)
	}
}

func TestConditionFallback(t *testing.T) {
	if Condition(999) != "Clear" {
		t.Error("unknown code should fall back to Clear")
	}
	if Condition(95) != "Thunderstorm" {
		t.Error("known code lookup broken")
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name    string
		current Current
		kinds   []string
	}{
		{"calm", Current{TempC: 20, GustKPH: 20}, nil},
		{"high wind", Current{TempC: 20, GustKPH: 85}, []string{"High Wind Warning"}},
		{"wind advisory", Current{TempC: 20, GustKPH: 60}, []string{"Wind Advisory"}},
		{"heavy snow", Current{TempC: -2, GustKPH: 10, Snowfall: 3.0}, []string{"Winter Storm Warning"}},
		{"light snow", Current{TempC: -2, GustKPH: 10, Snowfall: 0.5}, []string{"Snow Advisory"}},
		{"heavy rain", Current{TempC: 15, Rain: 12}, []string{"Heavy Rain"}},
		{"fog", Current{TempC: 10, Code: 45}, []string{"Fog Advisory"}},
		{"hard freeze", Current{TempC: -10}, []string{"Hard Freeze"}},
		{
			"compound storm",
			Current{TempC: -8, GustKPH: 90, Snowfall: 4, Code: 48},
			[]string{"High Wind Warning", "Winter Storm Warning", "Fog Advisory", "Hard Freeze"},
		},
	}

	for _, tt := range tests {
		alerts := Classify("Laredo", Forecast{Current: tt.current})
		if len(alerts) != len(tt.kinds) {
			t.Errorf("%s: got %d alerts %v, want kinds %v", tt.name, len(alerts), alerts, tt.kinds)
			continue
		}
		for i, kind := range tt.kinds {
			if alerts[i].Kind != kind {
				t.Errorf("%s: alerts[%d].Kind = %q, want %q", tt.name, i, alerts[i].Kind, kind)
			}
			if alerts[i].Location != "Laredo" {
				t.Errorf("%s: location = %q", tt.name, alerts[i].Location)
			}
		}
	}
}

func TestClassifySeverities(t *testing.T) {
	alerts := Classify("El Paso", Forecast{Current: Current{TempC: 5, GustKPH: 85}})
	if len(alerts) != 1 || alerts[0].Severity != SeverityHigh {
		t.Fatalf("expected one High alert, got %v", alerts)
	}
	alerts = Classify("El Paso", Forecast{Current: Current{TempC: 5, GustKPH: 60}})
	if len(alerts) != 1 || alerts[0].Severity != SeverityMedium {
		t.Fatalf("expected one Medium alert, got %v", alerts)
	}
}
