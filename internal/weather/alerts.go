package weather

// Severity of a weather disruption alert.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
)

// Alert is a freight-relevant weather disruption at one location.
type Alert struct {
	Kind     string
	Severity Severity
	Location string
	Impact   string
}

// Thresholds, in the units Open-Meteo reports (km/h, cm, mm, °C).
const (
	gustHighKPH   = 80.0 // ~50 mph, unsafe for high-profile trailers
	gustMediumKPH = 56.0 // ~35 mph
	snowHighCM    = 2.5
	rainHeavyMM   = 10.0
	hardFreezeC   = -6.0
)

// Classify flags disruptions for a location. Ordering is deterministic:
// wind, snow, rain, fog, freeze. No thresholds crossed means no alerts.
func Classify(location string, f Forecast) []Alert {
	var alerts []Alert

	switch {
	case f.Current.GustKPH >= gustHighKPH:
		alerts = append(alerts, Alert{
			Kind:     "High Wind Warning",
			Severity: SeverityHigh,
			Location: location,
			Impact:   "High-profile vehicle restrictions likely",
		})
	case f.Current.GustKPH >= gustMediumKPH:
		alerts = append(alerts, Alert{
			Kind:     "Wind Advisory",
			Severity: SeverityMedium,
			Location: location,
			Impact:   "Crosswind caution for trailers",
		})
	}

	if f.Current.Snowfall > 0 {
		sev := SeverityMedium
		kind := "Snow Advisory"
		if f.Current.Snowfall >= snowHighCM {
			sev = SeverityHigh
			kind = "Winter Storm Warning"
		}
		alerts = append(alerts, Alert{
			Kind:     kind,
			Severity: sev,
			Location: location,
			Impact:   "Road closures and chain requirements possible",
		})
	}

	if f.Current.Rain >= rainHeavyMM {
		alerts = append(alerts, Alert{
			Kind:     "Heavy Rain",
			Severity: SeverityMedium,
			Location: location,
			Impact:   "Reduced visibility and flooding risk",
		})
	}

	if f.Current.Code == 45 || f.Current.Code == 48 {
		alerts = append(alerts, Alert{
			Kind:     "Fog Advisory",
			Severity: SeverityMedium,
			Location: location,
			Impact:   "Port and crossing trucking slowdowns",
		})
	}

	if f.Current.TempC <= hardFreezeC {
		alerts = append(alerts, Alert{
			Kind:     "Hard Freeze",
			Severity: SeverityMedium,
			Location: location,
			Impact:   "Icing on bridges and ramps",
		})
	}

	return alerts
}
