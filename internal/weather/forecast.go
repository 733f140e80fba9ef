package weather

import (
	"fmt"
	"time"
)

const dateKeyLayout = "2006-01-02"

// ReduceForecast keeps the first sample of every calendar date, as seen in loc.
// Input order is preserved; the provider already sends samples chronologically.
func ReduceForecast(entries []ForecastEntry, loc *time.Location) []ForecastEntry {
	if loc == nil {
		loc = time.Local
	}

	daily := make([]ForecastEntry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		key := entry.Time().In(loc).Format(dateKeyLayout)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		daily = append(daily, entry)
	}

	return daily
}

// IconURL resolves an OpenWeatherMap icon code to its 2x image.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}
