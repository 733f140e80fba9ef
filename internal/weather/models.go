// Package weather holds the OpenWeatherMap payload shapes the client renders
// and the reduction of a 3-hourly forecast to one sample per day.
package weather

import "time"

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp     float64 `json:"temp"`
	Humidity int     `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

type Rain struct {
	OneHour *float64 `json:"1h,omitempty"`
}

type CurrentWeather struct {
	Name    string      `json:"name"`
	Coord   *Coord      `json:"coord,omitempty"`
	Weather []Condition `json:"weather"`
	Main    Main        `json:"main"`
	Wind    Wind        `json:"wind"`
	Rain    *Rain       `json:"rain,omitempty"`
}

// Condition returns the primary condition, or a zero value when the provider
// sent none.
func (c CurrentWeather) Condition() Condition {
	if len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

// RainLastHour returns the 1h precipitation volume in mm, if reported.
func (c CurrentWeather) RainLastHour() (float64, bool) {
	if c.Rain == nil || c.Rain.OneHour == nil {
		return 0, false
	}
	return *c.Rain.OneHour, true
}

type ForecastEntry struct {
	Dt      int64       `json:"dt"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
}

func (e ForecastEntry) Time() time.Time {
	return time.Unix(e.Dt, 0)
}

func (e ForecastEntry) Condition() Condition {
	if len(e.Weather) == 0 {
		return Condition{}
	}
	return e.Weather[0]
}

type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"
