package view

import (
	"ulascansenturk/weather-lookup/internal/tiles"
	"ulascansenturk/weather-lookup/internal/weather"
)

// QueryErrorMessage is shown for every failed query, whatever the cause.
const QueryErrorMessage = "Ciudad no encontrada o error en la API"

// State is one immutable snapshot of the page. Stores replace it wholesale and
// never mutate a published value, so snapshots may be shared freely.
type State struct {
	Generation uint64                  `json:"generation"`
	Query      string                  `json:"query,omitempty"`
	Loading    bool                    `json:"loading"`
	Current    *weather.CurrentWeather `json:"current,omitempty"`
	Forecast   []weather.ForecastEntry `json:"forecast,omitempty"`
	Error      string                  `json:"error,omitempty"`
	Layer      tiles.Layer             `json:"layer"`
}

func initialState() State {
	return State{Layer: tiles.DefaultLayer}
}

func (s State) HasWeather() bool {
	return s.Current != nil
}

// Map returns the map to draw, if the current weather carries coordinates.
func (s State) Map(tileAPIKey string) (tiles.MapView, bool) {
	if s.Current == nil || s.Current.Coord == nil {
		return tiles.MapView{}, false
	}
	return tiles.NewMapView(s.Current.Coord.Lat, s.Current.Coord.Lon, s.Current.Name, s.Layer, tileAPIKey), true
}
