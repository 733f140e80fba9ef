// Package tiles resolves the map tile sources shown next to the weather card.
package tiles

import (
	"errors"
	"fmt"
	"net/url"
)

// Layer identifies an OpenWeatherMap weather overlay.
type Layer string

const (
	LayerTemperature   Layer = "temp_new"
	LayerClouds        Layer = "clouds_new"
	LayerPrecipitation Layer = "precipitation_new"
	LayerThunderstorm  Layer = "thunderstorm_new"
	LayerWind          Layer = "wind_new"
	LayerSnow          Layer = "snow_new"

	DefaultLayer = LayerTemperature

	BaseTileURL        = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	BaseAttribution    = "&copy; OpenStreetMap contributors"
	OverlayAttribution = "&copy; OpenWeatherMap"
	overlayURLFormat   = "https://tile.openweathermap.org/map/%s/{z}/{x}/{y}.png?appid=%s"
	DefaultZoom        = 10
)

var ErrUnknownLayer = errors.New("unknown overlay layer")

type LayerOption struct {
	Layer Layer
	Label string
}

var layerOptions = []LayerOption{
	{LayerTemperature, "Temperatura"},
	{LayerClouds, "Nubes"},
	{LayerPrecipitation, "Precipitaciones"},
	{LayerThunderstorm, "Tormentas"},
	{LayerWind, "Viento"},
	{LayerSnow, "Nieve"},
}

// Layers lists the selectable overlays in display order.
func Layers() []LayerOption {
	out := make([]LayerOption, len(layerOptions))
	copy(out, layerOptions)
	return out
}

func ParseLayer(value string) (Layer, error) {
	for _, opt := range layerOptions {
		if string(opt.Layer) == value {
			return opt.Layer, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayer, value)
}

func (l Layer) Valid() bool {
	_, err := ParseLayer(string(l))
	return err == nil
}

// OverlayURL returns the templated tile URL with the credential appended.
// The {z}/{x}/{y} placeholders are left for the map library to fill.
func (l Layer) OverlayURL(apiKey string) string {
	return fmt.Sprintf(overlayURLFormat, l, url.QueryEscape(apiKey))
}

// MapView is everything the page needs to draw the map for one location.
type MapView struct {
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Zoom       int     `json:"zoom"`
	Popup      string  `json:"popup"`
	BaseURL    string  `json:"base_url"`
	Layer      Layer   `json:"layer"`
	OverlayURL string  `json:"overlay_url"`
}

func NewMapView(lat, lon float64, popup string, layer Layer, apiKey string) MapView {
	return MapView{
		Lat:        lat,
		Lon:        lon,
		Zoom:       DefaultZoom,
		Popup:      popup,
		BaseURL:    BaseTileURL,
		Layer:      layer,
		OverlayURL: layer.OverlayURL(apiKey),
	}
}

// WithLayer swaps the overlay source only; center, zoom and marker stay put.
func (m MapView) WithLayer(layer Layer, apiKey string) MapView {
	m.Layer = layer
	m.OverlayURL = layer.OverlayURL(apiKey)
	return m
}
