package tiles_test

import (
	"errors"
	"testing"
	"ulascansenturk/weather-lookup/internal/tiles"

	"github.com/stretchr/testify/suite"
)

type LayersTestSuite struct {
	suite.Suite
}

func (s *LayersTestSuite) TestParseLayer() {
	for _, opt := range tiles.Layers() {
		layer, err := tiles.ParseLayer(string(opt.Layer))
		s.NoError(err)
		s.Equal(opt.Layer, layer)
		s.True(layer.Valid())
	}

	_, err := tiles.ParseLayer("pressure_new")
	s.Error(err)
	s.True(errors.Is(err, tiles.ErrUnknownLayer))
	s.False(tiles.Layer("").Valid())
}

func (s *LayersTestSuite) TestLayersInDisplayOrder() {
	layers := tiles.Layers()
	s.Len(layers, 6)
	s.Equal(tiles.LayerTemperature, layers[0].Layer)
	s.Equal("Temperatura", layers[0].Label)
	s.Equal(tiles.LayerSnow, layers[5].Layer)
	s.Equal("Nieve", layers[5].Label)

	layers[0].Label = "changed"
	s.Equal("Temperatura", tiles.Layers()[0].Label)
}

func (s *LayersTestSuite) TestOverlayURL() {
	s.Equal(
		"https://tile.openweathermap.org/map/clouds_new/{z}/{x}/{y}.png?appid=abc123",
		tiles.LayerClouds.OverlayURL("abc123"),
	)
}

func (s *LayersTestSuite) TestWithLayerOnlyChangesOverlay() {
	view := tiles.NewMapView(40.4165, -3.7026, "Madrid", tiles.DefaultLayer, "key")
	s.Equal(tiles.DefaultZoom, view.Zoom)
	s.Equal(tiles.BaseTileURL, view.BaseURL)

	swapped := view.WithLayer(tiles.LayerWind, "key")

	s.Equal(view.Lat, swapped.Lat)
	s.Equal(view.Lon, swapped.Lon)
	s.Equal(view.Zoom, swapped.Zoom)
	s.Equal(view.Popup, swapped.Popup)
	s.Equal(view.BaseURL, swapped.BaseURL)
	s.NotEqual(view.OverlayURL, swapped.OverlayURL)
	s.Contains(swapped.OverlayURL, "/wind_new/")
	s.Equal(tiles.DefaultLayer, view.Layer)
}

func TestLayersTestSuite(t *testing.T) {
	suite.Run(t, new(LayersTestSuite))
}
