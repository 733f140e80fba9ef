package view

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/proxyclient"
	"ulascansenturk/weather-lookup/internal/tiles"
	"ulascansenturk/weather-lookup/internal/weather"
)

var (
	ErrEmptyQuery = errors.New("city cannot be empty")
	// ErrSuperseded is returned by Submit when a newer query was issued while
	// this one was in flight; its result was discarded.
	ErrSuperseded = errors.New("query superseded by a newer one")
)

type Store struct {
	client     proxyclient.WeatherClient
	location   *time.Location
	mu         sync.Mutex
	generation uint64
	state      State
}

func NewStore(client proxyclient.WeatherClient, location *time.Location) *Store {
	if location == nil {
		location = time.Local
	}
	return &Store{
		client:   client,
		location: location,
		state:    initialState(),
	}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetLocation changes the zone used to group forecast samples by date.
func (s *Store) SetLocation(location *time.Location) {
	if location == nil {
		return
	}
	s.mu.Lock()
	s.location = location
	s.mu.Unlock()
}

func (s *Store) Location() *time.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// Submit runs one query: it publishes a cleared state tagged with a fresh
// generation, fetches current weather and then the forecast through the proxy,
// and publishes either both results or the error message. Results of an
// older generation are dropped.
func (s *Store) Submit(ctx context.Context, city string) (State, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return s.Snapshot(), ErrEmptyQuery
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	location := s.location
	s.state = State{
		Generation: gen,
		Query:      city,
		Loading:    true,
		Layer:      s.state.Layer,
	}
	s.mu.Unlock()

	current, forecast, err := s.fetch(ctx, city)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		log.Debug().Uint64("generation", gen).Str("city", city).Msg("discarding superseded query result")
		return s.state, ErrSuperseded
	}

	next := State{
		Generation: gen,
		Query:      city,
		Layer:      s.state.Layer,
	}
	if err != nil {
		log.Error().Err(err).Str("city", city).Msg("weather query failed")
		next.Error = QueryErrorMessage
	} else {
		next.Current = &current
		next.Forecast = weather.ReduceForecast(forecast.List, location)
	}

	s.state = next
	return next, nil
}

// The forecast is requested only once current conditions arrived; either
// failure fails the whole query.
func (s *Store) fetch(ctx context.Context, city string) (weather.CurrentWeather, weather.ForecastResponse, error) {
	current, err := s.client.GetCurrentWeather(ctx, city)
	if err != nil {
		return weather.CurrentWeather{}, weather.ForecastResponse{}, err
	}

	forecast, err := s.client.GetForecast(ctx, city)
	if err != nil {
		return weather.CurrentWeather{}, weather.ForecastResponse{}, err
	}

	return current, forecast, nil
}

// SelectLayer swaps the overlay layer without touching fetched data.
func (s *Store) SelectLayer(layer tiles.Layer) (State, error) {
	if !layer.Valid() {
		return s.Snapshot(), tiles.ErrUnknownLayer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Layer = layer
	s.state = next
	return next, nil
}
