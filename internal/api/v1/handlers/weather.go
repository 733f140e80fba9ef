package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/db/proxyrequest"
	"ulascansenturk/weather-lookup/internal/observability"
	"ulascansenturk/weather-lookup/internal/providers"
)

type fetchFunc func(ctx context.Context, city string) ([]byte, error)

type WeatherHandler struct {
	weatherAPI   providers.WeatherAPIService
	requestRepo  proxyrequest.Repository
	metrics      *observability.Metrics
	auditTimeout time.Duration
	router       chi.Router
}

// NewWeatherHandler builds the proxy router. requestRepo may be nil, in which
// case forwarded requests are not recorded.
func NewWeatherHandler(
	weatherAPI providers.WeatherAPIService,
	requestRepo proxyrequest.Repository,
	metrics *observability.Metrics,
	logger zerolog.Logger,
) *WeatherHandler {
	h := &WeatherHandler{
		weatherAPI:   weatherAPI,
		requestRepo:  requestRepo,
		metrics:      metrics,
		auditTimeout: 5 * time.Second,
	}

	r := chi.NewRouter()
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	}))
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/weather", h.GetWeather)
	r.Get("/forecast", h.GetForecast)
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h.router = r
	return h
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// GetWeather forwards current conditions for ?city=.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, providers.EndpointWeather, h.weatherAPI.GetCurrentWeather)
}

// GetForecast forwards the 5-day/3-hour forecast for ?city=.
func (h *WeatherHandler) GetForecast(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, providers.EndpointForecast, h.weatherAPI.GetForecast)
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// The city value is passed through as-is; the provider is the only validator.
func (h *WeatherHandler) forward(w http.ResponseWriter, r *http.Request, endpoint providers.Endpoint, fetch fetchFunc) {
	city := r.URL.Query().Get("city")
	started := time.Now()

	body, err := fetch(r.Context(), city)
	elapsed := time.Since(started)
	h.metrics.ObserveUpstream(string(endpoint), err == nil, elapsed)

	if err != nil {
		hlog.FromRequest(r).Error().Err(err).
			Str("endpoint", string(endpoint)).
			Str("city", city).
			Msg("failed to get weather data")
		respondWithError(w, http.StatusInternalServerError, ProxyErrorMessage)
		h.record(endpoint, city, http.StatusInternalServerError, elapsed)
		return
	}

	respondWithRaw(w, http.StatusOK, body)
	h.record(endpoint, city, http.StatusOK, elapsed)
}

func (h *WeatherHandler) record(endpoint providers.Endpoint, city string, status int, elapsed time.Duration) {
	if h.requestRepo == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.auditTimeout)
		defer cancel()

		if err := h.requestRepo.LogProxyRequest(ctx, string(endpoint), city, status, elapsed); err != nil {
			log.Error().Err(err).Msg("Failed to log proxy request")
		}
	}()
}
