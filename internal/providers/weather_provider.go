package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Endpoint names an OpenWeatherMap data resource the proxy may forward.
type Endpoint string

const (
	EndpointWeather  Endpoint = "weather"
	EndpointForecast Endpoint = "forecast"
)

type WeatherAPIService interface {
	GetCurrentWeather(ctx context.Context, city string) ([]byte, error)
	GetForecast(ctx context.Context, city string) ([]byte, error)
	GetHTTPClient() *http.Client
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Endpoint   Endpoint
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s returned status code: %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status code: %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

type Options struct {
	APIKey  string
	BaseURL string
	Units   string
	Lang    string
	Timeout time.Duration
}

type weatherAPIService struct {
	apiKey  string
	baseURL string
	units   string
	lang    string
	client  *http.Client
}

func NewWeatherAPIService(opts Options) WeatherAPIService {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &weatherAPIService{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		units:   opts.Units,
		lang:    opts.Lang,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *weatherAPIService) GetCurrentWeather(ctx context.Context, city string) ([]byte, error) {
	return s.fetch(ctx, EndpointWeather, city)
}

func (s *weatherAPIService) GetForecast(ctx context.Context, city string) ([]byte, error) {
	return s.fetch(ctx, EndpointForecast, city)
}

// fetch returns the provider body untouched so the proxy can relay it verbatim.
func (s *weatherAPIService) fetch(ctx context.Context, endpoint Endpoint, city string) ([]byte, error) {
	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", s.apiKey)
	if s.units != "" {
		values.Set("units", s.units)
	}
	if s.lang != "" {
		values.Set("lang", s.lang)
	}

	u := fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, values.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s request could not be built: %w", endpoint, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s response could not be read: %w", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func (s *weatherAPIService) GetHTTPClient() *http.Client {
	return s.client
}
