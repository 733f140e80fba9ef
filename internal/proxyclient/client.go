package proxyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ulascansenturk/weather-lookup/internal/weather"
)

// WeatherClient fetches weather data through the proxy service.
type WeatherClient interface {
	GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error)
	GetForecast(ctx context.Context, city string) (weather.ForecastResponse, error)
}

// ProxyError carries the status and message of a failed proxy call.
type ProxyError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *ProxyError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("proxy %s returned status code: %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("proxy %s returned status code: %d: %s", e.Path, e.StatusCode, e.Message)
}

type client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) WeatherClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *client) GetCurrentWeather(ctx context.Context, city string) (weather.CurrentWeather, error) {
	var current weather.CurrentWeather
	if err := c.get(ctx, "/weather", city, &current); err != nil {
		return weather.CurrentWeather{}, err
	}
	return current, nil
}

func (c *client) GetForecast(ctx context.Context, city string) (weather.ForecastResponse, error) {
	var forecast weather.ForecastResponse
	if err := c.get(ctx, "/forecast", city, &forecast); err != nil {
		return weather.ForecastResponse{}, err
	}
	return forecast, nil
}

func (c *client) get(ctx context.Context, path, city string, out interface{}) error {
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, url.Values{"city": {city}}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("proxy %s request could not be built: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("proxy %s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &ProxyError{Path: path, StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("proxy %s returned malformed JSON: %w", path, err)
	}

	return nil
}
