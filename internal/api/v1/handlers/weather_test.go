package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"ulascansenturk/weather-lookup/internal/api/v1/handlers"
	"ulascansenturk/weather-lookup/internal/mocks"
	"ulascansenturk/weather-lookup/internal/observability"
	"ulascansenturk/weather-lookup/internal/providers"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const londonBody = `{"coord":{"lon":-0.1257,"lat":51.5085},"name":"London","main":{"temp":11.2}}`

type WeatherHandlerTestSuite struct {
	suite.Suite
	mockService *mocks.MockWeatherAPIService
	mockRepo    *mocks.MockRepository
	handler     *handlers.WeatherHandler
}

func (s *WeatherHandlerTestSuite) SetupTest() {
	s.mockService = mocks.NewMockWeatherAPIService(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.handler = handlers.NewWeatherHandler(
		s.mockService,
		nil,
		observability.NewMetrics("weather-lookup-test"),
		zerolog.Nop(),
	)
}

func (s *WeatherHandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	return recorder
}

func (s *WeatherHandlerTestSuite) TestGetWeatherRelaysBodyUnchanged() {
	s.mockService.On("GetCurrentWeather", mock.Anything, "London").Return([]byte(londonBody), nil)

	recorder := s.serve(http.MethodGet, "/weather?city=London")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))
	s.Equal(londonBody, recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestGetForecastRelaysBodyUnchanged() {
	forecastBody := `{"cod":"200","list":[{"dt":1700000000,"main":{"temp":9.1}}]}`
	s.mockService.On("GetForecast", mock.Anything, "London").Return([]byte(forecastBody), nil)

	recorder := s.serve(http.MethodGet, "/forecast?city=London")

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal(forecastBody, recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestUpstreamFailureReturnsFixedError() {
	s.mockService.On("GetCurrentWeather", mock.Anything, "London").
		Return(nil, errors.New("dial tcp: connection refused"))

	recorder := s.serve(http.MethodGet, "/weather?city=London")

	s.Equal(http.StatusInternalServerError, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("Error al obtener datos meteorológicos", response.Error)
}

func (s *WeatherHandlerTestSuite) TestProviderStatusErrorIsNotLeaked() {
	s.mockService.On("GetForecast", mock.Anything, "Zzzzznotacity").
		Return(nil, &providers.StatusError{Endpoint: providers.EndpointForecast, StatusCode: 404, Body: `{"cod":"404"}`})

	recorder := s.serve(http.MethodGet, "/forecast?city=Zzzzznotacity")

	s.Equal(http.StatusInternalServerError, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	s.NoError(err)
	s.JSONEq(`{"error":"Error al obtener datos meteorológicos"}`, string(body))
}

func (s *WeatherHandlerTestSuite) TestMissingCityIsForwarded() {
	s.mockService.On("GetCurrentWeather", mock.Anything, "").
		Return(nil, &providers.StatusError{Endpoint: providers.EndpointWeather, StatusCode: 400})

	recorder := s.serve(http.MethodGet, "/weather")

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func (s *WeatherHandlerTestSuite) TestWrongMethod() {
	recorder := s.serve(http.MethodPost, "/weather?city=London")

	s.Equal(http.StatusMethodNotAllowed, recorder.Code)
	s.mockService.AssertNotCalled(s.T(), "GetCurrentWeather")
}

func (s *WeatherHandlerTestSuite) TestWrongPath() {
	recorder := s.serve(http.MethodGet, "/history?city=London")

	s.Equal(http.StatusNotFound, recorder.Code)

	var response handlers.ErrorResponse
	err := json.NewDecoder(recorder.Body).Decode(&response)
	s.NoError(err)
	s.Equal("not found", response.Error)
}

func (s *WeatherHandlerTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/weather?city=London", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	recorder := httptest.NewRecorder()

	s.handler.ServeHTTP(recorder, req)

	s.Equal("*", recorder.Header().Get("Access-Control-Allow-Origin"))
	s.mockService.AssertNotCalled(s.T(), "GetCurrentWeather")
}

func (s *WeatherHandlerTestSuite) TestHealth() {
	recorder := s.serve(http.MethodGet, "/health")

	s.Equal(http.StatusOK, recorder.Code)
	s.JSONEq(`{"status":"ok"}`, recorder.Body.String())
}

func (s *WeatherHandlerTestSuite) TestForwardedRequestsAreRecorded() {
	s.handler = handlers.NewWeatherHandler(
		s.mockService,
		s.mockRepo,
		observability.NewMetrics("weather-lookup-test"),
		zerolog.Nop(),
	)

	recorded := make(chan struct{}, 2)
	s.mockService.On("GetCurrentWeather", mock.Anything, "London").Return([]byte(londonBody), nil)
	s.mockService.On("GetForecast", mock.Anything, "London").Return(nil, errors.New("timeout"))
	s.mockRepo.On("LogProxyRequest", mock.Anything, "weather", "London", http.StatusOK, mock.AnythingOfType("time.Duration")).
		Return(nil).
		Run(func(args mock.Arguments) { recorded <- struct{}{} })
	s.mockRepo.On("LogProxyRequest", mock.Anything, "forecast", "London", http.StatusInternalServerError, mock.AnythingOfType("time.Duration")).
		Return(errors.New("database down")).
		Run(func(args mock.Arguments) { recorded <- struct{}{} })

	s.Equal(http.StatusOK, s.serve(http.MethodGet, "/weather?city=London").Code)
	s.Equal(http.StatusInternalServerError, s.serve(http.MethodGet, "/forecast?city=London").Code)

	for i := 0; i < 2; i++ {
		select {
		case <-recorded:
		case <-time.After(time.Second):
			s.Fail("proxy request was not recorded")
		}
	}
}

func (s *WeatherHandlerTestSuite) TestRequestContextIsPropagated() {
	s.mockService.On("GetCurrentWeather", mock.Anything, "SlowCity").
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.Canceled)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/weather?city=SlowCity", nil).WithContext(ctx)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)

	s.Equal(http.StatusInternalServerError, recorder.Code)
}

func TestWeatherHandlerSuite(t *testing.T) {
	suite.Run(t, new(WeatherHandlerTestSuite))
}
