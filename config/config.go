package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var validate = validator.New()

type Config struct {
	ServiceName   string
	ServerAddress string `validate:"required,hostname_port"`
	WebAddress    string `validate:"required,hostname_port"`
	ProxyURL      string `validate:"required,url"`

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32 `validate:"gt=0"`

	OpenWeatherAPIKey  string `validate:"required"`
	OpenWeatherBaseURL string `validate:"required,url"`
	TileAPIKey         string `validate:"required"`
	Units              string `validate:"required,oneof=standard metric imperial"`
	Lang               string `validate:"required"`

	TimeZone   string
	SessionTTL time.Duration `validate:"gt=0"`
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-lookup")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:5000")
	v.SetDefault("WEB_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("PROXY_URL", "http://localhost:5000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("UNITS", "metric")
	v.SetDefault("LANG", "es")
	v.SetDefault("TIME_ZONE", "Local")
	v.SetDefault("SESSION_TTL", 30*time.Minute)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:        v.GetString("SERVICE_NAME"),
		ServerAddress:      v.GetString("SERVER_ADDRESS"),
		WebAddress:         v.GetString("WEB_ADDRESS"),
		ProxyURL:           v.GetString("PROXY_URL"),
		DBName:             v.GetString("DATABASE_NAME"),
		DBPassword:         v.GetString("DATABASE_PASSWORD"),
		DBUser:             v.GetString("DATABASE_USER"),
		DBPort:             v.GetString("DATABASE_PORT"),
		DBHost:             v.GetString("DATABASE_HOST"),
		Env:                v.GetString("ENV"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		HTTPTimeout:        v.GetInt32("HTTP_TIMEOUT"),
		OpenWeatherAPIKey:  v.GetString("OPENWEATHER_API_KEY"),
		OpenWeatherBaseURL: v.GetString("OPENWEATHER_BASE_URL"),
		TileAPIKey:         v.GetString("TILE_API_KEY"),
		Units:              v.GetString("UNITS"),
		Lang:               v.GetString("LANG"),
		TimeZone:           v.GetString("TIME_ZONE"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
	}

	// The web client holds its own copy of the credential for map tiles.
	if config.TileAPIKey == "" {
		config.TileAPIKey = config.OpenWeatherAPIKey
	}

	return config, nil
}

// ValidateProxy checks the settings the proxy binary depends on.
func (c *Config) ValidateProxy() error {
	if err := validate.StructPartial(c, "ServerAddress", "HTTPTimeout", "OpenWeatherAPIKey", "OpenWeatherBaseURL", "Units", "Lang"); err != nil {
		return fmt.Errorf("invalid proxy config: %w", err)
	}
	return nil
}

// ValidateWeb checks the settings the web client binary depends on.
func (c *Config) ValidateWeb() error {
	if err := validate.StructPartial(c, "WebAddress", "ProxyURL", "HTTPTimeout", "TileAPIKey", "SessionTTL"); err != nil {
		return fmt.Errorf("invalid web config: %w", err)
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DatabaseEnabled reports whether the proxy audit log should be opened.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != "" && c.DBName != ""
}

// Location resolves TIME_ZONE, falling back to the process local zone.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("time_zone", c.TimeZone).Msg("unknown time zone, using local")
		return time.Local
	}
	return loc
}
