package config

import (
	"os"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpstreamConfig holds the base URLs of the third-party APIs the dashboard proxies.
// They default to the public hosts and are overridable for tests and mirrors.
type UpstreamConfig struct {
	WeatherURL  string
	CurrencyURL string
	GitHubURL   string
	IPAPIURL    string
	NewsURL     string
}

// CORSConfig holds cross-origin settings applied to every route.
type CORSConfig struct {
	AllowOrigins string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed to the components that need it.
type AppConfig struct {
	AppHost           string
	Port              string
	TimeZone          string
	OpenWeatherAPIKey string
	CORS              CORSConfig
	Upstream          UpstreamConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:           getEnv("APP_HOST", "localhost:5000"),
		Port:              getEnv("PORT", "5000"),
		TimeZone:          getEnv("APP_TIMEZONE", "UTC"),
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Upstream: UpstreamConfig{
			WeatherURL:  trimURL(getEnv("WEATHER_API_URL", "http://api.openweathermap.org/data/2.5")),
			CurrencyURL: trimURL(getEnv("CURRENCY_API_URL", "https://api.exchangerate-api.com/v4")),
			GitHubURL:   trimURL(getEnv("GITHUB_API_URL", "https://api.github.com")),
			IPAPIURL:    trimURL(getEnv("IPAPI_URL", "https://ipapi.co")),
			NewsURL:     trimURL(getEnv("NEWS_API_URL", "https://dev.to/api")),
		},
	}
}

// Validate checks the values that must be well formed before the server starts.
// The OpenWeatherMap key is intentionally absent here: a missing key is reported per request.
func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Digit),
		validation.Field(&c.TimeZone, validation.Required, validation.By(validateTimeZone)),
		validation.Field(&c.CORS, validation.By(func(value interface{}) error {
			cc, _ := value.(CORSConfig)
			return validation.ValidateStruct(&cc,
				validation.Field(&cc.AllowOrigins, validation.Required),
			)
		})),
		validation.Field(&c.Upstream, validation.By(func(value interface{}) error {
			uc, _ := value.(UpstreamConfig)
			return validation.ValidateStruct(&uc,
				validation.Field(&uc.WeatherURL, validation.Required, is.URL),
				validation.Field(&uc.CurrencyURL, validation.Required, is.URL),
				validation.Field(&uc.GitHubURL, validation.Required, is.URL),
				validation.Field(&uc.IPAPIURL, validation.Required, is.URL),
				validation.Field(&uc.NewsURL, validation.Required, is.URL),
			)
		})),
	)
}

// Location returns the time zone used for log timestamps, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func validateTimeZone(value interface{}) error {
	s, _ := value.(string)
	if _, err := time.LoadLocation(s); err != nil {
		return validation.NewError("validation_invalid_timezone", "must be a valid IANA time zone")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func trimURL(u string) string {
	return strings.TrimRight(u, "/")
}
