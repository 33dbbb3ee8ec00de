package service

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/url"

	"dashboard/internal/config"
	"dashboard/internal/model"
	"dashboard/internal/proxy"
)

const (
	// HealthyStatus is reported by the health endpoints.
	HealthyStatus  = "healthy"
	healthyMessage = "Dashboard API is running"

	newsTag      = "webdev"
	newsTop      = "7"
	newsMaxItems = 10
)

// Error templates for the dashboard endpoints. They are never returned directly: callers receive
// copies, which still match these values with errors.Is.
var (
	ErrAPIKeyMissing  = proxy.ConfigError("API key not configured")
	ErrCityNotFound   = proxy.StatusError(http.StatusNotFound, "City not found")
	ErrInvalidCode    = proxy.InvalidInput("Invalid currency code")
	ErrRatesFailed    = proxy.StatusError(http.StatusInternalServerError, "Unable to fetch exchange rates")
	ErrUserNotFound   = proxy.StatusError(http.StatusNotFound, "User not found")
	ErrIPLookupFailed = proxy.StatusError(http.StatusInternalServerError, "Unable to lookup IP")
	ErrNewsFailed     = proxy.StatusError(http.StatusInternalServerError, "Unable to fetch news")

	errNoConditions = errors.New("upstream response has no weather conditions")
)

// DashboardService defines one use case per proxied upstream API.
// Every error it returns is a *proxy.Error carrying the HTTP status and message to respond with.
type DashboardService interface {
	// Health reports liveness; it never calls an upstream.
	Health() model.Health

	// Weather returns the current weather for city. It fails before any outbound call when no
	// OpenWeatherMap key is configured.
	Weather(ctx context.Context, city string) (*model.Weather, error)

	// Convert converts amount from one currency to another using the latest published rate.
	Convert(ctx context.Context, from, to string, amount float64) (*model.Conversion, error)

	// GitHubProfile returns public statistics for a GitHub user.
	GitHubProfile(ctx context.Context, username string) (*model.GitHubProfile, error)

	// LookupIP geolocates ip. An empty ip asks the upstream to locate the address the call comes from.
	LookupIP(ctx context.Context, ip string) (*model.IPLocation, error)

	// News returns at most ten top web development articles.
	News(ctx context.Context) (*model.NewsFeed, error)
}

// dashboardService is the concrete implementation of DashboardService.
type dashboardService struct {
	cfg    *config.AppConfig
	client *proxy.Client
}

// NewDashboardService constructs a DashboardService calling upstreams through client.
func NewDashboardService(cfg *config.AppConfig, client *proxy.Client) DashboardService {
	return &dashboardService{cfg: cfg, client: client}
}

func (s *dashboardService) Health() model.Health {
	return model.Health{Status: HealthyStatus, Message: healthyMessage}
}

var weatherEndpoint = proxy.Endpoint[owmWeather, *model.Weather]{
	Name: "openweathermap",
	Map: func(w owmWeather) (*model.Weather, error) {
		if len(w.Weather) == 0 {
			return nil, errNoConditions
		}
		return &model.Weather{
			City:        w.Name,
			Temperature: w.Main.Temp,
			Description: w.Weather[0].Description,
			Humidity:    w.Main.Humidity,
			WindSpeed:   w.Wind.Speed,
		}, nil
	},
	Fallback: ErrCityNotFound,
}

func (s *dashboardService) Weather(ctx context.Context, city string) (*model.Weather, error) {
	if s.cfg.OpenWeatherAPIKey == "" {
		return nil, ErrAPIKeyMissing.Clone()
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.cfg.OpenWeatherAPIKey)
	q.Set("units", "metric")
	target := s.cfg.Upstream.WeatherURL + "/weather?" + q.Encode()

	return proxy.Fetch(ctx, s.client, weatherEndpoint, target)
}

func (s *dashboardService) Convert(ctx context.Context, from, to string, amount float64) (*model.Conversion, error) {
	ep := proxy.Endpoint[rateTable, *model.Conversion]{
		Name: "exchangerate-api",
		Map: func(rt rateTable) (*model.Conversion, error) {
			rate := rt.Rates[to]
			if rate == 0 {
				return nil, ErrInvalidCode
			}
			return &model.Conversion{
				From:      from,
				To:        to,
				Amount:    amount,
				Converted: roundCents(amount * rate),
				Rate:      rate,
			}, nil
		},
		Fallback: ErrRatesFailed,
	}

	target := s.cfg.Upstream.CurrencyURL + "/latest/" + url.PathEscape(from)
	return proxy.Fetch(ctx, s.client, ep, target)
}

var githubEndpoint = proxy.Endpoint[githubUser, *model.GitHubProfile]{
	Name: "github",
	Map: func(u githubUser) (*model.GitHubProfile, error) {
		return &model.GitHubProfile{
			Username:    u.Login,
			Name:        u.Name,
			Bio:         u.Bio,
			PublicRepos: u.PublicRepos,
			Followers:   u.Followers,
			Following:   u.Following,
			AvatarURL:   u.AvatarURL,
			ProfileURL:  u.HTMLURL,
		}, nil
	},
	Fallback: ErrUserNotFound,
}

func (s *dashboardService) GitHubProfile(ctx context.Context, username string) (*model.GitHubProfile, error) {
	target := s.cfg.Upstream.GitHubURL + "/users/" + url.PathEscape(username)
	return proxy.Fetch(ctx, s.client, githubEndpoint, target)
}

var ipEndpoint = proxy.Endpoint[ipapiLocation, *model.IPLocation]{
	Name: "ipapi",
	Map: func(l ipapiLocation) (*model.IPLocation, error) {
		return &model.IPLocation{
			IP:       l.IP,
			City:     l.City,
			Region:   l.Region,
			Country:  l.CountryName,
			Timezone: l.Timezone,
			Org:      l.Org,
		}, nil
	},
	Fallback: ErrIPLookupFailed,
}

func (s *dashboardService) LookupIP(ctx context.Context, ip string) (*model.IPLocation, error) {
	target := s.cfg.Upstream.IPAPIURL + "/json/"
	if ip != "" {
		target = s.cfg.Upstream.IPAPIURL + "/" + url.PathEscape(ip) + "/json/"
	}
	return proxy.Fetch(ctx, s.client, ipEndpoint, target)
}

var newsEndpoint = proxy.Endpoint[[]devtoArticle, *model.NewsFeed]{
	Name: "devto",
	Map: func(articles []devtoArticle) (*model.NewsFeed, error) {
		if len(articles) > newsMaxItems {
			articles = articles[:newsMaxItems]
		}
		feed := &model.NewsFeed{Articles: make([]model.Article, 0, len(articles))}
		for _, a := range articles {
			tags := a.TagList
			if tags == nil {
				tags = []string{}
			}
			feed.Articles = append(feed.Articles, model.Article{
				Title:       a.Title,
				Description: a.Description,
				URL:         a.URL,
				PublishedAt: a.PublishedAt,
				Tags:        tags,
			})
		}
		return feed, nil
	},
	Fallback: ErrNewsFailed,
}

func (s *dashboardService) News(ctx context.Context) (*model.NewsFeed, error) {
	q := url.Values{}
	q.Set("tag", newsTag)
	q.Set("top", newsTop)
	target := s.cfg.Upstream.NewsURL + "/articles?" + q.Encode()

	return proxy.Fetch(ctx, s.client, newsEndpoint, target)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
