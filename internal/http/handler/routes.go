package handler

import (
	"math"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"dashboard/internal/service"
)

// Query defaults applied when the caller omits a parameter.
const (
	defaultCity   = "London"
	defaultFrom   = "USD"
	defaultTo     = "EUR"
	defaultAmount = "1"
)

// RegisterRoutes attaches the dashboard routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.DashboardService) {
	app.Get("/health", Health(svc))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/health", Health(svc))
	api.Get("/weather", Weather(svc))
	api.Get("/currency", Currency(svc))
	api.Get("/github/:username", GitHubProfile(svc))
	api.Get("/ip-lookup", IPLookup(svc))
	api.Get("/news", News(svc))
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} model.Health
// @Router /api/health [get]
func Health(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(svc.Health())
	}
}

// LivenessProbe answers 200 with an empty body.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// Weather godoc
// @Summary Current weather for a city
// @Tags weather
// @Produce json
// @Param city query string false "City name" default(London)
// @Success 200 {object} model.Weather
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/weather [get]
func Weather(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Weather(c.UserContext(), c.Query("city", defaultCity))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// Currency godoc
// @Summary Convert an amount between currencies
// @Tags currency
// @Produce json
// @Param from query string false "Source currency code" default(USD)
// @Param to query string false "Target currency code" default(EUR)
// @Param amount query number false "Amount to convert" default(1)
// @Success 200 {object} model.Conversion
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/currency [get]
func Currency(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		amount, err := strconv.ParseFloat(c.Query("amount", defaultAmount), 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
			return writeError(c, fiber.StatusBadRequest, "invalid amount")
		}

		res, err := svc.Convert(c.UserContext(), c.Query("from", defaultFrom), c.Query("to", defaultTo), amount)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// GitHubProfile godoc
// @Summary Public GitHub statistics for a user
// @Tags github
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} model.GitHubProfile
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/github/{username} [get]
func GitHubProfile(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params are still percent-encoded; the service escapes the login itself
		username, err := url.PathUnescape(c.Params("username"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid username")
		}

		res, err := svc.GitHubProfile(c.UserContext(), username)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// IPLookup godoc
// @Summary Geolocate an IP address
// @Tags ip
// @Produce json
// @Param ip query string false "IP address; empty looks up the server's own address"
// @Success 200 {object} model.IPLocation
// @Failure 500 {object} model.ErrorResponse
// @Router /api/ip-lookup [get]
func IPLookup(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.LookupIP(c.UserContext(), c.Query("ip"))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

// News godoc
// @Summary Top web development articles
// @Tags news
// @Produce json
// @Success 200 {object} model.NewsFeed
// @Failure 500 {object} model.ErrorResponse
// @Router /api/news [get]
func News(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.News(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}
