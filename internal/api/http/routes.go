package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/hmraza/weatherman/internal/weather"
)

var validate = validator.New()

// badInputMessage is the single client-facing message every pipeline failure
// maps to. The adapter does not discriminate among error kinds.
const badInputMessage = "invalid input data entered"

// RegisterRoutes wires the report handlers into the Fiber app. All report
// routes sit behind the auth middleware.
func RegisterRoutes(app *fiber.App, svc *weather.Service, auth fiber.Handler) {
	v1 := app.Group("/api/v1")

	v1.Get("/weatherman/yearly_report", auth, func(c *fiber.Ctx) error {
		dates := queryList(c, "year")

		reports, err := svc.Run(dates, 1, weather.StrategyExtremes, true)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, badInputMessage)
		}

		return c.JSON(reports)
	})

	v1.Get("/weatherman/monthly_report", auth, func(c *fiber.Ctx) error {
		dates := queryList(c, "date")

		reports, err := svc.Run(dates, 1, weather.StrategyAverages, false)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, badInputMessage)
		}

		return c.JSON(reports)
	})
}

// queryList collects every occurrence of a repeatable query parameter, in
// request order.
func queryList(c *fiber.Ctx, key string) []string {
	var values []string
	for _, v := range c.Context().QueryArgs().PeekMulti(key) {
		values = append(values, string(v))
	}
	return values
}
