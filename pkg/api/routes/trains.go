package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/tracking"
)

var stationCache tracking.StationCache

func TrainsRouter(router fiber.Router) {
	stationCache.Setup()

	router.Get("/:number/stations", getTrainStations)
}

func getTrainStations(c *fiber.Ctx) error {
	trainNumber := c.Params("number")

	return c.JSON(stationCache.Get(trainNumber))
}
