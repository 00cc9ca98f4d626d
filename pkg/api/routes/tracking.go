package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/tracking"
)

func TrackingRouter(router fiber.Router) {
	router.Get("/:pnr", getTrackingInfo)
}

func getTrackingInfo(c *fiber.Ctx) error {
	pnrNumber := c.Params("pnr")

	trackingInfo := tracking.Resolve(pnrNumber)

	if trackingInfo == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not retrieve train information. Please try again.",
		})
	}

	return c.JSON(trackingInfo)
}
