package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/emergency"
	"github.com/rs/zerolog/log"
)

func EmergencyRouter(router fiber.Router) {
	router.Post("/", createEmergency)
	router.Get("/:pnr", listEmergencies)
}

type emergencyRequest struct {
	PNRNumber     string `json:"pnrNumber" validate:"required"`
	StationCode   string `json:"stationCode" validate:"required"`
	EmergencyType string `json:"emergencyType" validate:"required"`
}

func createEmergency(c *fiber.Ctx) error {
	var request emergencyRequest
	if err := c.BodyParser(&request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request. Missing required fields.",
		})
	}

	if err := validate.Struct(request); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request. Missing required fields.",
		})
	}

	created, err := emergency.Create(request.PNRNumber, request.StationCode, request.EmergencyType)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create emergency request")
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not create emergency request",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"emergency": created,
	})
}

func listEmergencies(c *fiber.Ctx) error {
	emergencies, err := emergency.GetByPNR(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch emergency requests")
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not fetch emergency requests",
		})
	}

	return c.JSON(emergencies)
}
