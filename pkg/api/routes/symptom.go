package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/symptom"
)

func SymptomCheckerRouter(router fiber.Router) {
	router.Get("/greeting", getSymptomGreeting)
	router.Post("/", checkSymptoms)
}

func getSymptomGreeting(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"role":    "bot",
		"content": symptom.Greeting,
	})
}

func checkSymptoms(c *fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&body); err != nil || body.Message == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request. Missing required fields.",
		})
	}

	return c.JSON(fiber.Map{
		"role":    "bot",
		"content": symptom.Respond(body.Message),
	})
}
