package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/catalog"
)

func DoctorsRouter(router fiber.Router) {
	router.Get("/", listDoctors)
	router.Get("/:id", getDoctor)
}

func listDoctors(c *fiber.Ctx) error {
	query := catalog.DoctorQuery{
		Specialty: c.Query("specialty"),
		Search:    c.Query("search"),
	}

	return c.JSON(catalog.FilterDoctors(query))
}

func getDoctor(c *fiber.Ctx) error {
	doctor := catalog.GetDoctor(c.Params("id"))

	if doctor == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Doctor matching Doctor Identifier",
		})
	}

	return c.JSON(doctor)
}
