package routes

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/catalog"
)

func MedicinesRouter(router fiber.Router) {
	router.Get("/", listMedicines)
	router.Get("/categories", listMedicineCategories)
	router.Get("/:id", getMedicine)
}

func listMedicines(c *fiber.Ctx) error {
	query := catalog.MedicineQuery{
		Tab:    c.Query("tab"),
		Search: c.Query("search"),
	}

	if categoriesQuery := c.Query("categories"); categoriesQuery != "" {
		query.Categories = strings.Split(categoriesQuery, ",")
	}

	if minPrice, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		query.MinPrice = minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		query.MaxPrice = maxPrice
	}

	return c.JSON(catalog.FilterMedicines(query))
}

func listMedicineCategories(c *fiber.Ctx) error {
	return c.JSON(catalog.MedicineCategories)
}

func getMedicine(c *fiber.Ctx) error {
	medicine := catalog.GetMedicine(c.Params("id"))

	if medicine == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Medicine matching Medicine Identifier",
		})
	}

	return c.JSON(medicine)
}
