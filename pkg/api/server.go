package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	webApp.Get("version", routes.APIVersion)

	routes.TrackingRouter(webApp.Group("/tracking"))
	routes.TrainsRouter(webApp.Group("/trains"))

	routes.MedicinesRouter(webApp.Group("/medicines"))
	routes.DoctorsRouter(webApp.Group("/doctors"))

	routes.CartRouter(webApp.Group("/cart"))
	routes.OrdersRouter(webApp.Group("/orders"))

	routes.EmergencyRouter(webApp.Group("/emergency"))
	routes.SymptomCheckerRouter(webApp.Group("/symptom-checker"))

	return webApp.Listen(listen)
}
