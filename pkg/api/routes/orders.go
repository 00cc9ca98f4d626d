package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/orders"
	"github.com/railmeds/railmeds/pkg/tracking"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

func OrdersRouter(router fiber.Router) {
	router.Post("/", placeOrder)
	router.Get("/id/:id", getOrder)
	router.Get("/:pnr", listOrders)
	router.Delete("/:pnr", deleteOrders)
}

type placeOrderItem struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price"`
}

type placeOrderRequest struct {
	PNRNumber            string           `json:"pnrNumber" validate:"required"`
	Items                []placeOrderItem `json:"items" validate:"required,min=1,dive"`
	DeliveryType         string           `json:"deliveryType" validate:"required,oneof=station seat"`
	PaymentMethod        string           `json:"paymentMethod" validate:"required,oneof=cod online"`
	PrescriptionRequired bool             `json:"prescriptionRequired"`
	PrescriptionURL      string           `json:"prescriptionUrl"`
}

// placeOrder confirms an order against the passenger's live position. It
// only constructs and echoes the order; persistence happens through the cart
// checkout.
func placeOrder(c *fiber.Ctx) error {
	var request placeOrderRequest
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

	if request.PrescriptionRequired && request.PrescriptionURL == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Prescription is required for this order but not provided.",
		})
	}

	trackingInfo := tracking.Resolve(request.PNRNumber)

	if trackingInfo == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not retrieve train information. Please try again.",
		})
	}

	deliveryStation := trackingInfo.NextStation

	if deliveryStation == nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not determine delivery station. Train may have reached its destination.",
		})
	}

	totalAmount := 0.0
	for _, item := range request.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	order := fiber.Map{
		"id":           fmt.Sprintf("ORD%d", time.Now().UnixMilli()),
		"pnrNumber":    request.PNRNumber,
		"trainNumber":  trackingInfo.TrainNumber,
		"trainName":    trackingInfo.TrainName,
		"items":        request.Items,
		"totalAmount":  totalAmount,
		"deliveryType": request.DeliveryType,
		"deliveryStation": fiber.Map{
			"code": deliveryStation.Code,
			"name": deliveryStation.Name,
			"eta":  trackingInfo.ETA,
		},
		"passengerInfo": fiber.Map{
			"coach":     trackingInfo.PassengerInfo.Coach,
			"berth":     trackingInfo.PassengerInfo.Berth,
			"berthType": trackingInfo.PassengerInfo.BerthType,
		},
		"paymentMethod":        request.PaymentMethod,
		"prescriptionRequired": request.PrescriptionRequired,
		"prescriptionUrl":      request.PrescriptionURL,
		"status":               "confirmed",
		"createdAt":            time.Now().Format(time.RFC3339),
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Order placed successfully",
		"order":   order,
	})
}

func listOrders(c *fiber.Ctx) error {
	pnrOrders, err := orders.GetByPNR(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch orders")
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not fetch orders",
		})
	}

	return c.JSON(pnrOrders)
}

func deleteOrders(c *fiber.Ctx) error {
	if err := orders.DeleteByPNR(c.Params("pnr")); err != nil {
		log.Error().Err(err).Msg("Failed to delete orders")
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Could not delete orders",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}

func getOrder(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	order, err := orders.GetByID(id)
	if err != nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Order matching Order Identifier",
		})
	}

	return c.JSON(order)
}
