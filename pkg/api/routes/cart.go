package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/railmeds/railmeds/pkg/cart"
	"github.com/railmeds/railmeds/pkg/tracking"
	"github.com/rs/zerolog/log"
)

func CartRouter(router fiber.Router) {
	router.Get("/:pnr", getCart)
	router.Delete("/:pnr", clearCart)
	router.Post("/:pnr/items", addCartItem)
	router.Patch("/:pnr/items/:id", updateCartItem)
	router.Delete("/:pnr/items/:id", removeCartItem)
	router.Post("/:pnr/checkout", checkoutCart)
}

func cartResponse(c *fiber.Ctx, loadedCart *cart.Cart) error {
	return c.JSON(fiber.Map{
		"cart":       loadedCart,
		"totalItems": loadedCart.TotalItems(),
		"totalPrice": loadedCart.TotalPrice(),
	})
}

func getCart(c *fiber.Ctx) error {
	loadedCart, err := cart.Load(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	return cartResponse(c, loadedCart)
}

func clearCart(c *fiber.Ctx) error {
	loadedCart, err := cart.Load(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	loadedCart.Clear()

	if err := cart.Save(loadedCart); err != nil {
		log.Error().Err(err).Msg("Failed to save cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save cart",
		})
	}

	return cartResponse(c, loadedCart)
}

func addCartItem(c *fiber.Ctx) error {
	var item cart.Item
	if err := c.BodyParser(&item); err != nil || item.ID == "" {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request. Missing required fields.",
		})
	}

	if item.Quantity == 0 {
		item.Quantity = 1
	}

	loadedCart, err := cart.Load(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	loadedCart.AddItem(item)

	if err := cart.Save(loadedCart); err != nil {
		log.Error().Err(err).Msg("Failed to save cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save cart",
		})
	}

	return cartResponse(c, loadedCart)
}

func updateCartItem(c *fiber.Ctx) error {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil || body.Quantity < 1 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Invalid request. Missing required fields.",
		})
	}

	loadedCart, err := cart.Load(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	loadedCart.UpdateQuantity(c.Params("id"), body.Quantity)

	if err := cart.Save(loadedCart); err != nil {
		log.Error().Err(err).Msg("Failed to save cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save cart",
		})
	}

	return cartResponse(c, loadedCart)
}

func removeCartItem(c *fiber.Ctx) error {
	loadedCart, err := cart.Load(c.Params("pnr"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	loadedCart.RemoveItem(c.Params("id"))

	if err := cart.Save(loadedCart); err != nil {
		log.Error().Err(err).Msg("Failed to save cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not save cart",
		})
	}

	return cartResponse(c, loadedCart)
}

func checkoutCart(c *fiber.Ctx) error {
	pnrNumber := c.Params("pnr")

	loadedCart, err := cart.Load(pnrNumber)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load cart")
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not load cart",
		})
	}

	var body struct {
		PassengerName string `json:"passengerName"`
	}
	c.BodyParser(&body)

	if body.PassengerName != "" {
		loadedCart.SetPNR(pnrNumber, body.PassengerName)
	}

	// Fall back to the reservation's first passenger when the cart was never
	// associated with a name
	if loadedCart.PassengerName == "" {
		if trackingInfo := tracking.Resolve(pnrNumber); trackingInfo != nil {
			loadedCart.SetPNR(pnrNumber, trackingInfo.PassengerInfo.PassengerName)
		}
	}

	if err := cart.Checkout(loadedCart); err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Cart checked out successfully",
	})
}
