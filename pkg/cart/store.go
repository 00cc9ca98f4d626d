package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/railmeds/railmeds/pkg/orders"
	"github.com/railmeds/railmeds/pkg/redis_client"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cartExpiry = 48 * time.Hour

func cartKey(pnrNumber string) string {
	return fmt.Sprintf("railmeds:cart:%s", pnrNumber)
}

// Load fetches the persisted cart for a reservation, or a fresh empty one
// when nothing was stored yet.
func Load(pnrNumber string) (*Cart, error) {
	cartJSON, err := redis_client.Client.Get(context.Background(), cartKey(pnrNumber)).Result()
	if err == redis.Nil {
		return &Cart{Items: []Item{}, PNRNumber: pnrNumber}, nil
	}
	if err != nil {
		return nil, err
	}

	var loaded Cart
	if err := json.Unmarshal([]byte(cartJSON), &loaded); err != nil {
		return nil, err
	}

	return &loaded, nil
}

// Save persists the cart so it survives across sessions.
func Save(cart *Cart) error {
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return redis_client.Client.Set(context.Background(), cartKey(cart.PNRNumber), string(cartJSON), cartExpiry).Err()
}

// Checkout replaces the stored orders for the reservation with one row per
// cart line, then clears the cart. The inserts are independent writes with
// no transaction around them; a failure partway leaves the rows created so
// far in place.
func Checkout(cart *Cart) error {
	if cart.PNRNumber == "" || cart.PassengerName == "" {
		return errors.New("cart has no reservation associated")
	}
	if len(cart.Items) == 0 {
		return errors.New("cart is empty")
	}

	if err := orders.DeleteByPNR(cart.PNRNumber); err != nil {
		return err
	}

	for _, item := range cart.Items {
		medicine := fmt.Sprintf("%s (Qty: %d)", item.Name, item.Quantity)

		if _, err := orders.Create(cart.PNRNumber, cart.PassengerName, medicine); err != nil {
			log.Error().Err(err).Str("pnr", cart.PNRNumber).Str("medicine", medicine).Msg("Failed to create order")
			return err
		}
	}

	cart.Clear()

	return Save(cart)
}
