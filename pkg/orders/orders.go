package orders

import (
	"context"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/railmeds/railmeds/pkg/database"
	"github.com/railmeds/railmeds/pkg/util"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

// Order is one medicine line placed against a reservation.
type Order struct {
	ID        int64     `bson:"id" json:"id"`
	PNR       int64     `bson:"pnr" json:"PNR"`
	Name      string    `bson:"name" json:"Name"`
	Medicine  string    `bson:"medicine" json:"Medicine"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

const retryInterval = 500 * time.Millisecond
const retryAttempts = 3

// Create inserts a single order row for the reservation.
func Create(pnrNumber string, passengerName string, medicine string) (*Order, error) {
	pnr, err := strconv.ParseInt(pnrNumber, 10, 64)
	if err != nil {
		return nil, err
	}

	order := &Order{
		ID:        util.GenerateRecordID(),
		PNR:       pnr,
		Name:      passengerName,
		Medicine:  medicine,
		CreatedAt: time.Now(),
	}

	ordersCollection := database.GetCollection("orders")
	_, err = ordersCollection.InsertOne(context.Background(), order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// GetByPNR lists every order row stored against a reservation.
func GetByPNR(pnrNumber string) ([]Order, error) {
	pnr, err := strconv.ParseInt(pnrNumber, 10, 64)
	if err != nil {
		return nil, err
	}

	ordersCollection := database.GetCollection("orders")

	cursor, err := ordersCollection.Find(context.Background(), bson.M{"pnr": pnr})
	if err != nil {
		return nil, err
	}

	pnrOrders := []Order{}
	if err := cursor.All(context.Background(), &pnrOrders); err != nil {
		return nil, err
	}

	return pnrOrders, nil
}

// DeleteByPNR removes every order row stored against a reservation.
func DeleteByPNR(pnrNumber string) error {
	pnr, err := strconv.ParseInt(pnrNumber, 10, 64)
	if err != nil {
		return err
	}

	ordersCollection := database.GetCollection("orders")
	_, err = ordersCollection.DeleteMany(context.Background(), bson.M{"pnr": pnr})

	return err
}

// GetByID fetches a single order row. Freshly written rows can lag the read
// path, so the lookup retries a bounded number of times before giving up.
func GetByID(id int64) (*Order, error) {
	ordersCollection := database.GetCollection("orders")

	var order *Order

	operation := func() error {
		result := ordersCollection.FindOne(context.Background(), bson.M{"id": id})

		var found Order
		if err := result.Decode(&found); err != nil {
			log.Warn().Int64("id", id).Msg("Retrying order lookup")
			return err
		}

		order = &found
		return nil
	}

	retryPolicy := backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), retryAttempts-1)

	if err := backoff.Retry(operation, retryPolicy); err != nil {
		return nil, err
	}

	return order, nil
}
