package emergency

import (
	"context"
	"strconv"
	"time"

	"github.com/railmeds/railmeds/pkg/database"
	"github.com/railmeds/railmeds/pkg/util"
	"go.mongodb.org/mongo-driver/bson"
)

// Emergency is a medical assistance request raised from a train, pinned to
// the station it should be serviced at.
type Emergency struct {
	ID            int64     `bson:"id" json:"id"`
	PNR           int64     `bson:"pnr" json:"PNR"`
	StationCode   string    `bson:"stationcode" json:"StationCode"`
	EmergencyType string    `bson:"emergencytype" json:"Emergency_Type"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// Create inserts the emergency request and hands it to the dispatch queue.
func Create(pnrNumber string, stationCode string, emergencyType string) (*Emergency, error) {
	pnr, err := strconv.ParseInt(pnrNumber, 10, 64)
	if err != nil {
		return nil, err
	}

	emergency := &Emergency{
		ID:            util.GenerateRecordID(),
		PNR:           pnr,
		StationCode:   stationCode,
		EmergencyType: emergencyType,
		CreatedAt:     time.Now(),
	}

	emergencyCollection := database.GetCollection("emergency")
	_, err = emergencyCollection.InsertOne(context.Background(), emergency)
	if err != nil {
		return nil, err
	}

	publishDispatchEvent(emergency)

	return emergency, nil
}

// GetByPNR lists every emergency request raised for a reservation.
func GetByPNR(pnrNumber string) ([]Emergency, error) {
	pnr, err := strconv.ParseInt(pnrNumber, 10, 64)
	if err != nil {
		return nil, err
	}

	emergencyCollection := database.GetCollection("emergency")

	cursor, err := emergencyCollection.Find(context.Background(), bson.M{"pnr": pnr})
	if err != nil {
		return nil, err
	}

	emergencies := []Emergency{}
	if err := cursor.All(context.Background(), &emergencies); err != nil {
		return nil, err
	}

	return emergencies, nil
}
