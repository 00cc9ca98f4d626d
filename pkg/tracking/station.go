package tracking

import (
	"github.com/railmeds/railmeds/pkg/railapi"
)

// Station is a single calling point projected out of the train status feed.
type Station struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
	Distance      string `json:"distance"`
	Platform      string `json:"platform,omitempty"`
}

const placeholderStationCode = "UNK"
const placeholderClockTime = "--"

func projectStation(entry railapi.RouteEntry) *Station {
	platform := entry.ExpectedPlatform
	if platform == "-" {
		platform = ""
	}

	return &Station{
		Code:          entry.StationCode,
		Name:          entry.StationName,
		ArrivalTime:   entry.ArrivalTime,
		DepartureTime: entry.DepartureTime,
		Distance:      entry.Distance,
		Platform:      platform,
	}
}

// placeholderStation stands in for a calling point the feed never gave us,
// carrying only a display name from the reservation.
func placeholderStation(name string) *Station {
	return &Station{
		Code:          placeholderStationCode,
		Name:          name,
		ArrivalTime:   placeholderClockTime,
		DepartureTime: placeholderClockTime,
		Distance:      "0",
	}
}
