package tracking

import (
	"fmt"
	"strconv"
	"time"

	"github.com/railmeds/railmeds/pkg/railapi"
	"github.com/rs/zerolog/log"
)

// PassengerInfo is the seat assignment for the first passenger on the
// reservation.
type PassengerInfo struct {
	PNRNumber     int64  `json:"pnrNumber"`
	Coach         string `json:"coach"`
	Berth         int    `json:"berth"`
	BerthType     string `json:"berthType"`
	PassengerName string `json:"passengerName"`
}

// TrainTrackingInfo is the resolved position of a passenger's train. Every
// field is always populated; stations the feeds never produced are explicit
// placeholders rather than missing values.
type TrainTrackingInfo struct {
	TrainNumber         int           `json:"trainNumber"`
	TrainName           string        `json:"trainName"`
	CurrentStation      *Station      `json:"currentStation"`
	NextStation         *Station      `json:"nextStation"`
	SourceStation       string        `json:"sourceStation"`
	DestinationStation  string        `json:"destinationStation"`
	PNRNumber           string        `json:"pnrNumber"`
	DeliveryStationCode string        `json:"deliveryStationCode"`
	DeliveryStationName string        `json:"deliveryStationName"`
	ETA                 string        `json:"eta,omitempty"`
	PassengerInfo       PassengerInfo `json:"passengerInfo"`
}

const minutesPerDay = 1440

// resolution is the intermediate state threaded through the resolver tiers.
// Indexes of -1 mean unresolved; passedCount counts stations whose departure
// already went by.
type resolution struct {
	currentIndex int
	nextIndex    int
	passedCount  int
}

type pnrStatusFetcher func(pnrNumber string) (*railapi.PNRStatusResponse, error)
type trainStatusFetcher func(trainNumber string, departureDate string) (*railapi.TrainStatusResponse, error)

// Resolve combines the reservation lookup with the live running status to
// work out where the train is. It returns nil, never an error, when either
// upstream reports failure; callers only ever see present-or-absent.
func Resolve(pnrNumber string) *TrainTrackingInfo {
	return resolve(railapi.FetchPNRStatus, railapi.FetchTrainStatus, pnrNumber, time.Now())
}

func resolve(fetchPNRStatus pnrStatusFetcher, fetchTrainStatus trainStatusFetcher, pnrNumber string, now time.Time) *TrainTrackingInfo {
	pnrStatus, err := fetchPNRStatus(pnrNumber)
	if err != nil {
		log.Error().Err(err).Str("pnr", pnrNumber).Msg("Failed to fetch PNR status")
		return nil
	}

	if !pnrStatus.Success {
		log.Error().Str("pnr", pnrNumber).Msg("PNR status lookup was unsuccessful")
		return nil
	}

	trainNumber := strconv.Itoa(pnrStatus.Data.TrainNumber)

	trainStatus, err := fetchTrainStatus(trainNumber, railapi.CurrentDateFormatted())
	if err != nil {
		log.Error().Err(err).Str("train", trainNumber).Msg("Failed to fetch train status")
		return nil
	}

	if trainStatus.Error != "" {
		log.Error().Str("train", trainNumber).Str("error", trainStatus.Error).Msg("Train status feed returned an error")
		return nil
	}

	return resolveFromResponses(pnrStatus, trainStatus, now)
}

func resolveFromResponses(pnrStatus *railapi.PNRStatusResponse, trainStatus *railapi.TrainStatusResponse, now time.Time) *TrainTrackingInfo {
	entries := trainStatus.Body.Stations
	nowMinutes := now.Hour()*60 + now.Minute()

	resolved := timeBasedPass(entries, nowMinutes)
	resolved = providerOverride(resolved, entries, trainStatus.Body.CurrentStation)
	currentStation, nextStation := applyFallbacks(resolved, entries, pnrStatus.Data)

	eta := ""
	if nextStation != nil {
		eta = FormatClockTime(nextStation.ArrivalTime)
	}

	passengerInfo := PassengerInfo{
		PNRNumber:     pnrStatus.Data.PNRNumber,
		PassengerName: "Passenger",
	}
	if len(pnrStatus.Data.PassengerList) > 0 {
		passenger := pnrStatus.Data.PassengerList[0]

		passengerInfo.Coach = passenger.CurrentCoachID
		passengerInfo.Berth = passenger.CurrentBerthNo
		passengerInfo.BerthType = passenger.CurrentBerthCode
		if passenger.PassengerName != "" {
			passengerInfo.PassengerName = passenger.PassengerName
		}
	}

	trackingInfo := &TrainTrackingInfo{
		TrainNumber:        pnrStatus.Data.TrainNumber,
		TrainName:          pnrStatus.Data.TrainName,
		CurrentStation:     currentStation,
		NextStation:        nextStation,
		SourceStation:      pnrStatus.Data.SourceStation,
		DestinationStation: pnrStatus.Data.DestinationStation,
		PNRNumber:          fmt.Sprint(pnrStatus.Data.PNRNumber),
		ETA:                eta,
		PassengerInfo:      passengerInfo,
	}

	if nextStation != nil {
		trackingInfo.DeliveryStationCode = nextStation.Code
		trackingInfo.DeliveryStationName = nextStation.Name
	}

	return trackingInfo
}

// timeBasedPass walks the whole calling sequence classifying stations as
// passed or upcoming by departure time. Departure minutes are shifted by
// (day - 1) * 1440 for multi-day routes while "now" is left unshifted; that
// asymmetry can misread day 2+ stations against a day 1 clock, and is kept
// deliberately to match the upstream comparison rule.
func timeBasedPass(entries []railapi.RouteEntry, nowMinutes int) resolution {
	resolved := resolution{currentIndex: -1, nextIndex: -1}

	for i, entry := range entries {
		departureMinutes, ok := departureMinutesForEntry(entry)
		if !ok {
			continue
		}

		if departureMinutes < nowMinutes {
			resolved.currentIndex = i
			resolved.passedCount++
		} else if resolved.nextIndex == -1 {
			resolved.nextIndex = i
		}
	}

	return resolved
}

func departureMinutesForEntry(entry railapi.RouteEntry) (int, bool) {
	hours, minutes, ok := parseClockTime(entry.DepartureTime)
	if !ok {
		return 0, false
	}

	departureMinutes := hours*60 + minutes

	if day, err := strconv.Atoi(entry.DayCount); err == nil && day > 1 {
		departureMinutes += (day - 1) * minutesPerDay
	}

	return departureMinutes, true
}

// providerOverride applies the feed's own notion of the current station. A
// matching station code beats whatever the time-based pass computed.
func providerOverride(resolved resolution, entries []railapi.RouteEntry, currentStationCode string) resolution {
	if currentStationCode == "" {
		return resolved
	}

	for i, entry := range entries {
		if entry.StationCode != currentStationCode {
			continue
		}

		resolved.currentIndex = i
		resolved.nextIndex = -1
		if i < len(entries)-1 {
			resolved.nextIndex = i + 1
		}

		return resolved
	}

	return resolved
}

// applyFallbacks fills whichever of current/next is still unresolved, ending
// with reservation-derived placeholders so the caller always gets both.
func applyFallbacks(resolved resolution, entries []railapi.RouteEntry, lookup railapi.PNRStatusData) (*Station, *Station) {
	var currentStation *Station
	var nextStation *Station

	if resolved.currentIndex != -1 {
		currentStation = projectStation(entries[resolved.currentIndex])
	}
	if resolved.nextIndex != -1 {
		nextStation = projectStation(entries[resolved.nextIndex])
	}

	if currentStation == nil && resolved.passedCount == 0 && len(entries) > 0 {
		// Not departed yet
		currentStation = projectStation(entries[0])
		nextStation = nil
		if len(entries) > 1 {
			nextStation = projectStation(entries[1])
		}
	}

	if nextStation == nil && currentStation != nil && resolved.currentIndex != -1 && resolved.currentIndex < len(entries)-1 {
		nextStation = projectStation(entries[resolved.currentIndex+1])
	}

	if currentStation == nil {
		currentStation = placeholderStation(lookup.SourceStation)
	}

	if nextStation == nil {
		nextStation = placeholderStation(lookup.DestinationStation)
	}

	return currentStation, nextStation
}
