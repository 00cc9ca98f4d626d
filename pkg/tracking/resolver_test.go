package tracking

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/railmeds/railmeds/pkg/railapi"
)

func routeEntry(code string, name string, arrival string, departure string, day string) railapi.RouteEntry {
	return railapi.RouteEntry{
		StationCode:      code,
		StationName:      name,
		ArrivalTime:      arrival,
		DepartureTime:    departure,
		Distance:         "0",
		DayCount:         day,
		ExpectedPlatform: "-",
	}
}

func pnrResponse() *railapi.PNRStatusResponse {
	return &railapi.PNRStatusResponse{
		Success: true,
		Data: railapi.PNRStatusData{
			PNRNumber:          2430836549,
			TrainNumber:        12951,
			TrainName:          "Mumbai Rajdhani",
			SourceStation:      "Delhi",
			DestinationStation: "Mumbai",
			PassengerList: []railapi.Passenger{
				{
					CurrentCoachID:   "B4",
					CurrentBerthNo:   32,
					CurrentBerthCode: "LB",
					PassengerName:    "Asha Verma",
				},
			},
		},
	}
}

func statusResponse(currentStation string, entries ...railapi.RouteEntry) *railapi.TrainStatusResponse {
	return &railapi.TrainStatusResponse{
		Body: railapi.TrainStatusBody{
			CurrentStation: currentStation,
			Stations:       entries,
		},
	}
}

// noon keeps the wall clock in every test at 12:00, i.e. 720 minutes.
var noon = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestResolveAllStationsInFuture(t *testing.T) {
	trainStatus := statusResponse("",
		routeEntry("NDLS", "New Delhi", "--", "13:00", "1"),
		routeEntry("MTJ", "Mathura Jn", "14:30", "14:35", "1"),
		routeEntry("BCT", "Mumbai Central", "23:50", "--", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "NDLS" {
		t.Errorf("expected current station NDLS, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != "MTJ" {
		t.Errorf("expected next station MTJ, got %s", trackingInfo.NextStation.Code)
	}

	// Route-derived names beat the reservation placeholder whenever any
	// station data exists
	if trackingInfo.CurrentStation.Name == "Delhi" {
		t.Errorf("current station name should come from the route, not the reservation")
	}
}

func TestResolveAllStationsPassed(t *testing.T) {
	trainStatus := statusResponse("",
		routeEntry("NDLS", "New Delhi", "--", "06:00", "1"),
		routeEntry("MTJ", "Mathura Jn", "07:30", "07:35", "1"),
		routeEntry("RTM", "Ratlam Jn", "10:30", "10:40", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "RTM" {
		t.Errorf("expected current station RTM, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != placeholderStationCode {
		t.Errorf("expected destination placeholder, got %s", trackingInfo.NextStation.Code)
	}
	if trackingInfo.NextStation.Name != "Mumbai" {
		t.Errorf("expected placeholder named after the destination, got %s", trackingInfo.NextStation.Name)
	}
}

func TestResolveMidJourney(t *testing.T) {
	trainStatus := statusResponse("",
		routeEntry("NDLS", "New Delhi", "--", "06:00", "1"),
		routeEntry("MTJ", "Mathura Jn", "07:30", "07:35", "1"),
		routeEntry("RTM", "Ratlam Jn", "14:30", "14:40", "1"),
		routeEntry("BCT", "Mumbai Central", "21:50", "--", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "MTJ" {
		t.Errorf("expected current station MTJ, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != "RTM" {
		t.Errorf("expected next station RTM, got %s", trackingInfo.NextStation.Code)
	}
	if trackingInfo.ETA != "2:30 PM" {
		t.Errorf("expected ETA 2:30 PM, got %s", trackingInfo.ETA)
	}
	if trackingInfo.DeliveryStationCode != "RTM" {
		t.Errorf("expected delivery station RTM, got %s", trackingInfo.DeliveryStationCode)
	}
}

func TestResolveProviderOverride(t *testing.T) {
	// The time-based pass would say the train is at RTM; the feed says it is
	// still held at MTJ, and the feed wins
	trainStatus := statusResponse("MTJ",
		routeEntry("NDLS", "New Delhi", "--", "06:00", "1"),
		routeEntry("MTJ", "Mathura Jn", "07:30", "07:35", "1"),
		routeEntry("RTM", "Ratlam Jn", "10:30", "10:40", "1"),
		routeEntry("BCT", "Mumbai Central", "21:50", "--", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "MTJ" {
		t.Errorf("expected current station MTJ, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != "RTM" {
		t.Errorf("expected next station RTM, got %s", trackingInfo.NextStation.Code)
	}
}

func TestResolveProviderOverrideAtLastStation(t *testing.T) {
	trainStatus := statusResponse("BCT",
		routeEntry("NDLS", "New Delhi", "--", "06:00", "1"),
		routeEntry("BCT", "Mumbai Central", "21:50", "--", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "BCT" {
		t.Errorf("expected current station BCT, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != placeholderStationCode {
		t.Errorf("expected destination placeholder, got %s", trackingInfo.NextStation.Code)
	}
}

func TestResolveDayOffsetNotPassed(t *testing.T) {
	// 01:00 on day 2 adjusts to 1500 minutes, which a 720 minute clock has
	// not reached
	trainStatus := statusResponse("",
		routeEntry("NDLS", "New Delhi", "--", "13:00", "1"),
		routeEntry("BRC", "Vadodara Jn", "00:55", "01:00", "2"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Code != "NDLS" {
		t.Errorf("expected current station NDLS, got %s", trackingInfo.CurrentStation.Code)
	}
	if trackingInfo.NextStation.Code != "BRC" {
		t.Errorf("expected next station BRC, got %s", trackingInfo.NextStation.Code)
	}
}

func TestResolveEmptyStationList(t *testing.T) {
	trainStatus := statusResponse("")

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.CurrentStation.Name != "Delhi" {
		t.Errorf("expected source placeholder Delhi, got %s", trackingInfo.CurrentStation.Name)
	}
	if trackingInfo.NextStation.Name != "Mumbai" {
		t.Errorf("expected destination placeholder Mumbai, got %s", trackingInfo.NextStation.Name)
	}
	if trackingInfo.CurrentStation.Code != placeholderStationCode || trackingInfo.NextStation.Code != placeholderStationCode {
		t.Errorf("placeholders should carry the UNK code")
	}
	if trackingInfo.CurrentStation.Distance != "0" {
		t.Errorf("placeholders should carry distance 0, got %s", trackingInfo.CurrentStation.Distance)
	}
}

func TestResolvePassengerInfo(t *testing.T) {
	trainStatus := statusResponse("",
		routeEntry("NDLS", "New Delhi", "--", "13:00", "1"),
		routeEntry("BCT", "Mumbai Central", "23:50", "--", "1"),
	)

	trackingInfo := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if trackingInfo.PassengerInfo.PassengerName != "Asha Verma" {
		t.Errorf("expected passenger name from the reservation, got %s", trackingInfo.PassengerInfo.PassengerName)
	}
	if trackingInfo.PassengerInfo.Coach != "B4" || trackingInfo.PassengerInfo.Berth != 32 || trackingInfo.PassengerInfo.BerthType != "LB" {
		t.Errorf("unexpected seat details %+v", trackingInfo.PassengerInfo)
	}

	unnamed := pnrResponse()
	unnamed.Data.PassengerList[0].PassengerName = ""

	trackingInfo = resolveFromResponses(unnamed, trainStatus, noon)

	if trackingInfo.PassengerInfo.PassengerName != "Passenger" {
		t.Errorf("expected default passenger name, got %s", trackingInfo.PassengerInfo.PassengerName)
	}
}

func TestResolveIdempotent(t *testing.T) {
	trainStatus := statusResponse("MTJ",
		routeEntry("NDLS", "New Delhi", "--", "06:00", "1"),
		routeEntry("MTJ", "Mathura Jn", "07:30", "07:35", "1"),
		routeEntry("RTM", "Ratlam Jn", "10:30", "10:40", "1"),
	)

	first := resolveFromResponses(pnrResponse(), trainStatus, noon)
	second := resolveFromResponses(pnrResponse(), trainStatus, noon)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs should resolve identically:\n%+v\n%+v", first, second)
	}
}

func TestResolveUpstreamFailures(t *testing.T) {
	healthyPNR := func(pnrNumber string) (*railapi.PNRStatusResponse, error) {
		return pnrResponse(), nil
	}
	healthyStatus := func(trainNumber string, departureDate string) (*railapi.TrainStatusResponse, error) {
		return statusResponse("", routeEntry("NDLS", "New Delhi", "--", "13:00", "1")), nil
	}

	tests := []struct {
		name        string
		pnrStatus   pnrStatusFetcher
		trainStatus trainStatusFetcher
		expectNil   bool
	}{
		{
			name: "unsuccessful pnr lookup",
			pnrStatus: func(pnrNumber string) (*railapi.PNRStatusResponse, error) {
				return &railapi.PNRStatusResponse{Success: false}, nil
			},
			trainStatus: healthyStatus,
			expectNil:   true,
		},
		{
			name: "pnr lookup transport error",
			pnrStatus: func(pnrNumber string) (*railapi.PNRStatusResponse, error) {
				return nil, errors.New("connection reset")
			},
			trainStatus: healthyStatus,
			expectNil:   true,
		},
		{
			name:      "train status feed error",
			pnrStatus: healthyPNR,
			trainStatus: func(trainNumber string, departureDate string) (*railapi.TrainStatusResponse, error) {
				return &railapi.TrainStatusResponse{Error: "train not found"}, nil
			},
			expectNil: true,
		},
		{
			name:      "train status transport error",
			pnrStatus: healthyPNR,
			trainStatus: func(trainNumber string, departureDate string) (*railapi.TrainStatusResponse, error) {
				return nil, errors.New("timeout")
			},
			expectNil: true,
		},
		{
			name:        "healthy upstreams",
			pnrStatus:   healthyPNR,
			trainStatus: healthyStatus,
			expectNil:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trackingInfo := resolve(tt.pnrStatus, tt.trainStatus, "2430836549", noon)

			if tt.expectNil && trackingInfo != nil {
				t.Errorf("expected nil tracking info, got %+v", trackingInfo)
			}
			if !tt.expectNil && trackingInfo == nil {
				t.Errorf("expected tracking info, got nil")
			}
		})
	}
}

func TestProjectStationPlatform(t *testing.T) {
	entry := routeEntry("MTJ", "Mathura Jn", "07:30", "07:35", "1")
	entry.ExpectedPlatform = "3"

	if station := projectStation(entry); station.Platform != "3" {
		t.Errorf("expected platform 3, got %q", station.Platform)
	}

	entry.ExpectedPlatform = "-"

	if station := projectStation(entry); station.Platform != "" {
		t.Errorf("expected no platform, got %q", station.Platform)
	}
}
