package railapi

// PNRStatusResponse is the reservation lookup envelope returned by the
// IRCTC PNR status API.
type PNRStatusResponse struct {
	Success bool          `json:"success"`
	Data    PNRStatusData `json:"data"`
}

type PNRStatusData struct {
	PNRNumber          int64       `json:"pnrNumber"`
	DateOfJourney      string      `json:"dateOfJourney"`
	TrainNumber        int         `json:"trainNumber"`
	TrainName          string      `json:"trainName"`
	SourceStation      string      `json:"sourceStation"`
	DestinationStation string      `json:"destinationStation"`
	ReservationUpto    string      `json:"reservationUpto"`
	BoardingPoint      string      `json:"boardingPoint"`
	JourneyClass       string      `json:"journeyClass"`
	NumberOfPassenger  int         `json:"numberOfpassenger"`
	ChartStatus        string      `json:"chartStatus"`
	PassengerList      []Passenger `json:"passengerList"`
}

type Passenger struct {
	PassengerSerialNumber int    `json:"passengerSerialNumber"`
	BookingStatus         string `json:"bookingStatus"`
	BookingCoachID        string `json:"bookingCoachId"`
	BookingBerthNo        int    `json:"bookingBerthNo"`
	BookingBerthCode      string `json:"bookingBerthCode"`
	CurrentStatus         string `json:"currentStatus"`
	CurrentCoachID        string `json:"currentCoachId"`
	CurrentBerthNo        int    `json:"currentBerthNo"`
	CurrentBerthCode      string `json:"currentBerthCode"`
	PassengerName         string `json:"passengerName,omitempty"`
}

// TrainStatusResponse is the live running status envelope. Error is empty on
// success. Clock times are "HH:MM" with "--" standing in for no stop.
type TrainStatusResponse struct {
	Error string          `json:"error"`
	Body  TrainStatusBody `json:"body"`
}

type TrainStatusBody struct {
	TimeOfAvailability string       `json:"time_of_availability"`
	CurrentStation     string       `json:"current_station"`
	Terminated         bool         `json:"terminated"`
	ServerTimestamp    string       `json:"server_timestamp"`
	TrainStatusMessage string       `json:"train_status_message"`
	Stations           []RouteEntry `json:"stations"`
}

type RouteEntry struct {
	StationCode      string `json:"stationCode"`
	StationName      string `json:"stationName"`
	ArrivalTime      string `json:"arrivalTime"`
	DepartureTime    string `json:"departureTime"`
	Distance         string `json:"distance"`
	DayCount         string `json:"dayCount"`
	ExpectedPlatform string `json:"expected_platform"`
}
