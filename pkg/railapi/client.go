package railapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/railmeds/railmeds/pkg/util"
	"github.com/rs/zerolog/log"
)

const pnrStatusHost = "irctc-indian-railway-pnr-status.p.rapidapi.com"
const trainStatusHost = "indian-railway-irctc.p.rapidapi.com"

func rapidAPIKey() string {
	env := util.GetEnvironmentVariables()

	return env["RAILMEDS_RAPIDAPI_KEY"]
}

// FetchPNRStatus looks up a reservation. Missing passenger names are filled
// in positionally so downstream consumers always have a display name.
func FetchPNRStatus(pnrNumber string) (*PNRStatusResponse, error) {
	requestURL := fmt.Sprintf("https://%s/getPNRStatus/%s", pnrStatusHost, pnrNumber)
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", rapidAPIKey())
	req.Header.Set("x-rapidapi-host", pnrStatusHost)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pnr status request returned %d", resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var pnrStatus PNRStatusResponse
	if err := json.Unmarshal(jsonBytes, &pnrStatus); err != nil {
		return nil, err
	}

	if pnrStatus.Success {
		for i := range pnrStatus.Data.PassengerList {
			if pnrStatus.Data.PassengerList[i].PassengerName == "" {
				pnrStatus.Data.PassengerList[i].PassengerName = fmt.Sprintf("Passenger %d", i+1)
			}
		}
	}

	return &pnrStatus, nil
}

// FetchTrainStatus retrieves the live running status for a train on a given
// departure date (YYYYMMDD).
func FetchTrainStatus(trainNumber string, departureDate string) (*TrainStatusResponse, error) {
	requestURL := fmt.Sprintf(
		"https://%s/api/trains/v1/train/status?departure_date=%s&isH5=true&client=web&train_number=%s",
		trainStatusHost, departureDate, trainNumber,
	)
	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", rapidAPIKey())
	req.Header.Set("x-rapidapi-host", trainStatusHost)
	req.Header.Set("x-rapid-api", "rapid-api-database")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("train status request returned %d", resp.StatusCode)
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var trainStatus TrainStatusResponse
	if err := json.Unmarshal(jsonBytes, &trainStatus); err != nil {
		return nil, err
	}

	if trainStatus.Error != "" {
		log.Debug().Str("error", trainStatus.Error).Str("train", trainNumber).Msg("Train status feed reported an error")
	}

	return &trainStatus, nil
}

// CurrentDateFormatted returns today in the YYYYMMDD form the train status
// API expects.
func CurrentDateFormatted() string {
	return time.Now().Format("20060102")
}
