package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/railmeds/railmeds/pkg/railapi"
	"github.com/railmeds/railmeds/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

// StationCache keeps the projected calling sequence per train for the
// station picker. Live position resolution never reads it; routes barely
// change within a journey, so a short TTL is fine here.
type StationCache struct {
	Cache *cache.Cache[string]
}

func (s *StationCache) Setup() {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(5*time.Minute))

	s.Cache = cache.New[string](redisStore)
}

func (s *StationCache) Get(trainNumber string) []Station {
	cacheKey := fmt.Sprintf("railmeds:stations:%s", trainNumber)

	if s.Cache != nil {
		stationsCacheValue, err := s.Cache.Get(context.Background(), cacheKey)
		if err == nil {
			var stations []Station
			if json.Unmarshal([]byte(stationsCacheValue), &stations) == nil {
				return stations
			}
		}
	}

	stations := RouteStations(trainNumber)

	if s.Cache != nil && len(stations) > 0 {
		stationsJSON, _ := json.Marshal(stations)
		s.Cache.Set(context.Background(), cacheKey, string(stationsJSON))
	}

	return stations
}

// RouteStations fetches the full calling sequence for a train. Failures
// are logged and come back as an empty list.
func RouteStations(trainNumber string) []Station {
	trainStatus, err := railapi.FetchTrainStatus(trainNumber, railapi.CurrentDateFormatted())
	if err != nil {
		log.Error().Err(err).Str("train", trainNumber).Msg("Failed to fetch train status")
		return []Station{}
	}

	if trainStatus.Error != "" {
		log.Error().Str("train", trainNumber).Str("error", trainStatus.Error).Msg("Train status feed returned an error")
		return []Station{}
	}

	stations := []Station{}
	for _, entry := range trainStatus.Body.Stations {
		stations = append(stations, *projectStation(entry))
	}

	return stations
}
