package emergency

import (
	"encoding/json"
	"time"

	"github.com/railmeds/railmeds/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

const DispatchQueueName = "dispatch-queue"

// DispatchEvent is what the dispatch consumers receive when an emergency
// request comes in.
type DispatchEvent struct {
	Type      string    `json:"Type"`
	Timestamp time.Time `json:"Timestamp"`
	Emergency Emergency `json:"Emergency"`
}

func publishDispatchEvent(emergency *Emergency) {
	if redis_client.QueueConnection == nil {
		log.Warn().Msg("No queue connection, skipping dispatch event")
		return
	}

	dispatchQueue, err := redis_client.QueueConnection.OpenQueue(DispatchQueueName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open dispatch queue")
		return
	}

	event := DispatchEvent{
		Type:      emergency.EmergencyType,
		Timestamp: time.Now(),
		Emergency: *emergency,
	}

	eventBytes, _ := json.Marshal(event)

	if err := dispatchQueue.PublishBytes(eventBytes); err != nil {
		log.Error().Err(err).Msg("Failed to publish dispatch event")
	}
}
