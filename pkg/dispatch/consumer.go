package dispatch

import (
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/kr/pretty"
	"github.com/railmeds/railmeds/pkg/emergency"
	"github.com/railmeds/railmeds/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

const numConsumers = 5

func StartConsumers() {
	log.Info().Msg("Starting dispatch consumers")

	queue, err := redis_client.QueueConnection.OpenQueue(emergency.DispatchQueueName)
	if err != nil {
		panic(err)
	}
	if err := queue.StartConsuming(numConsumers*200, 1*time.Second); err != nil {
		panic(err)
	}

	for i := 0; i < numConsumers; i++ {
		go startDispatchConsumer(queue, i)
	}
}

func startDispatchConsumer(queue rmq.Queue, id int) {
	log.Info().Msgf("Starting dispatch consumer %d", id)

	if _, err := queue.AddBatchConsumer(fmt.Sprintf("dispatch-queue-%d", id), 20, 2*time.Second, NewBatchConsumer(id)); err != nil {
		panic(err)
	}
}

type BatchConsumer struct {
	id int
}

func NewBatchConsumer(id int) *BatchConsumer {
	return &BatchConsumer{id: id}
}

func (consumer *BatchConsumer) Consume(batch rmq.Deliveries) {
	payloads := batch.Payloads()

	for _, payload := range payloads {
		pretty.Println(string(payload))
	}

	if ackErrors := batch.Ack(); len(ackErrors) > 0 {
		for _, err := range ackErrors {
			log.Fatal().Err(err).Msg("Failed to consume dispatch event")
		}
	}
}
