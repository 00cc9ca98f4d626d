package util

import (
	"math/rand"
	"time"
)

// GenerateRecordID produces the numeric ids the order and emergency
// collections use: current millis plus a random offset below one million.
// Collision-prone, but kept compatible with the records already stored.
func GenerateRecordID() int64 {
	return time.Now().UnixMilli() + rand.Int63n(1_000_000)
}
