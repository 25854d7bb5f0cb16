package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random task id. If the UUID source fails it falls back to
// a timestamp+random composite, which is unique enough for a single-user
// list but carries no collision guarantee under rapid concurrent creation.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID()
	}
	return id.String()
}

func fallbackID() string {
	return fmt.Sprintf("%d.%06d", time.Now().UnixMilli(), rand.Intn(1_000_000))
}
