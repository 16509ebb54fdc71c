package utils

import "github.com/google/uuid"

// RunIDGenerator proposes ids for new runs. Ids are time-ordered UUIDv7 so
// the runs of an experiment sort by creation time.
type RunIDGenerator struct {
	newID func() (uuid.UUID, error)
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{newID: uuid.NewV7}
}

// Generate falls back to a random UUIDv4 when the clock-based id cannot be
// produced.
func (g *RunIDGenerator) Generate() string {
	id, err := g.newID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
