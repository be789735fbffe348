package utils

import "github.com/google/uuid"

// IDGenerator issues time-ordered identifiers for notes, tasks and clients.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUID if the clock
// source fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

func (g *IDGenerator) Prefixed(prefix string) string {
	return prefix + g.Generate()
}
