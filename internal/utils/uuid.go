package utils

import "github.com/google/uuid"

// IDGenerator produces unguessable identifiers for sessions and traces.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a random (version 4) UUID string.
func (g *IDGenerator) Generate() string {
	return uuid.NewString()
}
