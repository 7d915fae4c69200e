package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/founder-directory/models"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered v7 UUID, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// LocalID returns a placeholder id for a record created on this device.
// It can never collide with a server-assigned numeric id.
func (g *UUIDGenerator) LocalID() string {
	return models.LocalIDPrefix + g.Generate()
}
