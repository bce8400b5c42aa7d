package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered UUIDv7 strings used as primary keys
// for users and notes and as request trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7. If the v7 source fails it falls back to a
// random v4 id.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsValidUUID reports whether s parses as a UUID.
func IsValidUUID(s string) bool {
	return uuid.Validate(s) == nil
}
