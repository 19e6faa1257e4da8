package utils

import "github.com/google/uuid"

// UUIDGenerator hands out record ids: random version 4 UUIDs in canonical
// lowercase form.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// IsCanonicalUUID reports whether s is a UUID spelled exactly as
// uuid.UUID.String prints it. Braced, URN and upper-case forms are rejected.
func IsCanonicalUUID(s string) bool {
	parsed, err := uuid.Parse(s)
	return err == nil && parsed.String() == s
}
