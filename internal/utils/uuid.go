package utils

import "github.com/google/uuid"

// UUIDGenerator produces globally-unique photo identifiers. UUIDv7 keeps
// identifiers roughly time-ordered, which makes the photos table index
// friendlier to freshly captured rows.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
