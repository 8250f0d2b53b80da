package uuidgen

import (
	"github.com/google/uuid"

	"github.com/tuiter/tuiter/internal/domain/contract"
)

// Generator hands out random v4 ids for users and tuits.
type Generator struct{}

func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

var _ contract.IUUIDGenerator = (*Generator)(nil)
