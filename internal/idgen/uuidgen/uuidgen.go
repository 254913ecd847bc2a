package uuidgen

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Generator issues prefixed random ids, e.g. "R-4f7c...".
type Generator struct {
	prefix string
}

func New(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return fmt.Sprintf("%s%s", g.prefix, id.String()), nil
}
