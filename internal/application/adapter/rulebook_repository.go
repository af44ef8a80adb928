// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/xpress-ledger/backend/internal/domain/entity"
)

// RulebookRepository persists category definitions (names and rules) between
// sessions. The working registry stays in memory; the rulebook is written
// after every registry mutation and read once at startup.
type RulebookRepository interface {
	// SaveAll snapshots the full category set, replacing the stored rulebook.
	SaveAll(ctx context.Context, categories []*entity.Category) error

	// LoadAll reads the stored rulebook in creation order. An empty slice
	// means no rulebook has been saved yet.
	LoadAll(ctx context.Context) ([]*entity.Category, error)
}
