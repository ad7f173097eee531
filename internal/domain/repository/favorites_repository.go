// Package repository internal/domain/repository/favorites_repository.go
package repository

import (
	"context"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
)

// FavoritesRepository defines the interface for favorite pair storage
type FavoritesRepository interface {
	// Add appends a pair unless it is already stored. It reports whether the
	// pair was added.
	Add(ctx context.Context, pair entity.FavoritePair) (bool, error)

	// List returns all pairs in insertion order
	List(ctx context.Context) ([]entity.FavoritePair, error)
}
