package service

import (
	"context"
	"fmt"

	"github.com/damon-houk/currency-converter/internal/domain/entity"
	"github.com/damon-houk/currency-converter/internal/domain/repository"
	"github.com/damon-houk/currency-converter/internal/infrastructure/logger"
)

// FavoritesService manages saved currency pairs
type FavoritesService struct {
	repo   repository.FavoritesRepository
	logger logger.Logger
}

// NewFavoritesService creates a new favorites service
func NewFavoritesService(repo repository.FavoritesRepository, log logger.Logger) *FavoritesService {
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &FavoritesService{
		repo:   repo,
		logger: log,
	}
}

// Save stores BASE-TARGET unless it is already a favorite. It returns the
// stored pair and whether it was newly added.
func (s *FavoritesService) Save(ctx context.Context, base, target string) (entity.FavoritePair, bool, error) {
	base, err := normalizeCurrency("base", base)
	if err != nil {
		return entity.FavoritePair{}, false, err
	}
	target, err = normalizeCurrency("target", target)
	if err != nil {
		return entity.FavoritePair{}, false, err
	}

	pair := entity.FavoritePair{Base: base, Target: target}
	added, err := s.repo.Add(ctx, pair)
	if err != nil {
		return entity.FavoritePair{}, false, fmt.Errorf("failed to save favorite: %w", err)
	}

	if added {
		s.logger.Info("Favorite saved", map[string]interface{}{
			"pair": pair.String(),
		})
	}

	return pair, added, nil
}

// Load splits a saved pair string into base and target
func (s *FavoritesService) Load(pair string) (string, string, error) {
	p, err := entity.ParseFavoritePair(pair)
	if err != nil {
		return "", "", err
	}
	return p.Base, p.Target, nil
}

// List returns the favorites in the order they were saved
func (s *FavoritesService) List(ctx context.Context) ([]entity.FavoritePair, error) {
	pairs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return pairs, nil
}
