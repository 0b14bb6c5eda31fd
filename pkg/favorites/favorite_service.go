package favorites

import (
	"RecipeHub/domain"
	"context"

	"github.com/google/uuid"
)

type (
	FavoriteService interface {
		Add(ctx context.Context, userID string, recipeID int) error
		Remove(ctx context.Context, userID string, recipeID int) (bool, error)
		List(ctx context.Context, userID string) ([]int, error)
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository) FavoriteService {
	return &favoriteService{favoriteRepository: favoriteRepository}
}

func (s *favoriteService) Add(ctx context.Context, userID string, recipeID int) error {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return err
	}
	return s.favoriteRepository.AddFavorite(ctx, userUUID, recipeID)
}

func (s *favoriteService) Remove(ctx context.Context, userID string, recipeID int) (bool, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return false, err
	}
	return s.favoriteRepository.RemoveFavorite(ctx, userUUID, recipeID)
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]int, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}
	return s.favoriteRepository.ListFavorites(ctx, userUUID)
}

func parseIdentity(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, domain.ErrUnauthorized
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return userUUID, nil
}
