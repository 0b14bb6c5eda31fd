package likes

import (
	"RecipeHub/domain"
	"RecipeHub/pkg/catalog"
	"context"

	"github.com/google/uuid"
)

type (
	LikeService interface {
		// Toggle sets the like state for (user, recipe). When desired is nil
		// the current state is read and flipped; when present it wins and the
		// call is idempotent.
		Toggle(ctx context.Context, userID string, recipeID int, desired *bool) (bool, error)
		// CountCombined is catalog popularity (best effort, 0 when the
		// catalog fails) plus the local like count.
		CountCombined(ctx context.Context, recipeID int) (int, error)
		// CountLocal is just the local like count, for callers that already
		// hold the catalog figure.
		CountLocal(ctx context.Context, recipeID int) (int, error)
		// HasLiked is advisory display state. It never fails: any error,
		// including a missing identity, resolves to false.
		HasLiked(ctx context.Context, userID string, recipeID int) bool
	}

	likeService struct {
		likeRepository LikeRepository
		catalogClient  catalog.CatalogClient
	}
)

func NewLikeService(likeRepository LikeRepository, catalogClient catalog.CatalogClient) LikeService {
	return &likeService{
		likeRepository: likeRepository,
		catalogClient:  catalogClient,
	}
}

func (s *likeService) Toggle(ctx context.Context, userID string, recipeID int, desired *bool) (bool, error) {
	if userID == "" {
		return false, domain.ErrUnauthorized
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, domain.ErrParseUUID
	}

	target := false
	if desired != nil {
		target = *desired
	} else {
		// Read-then-write; two concurrent flips for the same pair can race,
		// but each write below is individually idempotent so the relation
		// stays consistent either way.
		current, err := s.likeRepository.HasLiked(ctx, userUUID, recipeID)
		if err != nil {
			return false, err
		}
		target = !current
	}

	if target {
		if err := s.likeRepository.AddLike(ctx, userUUID, recipeID); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := s.likeRepository.RemoveLike(ctx, userUUID, recipeID); err != nil {
		return false, err
	}
	return false, nil
}

func (s *likeService) CountCombined(ctx context.Context, recipeID int) (int, error) {
	external := 0
	if full, err := s.catalogClient.FetchByID(ctx, recipeID); err == nil {
		external = full.Popularity
	}

	local, err := s.likeRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return external + int(local), nil
}

func (s *likeService) CountLocal(ctx context.Context, recipeID int) (int, error) {
	local, err := s.likeRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return int(local), nil
}

func (s *likeService) HasLiked(ctx context.Context, userID string, recipeID int) bool {
	if userID == "" {
		return false
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false
	}
	liked, err := s.likeRepository.HasLiked(ctx, userUUID, recipeID)
	if err != nil {
		return false
	}
	return liked
}
