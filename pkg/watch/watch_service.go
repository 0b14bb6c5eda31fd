package watch

import (
	"RecipeHub/domain"
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultRecentCount bounds the "recently watched" recall.
const DefaultRecentCount = 3

type (
	// WatchService tracks which catalog recipes a user has opened. Every
	// operation requires an identity; an absent one is an authorization
	// failure, not an empty history.
	WatchService interface {
		RecordView(ctx context.Context, userID string, recipeID int) error
		ListAll(ctx context.Context, userID string) ([]int, error)
		ListRecent(ctx context.Context, userID string, limit int) ([]int, error)
		ClearAll(ctx context.Context, userID string) (int64, error)
	}

	watchService struct {
		watchRepository WatchRepository
	}
)

func NewWatchService(watchRepository WatchRepository) WatchService {
	return &watchService{watchRepository: watchRepository}
}

func (s *watchService) RecordView(ctx context.Context, userID string, recipeID int) error {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return err
	}
	return s.watchRepository.UpsertView(ctx, userUUID, recipeID, time.Now())
}

func (s *watchService) ListAll(ctx context.Context, userID string) ([]int, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}
	return s.watchRepository.ListWatched(ctx, userUUID, 0)
}

func (s *watchService) ListRecent(ctx context.Context, userID string, limit int) ([]int, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecentCount
	}
	return s.watchRepository.ListWatched(ctx, userUUID, limit)
}

func (s *watchService) ClearAll(ctx context.Context, userID string) (int64, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return 0, err
	}
	return s.watchRepository.ClearWatched(ctx, userUUID)
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
