package watch

import (
	"RecipeHub/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	WatchRepository interface {
		UpsertView(ctx context.Context, userID uuid.UUID, recipeID int, viewedAt time.Time) error
		ListWatched(ctx context.Context, userID uuid.UUID, limit int) ([]int, error)
		ClearWatched(ctx context.Context, userID uuid.UUID) (int64, error)
	}

	watchRepository struct {
		db *gorm.DB
	}
)

func NewWatchRepository(db *gorm.DB) WatchRepository {
	return &watchRepository{db: db}
}

// UpsertView bumps viewed_at when the pair exists and inserts otherwise, as
// a single statement, so there is never more than one row per pair no matter
// how often a recipe is opened.
func (r *watchRepository) UpsertView(ctx context.Context, userID uuid.UUID, recipeID int, viewedAt time.Time) error {
	record := entities.RecipeWatch{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		ViewedAt: viewedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": viewedAt}),
		}).
		Create(&record).Error
}

// ListWatched returns recipe ids most recently viewed first. limit <= 0
// means no bound.
func (r *watchRepository) ListWatched(ctx context.Context, userID uuid.UUID, limit int) ([]int, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.RecipeWatch{}).
		Where("user_id = ?", userID).
		Order("viewed_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipeIDs []int
	if err := query.Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	return recipeIDs, nil
}

func (r *watchRepository) ClearWatched(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entities.RecipeWatch{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
