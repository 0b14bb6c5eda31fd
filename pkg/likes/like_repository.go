package likes

import (
	"RecipeHub/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	LikeRepository interface {
		AddLike(ctx context.Context, userID uuid.UUID, recipeID int) error
		RemoveLike(ctx context.Context, userID uuid.UUID, recipeID int) error
		HasLiked(ctx context.Context, userID uuid.UUID, recipeID int) (bool, error)
		CountLikes(ctx context.Context, recipeID int) (int64, error)
	}

	likeRepository struct {
		db *gorm.DB
	}
)

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// AddLike is a guarded insert: the unique (user_id, recipe_id) index plus
// ON CONFLICT DO NOTHING makes repeated calls converge on a single row.
func (r *likeRepository) AddLike(ctx context.Context, userID uuid.UUID, recipeID int) error {
	like := entities.RecipeLike{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
}

func (r *likeRepository) RemoveLike(ctx context.Context, userID uuid.UUID, recipeID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeLike{}).Error
}

func (r *likeRepository) HasLiked(ctx context.Context, userID uuid.UUID, recipeID int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) CountLikes(ctx context.Context, recipeID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
