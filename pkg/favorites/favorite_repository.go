package favorites

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	FavoriteRepository interface {
		AddFavorite(ctx context.Context, userID uuid.UUID, recipeID int) error
		RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID int) (bool, error)
		ListFavorites(ctx context.Context, userID uuid.UUID) ([]int, error)
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// AddFavorite inserts with ON CONFLICT DO NOTHING; zero affected rows means
// the pair already existed, which the caller must be told about.
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID int) error {
	favorite := entities.RecipeFavorite{
		ID:        uuid.New(),
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAlreadyFavorited
	}
	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID int) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeFavorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, userID uuid.UUID) ([]int, error) {
	var recipeIDs []int
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeFavorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &recipeIDs).Error; err != nil {
		return nil, err
	}
	return recipeIDs, nil
}
