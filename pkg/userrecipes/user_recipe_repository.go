package userrecipes

import (
	"RecipeHub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.UserRecipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.UserRecipe, error)
		ListRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.UserRecipe) error
		DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
	}

	userRecipeRepository struct {
		db *gorm.DB
	}
)

func NewUserRecipeRepository(db *gorm.DB) UserRecipeRepository {
	return &userRecipeRepository{db: db}
}

func (r *userRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *userRecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.UserRecipe, error) {
	var recipe entities.UserRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *userRecipeRepository) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error) {
	var recipes []*entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *userRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

// DeleteRecipe scopes the delete by owner in the statement itself; a
// mismatch looks identical to a missing row.
func (r *userRecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.UserRecipe{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
