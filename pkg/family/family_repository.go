package family

import (
	"RecipeHub/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FamilyRecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.FamilyRecipe) error
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.FamilyRecipe, error)
		ListRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error)
		DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error)
	}

	familyRecipeRepository struct {
		db *gorm.DB
	}
)

func NewFamilyRecipeRepository(db *gorm.DB) FamilyRecipeRepository {
	return &familyRecipeRepository{db: db}
}

func (r *familyRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.FamilyRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *familyRecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.FamilyRecipe, error) {
	var recipe entities.FamilyRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *familyRecipeRepository) ListRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error) {
	var recipes []*entities.FamilyRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *familyRecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.FamilyRecipe{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
