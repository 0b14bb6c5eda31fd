package family

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinDisplayCount is the smallest family collection worth showing. Below
// this the whole collection is withheld rather than trickled out.
const MinDisplayCount = 3

type (
	FamilyRecipeService interface {
		Create(ctx context.Context, userID string, req domain.CreateFamilyRecipeRequest) (string, error)
		ListAll(ctx context.Context, userID string) ([]domain.FamilyRecipeDetails, error)
		GetDetails(ctx context.Context, recipeID string, userID string) (domain.FamilyRecipeDetails, error)
		Delete(ctx context.Context, recipeID string, userID string) error
	}

	familyRecipeService struct {
		familyRecipeRepository FamilyRecipeRepository
	}
)

func NewFamilyRecipeService(familyRecipeRepository FamilyRecipeRepository) FamilyRecipeService {
	return &familyRecipeService{familyRecipeRepository: familyRecipeRepository}
}

func (s *familyRecipeService) Create(ctx context.Context, userID string, req domain.CreateFamilyRecipeRequest) (string, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.FamilyMember) == "" ||
		len(req.Ingredients) == 0 ||
		strings.TrimSpace(req.Instructions) == "" {
		return "", domain.ErrMissingFamilyFields
	}

	serialized, err := json.Marshal(req.Ingredients)
	if err != nil {
		return "", err
	}

	recipe := entities.FamilyRecipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		FamilyMember: req.FamilyMember,
		Occasion:     req.Occasion,
		ImageURL:     req.Image,
		Ingredients:  string(serialized),
		Instructions: req.Instructions,
	}
	if err := s.familyRecipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return "", err
	}
	return recipe.ID.String(), nil
}

// ListAll returns the full collection only once it holds at least
// MinDisplayCount recipes; fewer is reported as insufficient content, not as
// a shorter list.
func (s *familyRecipeService) ListAll(ctx context.Context, userID string) ([]domain.FamilyRecipeDetails, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.familyRecipeRepository.ListRecipes(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	if len(recipes) < MinDisplayCount {
		return nil, domain.ErrInsufficientContent
	}

	details := make([]domain.FamilyRecipeDetails, 0, len(recipes))
	for _, recipe := range recipes {
		detail, err := toDetails(recipe)
		if err != nil {
			return nil, domain.ErrRecipeNotFound
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *familyRecipeService) GetDetails(ctx context.Context, recipeID string, userID string) (domain.FamilyRecipeDetails, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return domain.FamilyRecipeDetails{}, err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.FamilyRecipeDetails{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.familyRecipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FamilyRecipeDetails{}, domain.ErrRecipeNotFound
		}
		return domain.FamilyRecipeDetails{}, err
	}
	if recipe.UserID != userUUID {
		return domain.FamilyRecipeDetails{}, domain.ErrRecipeNotFound
	}

	details, err := toDetails(recipe)
	if err != nil {
		return domain.FamilyRecipeDetails{}, domain.ErrRecipeNotFound
	}
	return details, nil
}

func (s *familyRecipeService) Delete(ctx context.Context, recipeID string, userID string) error {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	deleted, err := s.familyRecipeRepository.DeleteRecipe(ctx, recipeUUID, userUUID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func toDetails(recipe *entities.FamilyRecipe) (domain.FamilyRecipeDetails, error) {
	var ingredients []domain.IngredientItem
	if recipe.Ingredients != "" {
		if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
			return domain.FamilyRecipeDetails{}, err
		}
	}
	if ingredients == nil {
		ingredients = []domain.IngredientItem{}
	}

	return domain.FamilyRecipeDetails{
		FamilyRecipeSummary: domain.FamilyRecipeSummary{
			ID:           recipe.ID.String(),
			Title:        recipe.Title,
			FamilyMember: recipe.FamilyMember,
			Occasion:     recipe.Occasion,
			Image:        recipe.ImageURL,
		},
		Ingredients:  ingredients,
		Instructions: recipe.Instructions,
	}, nil
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
