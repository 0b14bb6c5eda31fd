package userrecipes

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/internal/utils/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRecipeService interface {
		Create(ctx context.Context, userID string, req domain.CreateUserRecipeRequest) (string, error)
		List(ctx context.Context, userID string) ([]domain.UserRecipeSummary, error)
		GetDetails(ctx context.Context, recipeID string, userID string) (domain.UserRecipeDetails, error)
		Delete(ctx context.Context, recipeID string, userID string) error
		UploadImage(ctx context.Context, recipeID string, userID string, image *multipart.FileHeader) (string, error)
	}

	userRecipeService struct {
		userRecipeRepository UserRecipeRepository
		s3                   storage.AwsS3
	}
)

func NewUserRecipeService(userRecipeRepository UserRecipeRepository, s3 storage.AwsS3) UserRecipeService {
	return &userRecipeService{
		userRecipeRepository: userRecipeRepository,
		s3:                   s3,
	}
}

func (s *userRecipeService) Create(ctx context.Context, userID string, req domain.CreateUserRecipeRequest) (string, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(req.Title) == "" || req.Servings <= 0 {
		return "", domain.ErrMissingRecipeFields
	}

	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []domain.IngredientItem{}
	}
	serialized, err := json.Marshal(ingredients)
	if err != nil {
		return "", err
	}

	recipe := entities.UserRecipe{
		ID:             uuid.New(),
		UserID:         userUUID,
		Title:          req.Title,
		ReadyInMinutes: req.ReadyInMinutes,
		ImageURL:       req.Image,
		Vegan:          req.Vegan,
		Vegetarian:     req.Vegetarian,
		GlutenFree:     req.GlutenFree,
		Ingredients:    string(serialized),
		Instructions:   req.Instructions,
		Servings:       req.Servings,
	}
	if err := s.userRecipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return "", err
	}
	return recipe.ID.String(), nil
}

func (s *userRecipeService) List(ctx context.Context, userID string) ([]domain.UserRecipeSummary, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.userRecipeRepository.ListRecipes(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.UserRecipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, toSummary(recipe))
	}
	return summaries, nil
}

// GetDetails reports a missing recipe, a recipe owned by someone else, and a
// recipe with unreadable stored ingredients all as not-found. The caller can
// never tell which it was.
func (s *userRecipeService) GetDetails(ctx context.Context, recipeID string, userID string) (domain.UserRecipeDetails, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.UserRecipeDetails{}, err
	}

	ingredients, err := parseIngredients(recipe.Ingredients)
	if err != nil {
		return domain.UserRecipeDetails{}, domain.ErrRecipeNotFound
	}

	return domain.UserRecipeDetails{
		UserRecipeSummary: toSummary(recipe),
		Ingredients:       ingredients,
		Instructions:      recipe.Instructions,
		Servings:          recipe.Servings,
	}, nil
}

func (s *userRecipeService) Delete(ctx context.Context, recipeID string, userID string) error {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrRecipeNotFound
	}

	deleted, err := s.userRecipeRepository.DeleteRecipe(ctx, recipeUUID, userUUID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (s *userRecipeService) UploadImage(ctx context.Context, recipeID string, userID string, image *multipart.FileHeader) (string, error) {
	recipe, err := s.ownedRecipe(ctx, recipeID, userID)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("user-recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "user-recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "user-recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRecipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}

func (s *userRecipeService) ownedRecipe(ctx context.Context, recipeID string, userID string) (*entities.UserRecipe, error) {
	userUUID, err := parseIdentity(userID)
	if err != nil {
		return nil, err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	recipe, err := s.userRecipeRepository.GetRecipeByID(ctx, recipeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.UserID != userUUID {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func toSummary(recipe *entities.UserRecipe) domain.UserRecipeSummary {
	return domain.UserRecipeSummary{
		ID:             recipe.ID.String(),
		Title:          recipe.Title,
		ReadyInMinutes: recipe.ReadyInMinutes,
		Image:          recipe.ImageURL,
		Vegan:          recipe.Vegan,
		Vegetarian:     recipe.Vegetarian,
		GlutenFree:     recipe.GlutenFree,
	}
}

func parseIngredients(serialized string) ([]domain.IngredientItem, error) {
	if serialized == "" {
		return []domain.IngredientItem{}, nil
	}
	var ingredients []domain.IngredientItem
	if err := json.Unmarshal([]byte(serialized), &ingredients); err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []domain.IngredientItem{}
	}
	return ingredients, nil
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
