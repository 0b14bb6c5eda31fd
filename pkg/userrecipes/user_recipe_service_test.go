package userrecipes_test

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/pkg/userrecipes"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRecipeRepository struct {
	recipes map[uuid.UUID]*entities.UserRecipe
}

func newFakeUserRecipeRepository() *fakeUserRecipeRepository {
	return &fakeUserRecipeRepository{recipes: make(map[uuid.UUID]*entities.UserRecipe)}
}

func (f *fakeUserRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.UserRecipe) error {
	stored := *recipe
	f.recipes[recipe.ID] = &stored
	return nil
}

func (f *fakeUserRecipeRepository) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.UserRecipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (f *fakeUserRecipeRepository) ListRecipes(_ context.Context, userID uuid.UUID) ([]*entities.UserRecipe, error) {
	var out []*entities.UserRecipe
	for _, recipe := range f.recipes {
		if recipe.UserID == userID {
			copied := *recipe
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeUserRecipeRepository) UpdateRecipe(_ context.Context, recipe *entities.UserRecipe) error {
	stored := *recipe
	f.recipes[recipe.ID] = &stored
	return nil
}

func (f *fakeUserRecipeRepository) DeleteRecipe(_ context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	recipe, ok := f.recipes[id]
	if !ok || recipe.UserID != userID {
		return false, nil
	}
	delete(f.recipes, id)
	return true, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName + ".jpg", nil
}

func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(string) error { return nil }

func (fakeS3) GetObjectKeyFromLink(string) string { return "" }

func (fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.s3.region.amazonaws.com/" + objectKey
}

func newService(repo *fakeUserRecipeRepository) userrecipes.UserRecipeService {
	return userrecipes.NewUserRecipeService(repo, fakeS3{})
}

func TestCreateAndGetDetails(t *testing.T) {
	repo := newFakeUserRecipeRepository()
	service := newService(repo)
	userID := uuid.New().String()

	id, err := service.Create(context.Background(), userID, domain.CreateUserRecipeRequest{
		Title:    "Soup",
		Servings: 4,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	details, err := service.GetDetails(context.Background(), id, userID)
	require.NoError(t, err)
	require.Equal(t, "Soup", details.Title)
	require.Equal(t, 4, details.Servings)
	// No ingredients supplied: stored and returned as an empty list.
	require.NotNil(t, details.Ingredients)
	require.Empty(t, details.Ingredients)
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	service := newService(newFakeUserRecipeRepository())
	userID := uuid.New().String()

	_, err := service.Create(context.Background(), userID, domain.CreateUserRecipeRequest{Servings: 2})
	require.ErrorIs(t, err, domain.ErrMissingRecipeFields)

	_, err = service.Create(context.Background(), userID, domain.CreateUserRecipeRequest{Title: "Pie"})
	require.ErrorIs(t, err, domain.ErrMissingRecipeFields)
}

func TestIngredientsRoundTrip(t *testing.T) {
	service := newService(newFakeUserRecipeRepository())
	userID := uuid.New().String()

	ingredients := []domain.IngredientItem{
		{Name: "flour", Amount: "200 g"},
		{Name: "milk", Amount: "1 cup"},
	}
	id, err := service.Create(context.Background(), userID, domain.CreateUserRecipeRequest{
		Title:       "Pancakes",
		Servings:    2,
		Ingredients: ingredients,
	})
	require.NoError(t, err)

	details, err := service.GetDetails(context.Background(), id, userID)
	require.NoError(t, err)
	require.Equal(t, ingredients, details.Ingredients)
}

func TestOwnershipIsIndistinguishableFromAbsence(t *testing.T) {
	repo := newFakeUserRecipeRepository()
	service := newService(repo)
	owner := uuid.New().String()
	stranger := uuid.New().String()

	id, err := service.Create(context.Background(), owner, domain.CreateUserRecipeRequest{
		Title:    "Secret Stew",
		Servings: 6,
	})
	require.NoError(t, err)

	_, err = service.GetDetails(context.Background(), id, stranger)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = service.GetDetails(context.Background(), uuid.New().String(), stranger)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	// Same conflation on delete.
	err = service.Delete(context.Background(), id, stranger)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	require.NoError(t, service.Delete(context.Background(), id, owner))
}

func TestCorruptIngredientsReadAsNotFound(t *testing.T) {
	repo := newFakeUserRecipeRepository()
	service := newService(repo)
	userID := uuid.New()

	recipeID := uuid.New()
	repo.recipes[recipeID] = &entities.UserRecipe{
		ID:          recipeID,
		UserID:      userID,
		Title:       "Broken",
		Servings:    1,
		Ingredients: "{not json",
	}

	_, err := service.GetDetails(context.Background(), recipeID.String(), userID.String())
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestListIsOwnerScoped(t *testing.T) {
	service := newService(newFakeUserRecipeRepository())
	userA := uuid.New().String()
	userB := uuid.New().String()

	_, err := service.Create(context.Background(), userA, domain.CreateUserRecipeRequest{Title: "A1", Servings: 1})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), userB, domain.CreateUserRecipeRequest{Title: "B1", Servings: 1})
	require.NoError(t, err)

	summaries, err := service.List(context.Background(), userA)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "A1", summaries[0].Title)
}
