package family_test

import (
	"RecipeHub/domain"
	"RecipeHub/entities"
	"RecipeHub/pkg/family"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeFamilyRepository struct {
	recipes map[uuid.UUID]*entities.FamilyRecipe
}

func newFakeFamilyRepository() *fakeFamilyRepository {
	return &fakeFamilyRepository{recipes: make(map[uuid.UUID]*entities.FamilyRecipe)}
}

func (f *fakeFamilyRepository) CreateRecipe(_ context.Context, recipe *entities.FamilyRecipe) error {
	stored := *recipe
	f.recipes[recipe.ID] = &stored
	return nil
}

func (f *fakeFamilyRepository) GetRecipeByID(_ context.Context, id uuid.UUID) (*entities.FamilyRecipe, error) {
	recipe, ok := f.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *recipe
	return &copied, nil
}

func (f *fakeFamilyRepository) ListRecipes(_ context.Context, userID uuid.UUID) ([]*entities.FamilyRecipe, error) {
	var out []*entities.FamilyRecipe
	for _, recipe := range f.recipes {
		if recipe.UserID == userID {
			copied := *recipe
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeFamilyRepository) DeleteRecipe(_ context.Context, id uuid.UUID, userID uuid.UUID) (bool, error) {
	recipe, ok := f.recipes[id]
	if !ok || recipe.UserID != userID {
		return false, nil
	}
	delete(f.recipes, id)
	return true, nil
}

func validRequest(n int) domain.CreateFamilyRecipeRequest {
	return domain.CreateFamilyRecipeRequest{
		Title:        fmt.Sprintf("Holiday Dish %d", n),
		FamilyMember: "Grandma Rosa",
		Occasion:     "New Year",
		Ingredients:  []domain.IngredientItem{{Name: "cabbage", Amount: "1 head"}},
		Instructions: "Roll and simmer.",
	}
}

func TestMinimumDisplayRule(t *testing.T) {
	service := family.NewFamilyRecipeService(newFakeFamilyRepository())
	userID := uuid.New().String()

	for i := 0; i < 2; i++ {
		_, err := service.Create(context.Background(), userID, validRequest(i))
		require.NoError(t, err)
	}

	// Two recipes: withheld, not returned as a short list.
	_, err := service.ListAll(context.Background(), userID)
	require.ErrorIs(t, err, domain.ErrInsufficientContent)

	_, err = service.Create(context.Background(), userID, validRequest(2))
	require.NoError(t, err)

	recipes, err := service.ListAll(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for _, recipe := range recipes {
		require.Equal(t, "Grandma Rosa", recipe.FamilyMember)
		require.Equal(t, []domain.IngredientItem{{Name: "cabbage", Amount: "1 head"}}, recipe.Ingredients)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	service := family.NewFamilyRecipeService(newFakeFamilyRepository())
	userID := uuid.New().String()

	cases := []struct {
		name   string
		mutate func(*domain.CreateFamilyRecipeRequest)
	}{
		{"missing title", func(r *domain.CreateFamilyRecipeRequest) { r.Title = "" }},
		{"missing family member", func(r *domain.CreateFamilyRecipeRequest) { r.FamilyMember = "" }},
		{"missing ingredients", func(r *domain.CreateFamilyRecipeRequest) { r.Ingredients = nil }},
		{"missing instructions", func(r *domain.CreateFamilyRecipeRequest) { r.Instructions = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(0)
			tc.mutate(&req)
			_, err := service.Create(context.Background(), userID, req)
			require.ErrorIs(t, err, domain.ErrMissingFamilyFields)
		})
	}

	// The occasion note is optional.
	req := validRequest(1)
	req.Occasion = ""
	_, err := service.Create(context.Background(), userID, req)
	require.NoError(t, err)
}

func TestOwnerScoping(t *testing.T) {
	service := family.NewFamilyRecipeService(newFakeFamilyRepository())
	owner := uuid.New().String()
	stranger := uuid.New().String()

	id, err := service.Create(context.Background(), owner, validRequest(0))
	require.NoError(t, err)

	_, err = service.GetDetails(context.Background(), id, stranger)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	err = service.Delete(context.Background(), id, stranger)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)

	details, err := service.GetDetails(context.Background(), id, owner)
	require.NoError(t, err)
	require.Equal(t, "Holiday Dish 0", details.Title)

	require.NoError(t, service.Delete(context.Background(), id, owner))
	err = service.Delete(context.Background(), id, owner)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}
