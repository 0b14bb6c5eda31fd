package catalog_test

import (
	"RecipeHub/domain"
	"RecipeHub/pkg/catalog"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const recipeBody = `{
	"id": %d,
	"title": "Garlic Soup",
	"readyInMinutes": 25,
	"image": "https://img.example/%d.jpg",
	"aggregateLikes": 42,
	"vegan": false,
	"vegetarian": true,
	"glutenFree": true,
	"servings": 4,
	"instructions": "Simmer everything.",
	"extendedIngredients": [
		{"name": "garlic", "amount": 3, "unit": "cloves"},
		{"name": "stock", "amount": 1.5, "unit": "l"}
	]
}`

func newCatalogServer(t *testing.T, failIDs map[int]bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/recipes/", func(w http.ResponseWriter, r *http.Request) {
		var id int
		if _, err := fmt.Sscanf(r.URL.Path, "/recipes/%d/information", &id); err != nil {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("apiKey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if failIDs[id] {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, recipeBody, id, id)
	})
	mux.HandleFunc("/recipes/random", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"recipes": [%s, %s]}`,
			fmt.Sprintf(recipeBody, 101, 101),
			fmt.Sprintf(recipeBody, 102, 102))
	})
	mux.HandleFunc("/recipes/complexSearch", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "soup", r.URL.Query().Get("query"))
		require.Equal(t, "5", r.URL.Query().Get("number"))
		require.Equal(t, "italian", r.URL.Query().Get("cuisine"))
		fmt.Fprintf(w, `{"results": [%s]}`, fmt.Sprintf(recipeBody, 7, 7))
	})
	return httptest.NewServer(mux)
}

func TestFetchByID(t *testing.T) {
	server := newCatalogServer(t, nil)
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	full, err := client.FetchByID(context.Background(), 33)
	require.NoError(t, err)
	require.Equal(t, 33, full.ID)
	require.Equal(t, "Garlic Soup", full.Title)
	require.Equal(t, 25, full.ReadyInMinutes)
	require.Equal(t, 42, full.Popularity)
	require.True(t, full.Vegetarian)
	require.Equal(t, 4, full.Servings)
	require.Len(t, full.Ingredients, 2)
	require.Equal(t, "garlic", full.Ingredients[0].Name)
	require.Equal(t, "3 cloves", full.Ingredients[0].Amount)
	require.Equal(t, "1.5 l", full.Ingredients[1].Amount)
}

func TestFetchByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	_, err := client.FetchByID(context.Background(), 999)
	require.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestFetchManyFiltersFailedItems(t *testing.T) {
	server := newCatalogServer(t, map[int]bool{2: true})
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	previews, err := client.FetchMany(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, previews, 2)
	require.Equal(t, 1, previews[0].ID)
	require.Equal(t, 3, previews[1].ID)
}

func TestFetchManyAllFailed(t *testing.T) {
	server := newCatalogServer(t, map[int]bool{1: true, 2: true})
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	previews, err := client.FetchMany(context.Background(), []int{1, 2})
	require.NoError(t, err)
	require.Empty(t, previews)
}

func TestFetchRandom(t *testing.T) {
	server := newCatalogServer(t, nil)
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	previews, err := client.FetchRandom(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, previews, 2)
	require.Equal(t, 101, previews[0].ID)
}

func TestSearch(t *testing.T) {
	server := newCatalogServer(t, nil)
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	previews, err := client.Search(context.Background(), "soup", 5, domain.SearchFilters{Cuisine: "italian"})
	require.NoError(t, err)
	require.Len(t, previews, 1)
	require.Equal(t, 7, previews[0].ID)
}

func TestSearchMissingQuery(t *testing.T) {
	client := catalog.NewCatalogClient("http://catalog.invalid", "test-key")

	_, err := client.Search(context.Background(), "  ", 5, domain.SearchFilters{})
	require.ErrorIs(t, err, domain.ErrMissingQuery)
}

func TestCatalogUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := catalog.NewCatalogClient(server.URL, "test-key")

	_, err := client.FetchRandom(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrCatalogRequestFailed)
}
