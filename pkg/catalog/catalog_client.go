package catalog

import (
	"RecipeHub/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

type (
	// CatalogClient talks to the external recipe provider. All calls are
	// per-request; nothing is cached between calls.
	CatalogClient interface {
		FetchByID(ctx context.Context, id int) (domain.RecipeFull, error)
		FetchMany(ctx context.Context, ids []int) ([]domain.RecipePreview, error)
		FetchRandom(ctx context.Context, count int) ([]domain.RecipePreview, error)
		Search(ctx context.Context, query string, limit int, filters domain.SearchFilters) ([]domain.RecipePreview, error)
	}

	catalogClient struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}

	// catalogRecipe is the provider's wire schema for a single recipe.
	catalogRecipe struct {
		ID                  int     `json:"id"`
		Title               string  `json:"title"`
		ReadyInMinutes      int     `json:"readyInMinutes"`
		Image               string  `json:"image"`
		AggregateLikes      int     `json:"aggregateLikes"`
		Vegan               bool    `json:"vegan"`
		Vegetarian          bool    `json:"vegetarian"`
		GlutenFree          bool    `json:"glutenFree"`
		Servings            int     `json:"servings"`
		Instructions        string  `json:"instructions"`
		ExtendedIngredients []struct {
			Name   string  `json:"name"`
			Amount float64 `json:"amount"`
			Unit   string  `json:"unit"`
		} `json:"extendedIngredients"`
	}
)

func NewCatalogClient(baseURL, apiKey string) CatalogClient {
	return &catalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *catalogClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("apiKey", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrRecipeNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %s", domain.ErrCatalogRequestFailed, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogRequestFailed, err)
	}
	return nil
}

func (c *catalogClient) FetchByID(ctx context.Context, id int) (domain.RecipeFull, error) {
	var raw catalogRecipe
	path := fmt.Sprintf("/recipes/%d/information", id)
	params := url.Values{"includeNutrition": {"false"}}
	if err := c.get(ctx, path, params, &raw); err != nil {
		return domain.RecipeFull{}, err
	}
	return raw.toFull(), nil
}

// FetchMany fans out one fetch per id and joins on completion. A failing
// item becomes a placeholder which is filtered out before returning, so one
// bad upstream recipe never fails the rest of the batch.
func (c *catalogClient) FetchMany(ctx context.Context, ids []int) ([]domain.RecipePreview, error) {
	type slot struct {
		preview domain.RecipePreview
		failed  bool
	}

	slots := make([]slot, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			full, err := c.FetchByID(ctx, id)
			if err != nil {
				slots[i] = slot{failed: true}
				return
			}
			slots[i] = slot{preview: full.RecipePreview}
		}(i, id)
	}
	wg.Wait()

	previews := make([]domain.RecipePreview, 0, len(ids))
	for _, s := range slots {
		if s.failed {
			continue
		}
		previews = append(previews, s.preview)
	}
	return previews, nil
}

func (c *catalogClient) FetchRandom(ctx context.Context, count int) ([]domain.RecipePreview, error) {
	var raw struct {
		Recipes []catalogRecipe `json:"recipes"`
	}
	params := url.Values{"number": {strconv.Itoa(count)}}
	if err := c.get(ctx, "/recipes/random", params, &raw); err != nil {
		return nil, err
	}

	previews := make([]domain.RecipePreview, 0, len(raw.Recipes))
	for _, r := range raw.Recipes {
		previews = append(previews, r.toPreview())
	}
	return previews, nil
}

func (c *catalogClient) Search(ctx context.Context, query string, limit int, filters domain.SearchFilters) ([]domain.RecipePreview, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrMissingQuery
	}

	var raw struct {
		Results []catalogRecipe `json:"results"`
	}
	params := url.Values{
		"query":                {query},
		"number":               {strconv.Itoa(limit)},
		"addRecipeInformation": {"true"},
	}
	if filters.Cuisine != "" {
		params.Set("cuisine", filters.Cuisine)
	}
	if filters.Diet != "" {
		params.Set("diet", filters.Diet)
	}
	if filters.Intolerance != "" {
		params.Set("intolerances", filters.Intolerance)
	}

	if err := c.get(ctx, "/recipes/complexSearch", params, &raw); err != nil {
		return nil, err
	}

	previews := make([]domain.RecipePreview, 0, len(raw.Results))
	for _, r := range raw.Results {
		previews = append(previews, r.toPreview())
	}
	return previews, nil
}

func (r catalogRecipe) toPreview() domain.RecipePreview {
	return domain.RecipePreview{
		ID:             r.ID,
		Title:          r.Title,
		ReadyInMinutes: r.ReadyInMinutes,
		Image:          r.Image,
		Popularity:     r.AggregateLikes,
		Vegan:          r.Vegan,
		Vegetarian:     r.Vegetarian,
		GlutenFree:     r.GlutenFree,
	}
}

func (r catalogRecipe) toFull() domain.RecipeFull {
	ingredients := make([]domain.IngredientItem, 0, len(r.ExtendedIngredients))
	for _, ing := range r.ExtendedIngredients {
		ingredients = append(ingredients, domain.IngredientItem{
			Name:   ing.Name,
			Amount: strings.TrimSpace(fmt.Sprintf("%g %s", ing.Amount, ing.Unit)),
		})
	}
	return domain.RecipeFull{
		RecipePreview: r.toPreview(),
		Ingredients:   ingredients,
		Instructions:  r.Instructions,
		Servings:      r.Servings,
	}
}
