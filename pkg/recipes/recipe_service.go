package recipes

import (
	"RecipeHub/domain"
	"RecipeHub/pkg/catalog"
	"RecipeHub/pkg/likes"
	"RecipeHub/pkg/watch"
	"context"
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

type (
	// RecipeService merges catalog metadata with locally owned social state
	// into the response shapes the handlers return.
	RecipeService interface {
		GetRecipeDetails(ctx context.Context, recipeID int, userID string) (domain.RecipeDetails, error)
		GetPreviewBatch(ctx context.Context, recipeIDs []int, userID string) ([]domain.EnrichedPreview, error)
		GetRandomRecipes(ctx context.Context, count int) ([]domain.RecipePreview, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipePreview, error)
		GetMainPage(ctx context.Context, userID string) (domain.MainPageResponse, error)
	}

	recipeService struct {
		catalogClient catalog.CatalogClient
		likeService   likes.LikeService
		watchService  watch.WatchService
	}
)

const defaultSearchLimit = 5

func NewRecipeService(catalogClient catalog.CatalogClient, likeService likes.LikeService, watchService watch.WatchService) RecipeService {
	return &recipeService{
		catalogClient: catalogClient,
		likeService:   likeService,
		watchService:  watchService,
	}
}

// GetRecipeDetails fails only when the base metadata fetch fails. Popularity
// and like enrichment are advisory: on error the catalog figure stands alone
// and hasLiked stays false. An absent identity also means hasLiked false,
// never an error.
func (s *recipeService) GetRecipeDetails(ctx context.Context, recipeID int, userID string) (domain.RecipeDetails, error) {
	full, err := s.catalogClient.FetchByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetails{}, err
	}

	if local, err := s.likeService.CountLocal(ctx, recipeID); err == nil {
		full.Popularity += local
	} else {
		log.Warnf("like count unavailable for recipe %d: %v", recipeID, err)
	}

	return domain.RecipeDetails{
		RecipeFull:   full,
		UserHasLiked: s.likeService.HasLiked(ctx, userID, recipeID),
	}, nil
}

// GetPreviewBatch inherits the catalog client's partial-failure tolerance
// and applies the same per-item enrichment, fanned out across the batch.
func (s *recipeService) GetPreviewBatch(ctx context.Context, recipeIDs []int, userID string) ([]domain.EnrichedPreview, error) {
	previews, err := s.catalogClient.FetchMany(ctx, recipeIDs)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.EnrichedPreview, len(previews))
	var wg sync.WaitGroup
	for i, preview := range previews {
		wg.Add(1)
		go func(i int, preview domain.RecipePreview) {
			defer wg.Done()
			enriched[i] = s.enrich(ctx, preview, userID)
		}(i, preview)
	}
	wg.Wait()
	return enriched, nil
}

func (s *recipeService) enrich(ctx context.Context, preview domain.RecipePreview, userID string) domain.EnrichedPreview {
	if local, err := s.likeService.CountLocal(ctx, preview.ID); err == nil {
		preview.Popularity += local
	} else {
		log.Warnf("like count unavailable for recipe %d: %v", preview.ID, err)
	}
	return domain.EnrichedPreview{
		RecipePreview: preview,
		UserHasLiked:  s.likeService.HasLiked(ctx, userID, preview.ID),
	}
}

func (s *recipeService) GetRandomRecipes(ctx context.Context, count int) ([]domain.RecipePreview, error) {
	if count <= 0 {
		count = watch.DefaultRecentCount
	}
	return s.catalogClient.FetchRandom(ctx, count)
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest) ([]domain.RecipePreview, error) {
	limit := req.Number
	if limit == 0 {
		limit = defaultSearchLimit
	}
	return s.catalogClient.Search(ctx, req.Query, limit, domain.SearchFilters{
		Cuisine:     req.Cuisine,
		Diet:        req.Diet,
		Intolerance: req.Intolerance,
	})
}

// GetMainPage combines the caller's three most recent views with three
// random suggestions.
func (s *recipeService) GetMainPage(ctx context.Context, userID string) (domain.MainPageResponse, error) {
	recentIDs, err := s.watchService.ListRecent(ctx, userID, watch.DefaultRecentCount)
	if err != nil {
		return domain.MainPageResponse{}, err
	}

	watched, err := s.GetPreviewBatch(ctx, recentIDs, userID)
	if err != nil {
		return domain.MainPageResponse{}, err
	}

	explore, err := s.catalogClient.FetchRandom(ctx, watch.DefaultRecentCount)
	if err != nil {
		return domain.MainPageResponse{}, err
	}

	return domain.MainPageResponse{
		RecentlyWatched: watched,
		Explore:         explore,
	}, nil
}
