package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/internal/utils/searchcache"
	"RecipeHub/pkg/likes"
	"RecipeHub/pkg/recipes"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRandomRecipes(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		GetLastSearch(c *fiber.Ctx) error
		GetMainPage(c *fiber.Ctx) error
		GetRecipeDetails(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipes.RecipeService
		likeService   likes.LikeService
		searchCache   *searchcache.SearchCache
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipes.RecipeService, likeService likes.LikeService, searchCache *searchcache.SearchCache, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		likeService:   likeService,
		searchCache:   searchCache,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRandomRecipes(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Query("number", "3"))
	if err != nil || number < 1 {
		number = 3
	}

	previews, err := h.recipeService.GetRandomRecipes(c.Context(), number)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, previews, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := new(domain.SearchRecipesRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	previews, err := h.recipeService.SearchRecipes(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	// Replaying the last search is a per-user convenience, so nothing is
	// stored for anonymous callers.
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		h.searchCache.Store(userID, previews)
	}

	return presenters.SuccessResponse(c, previews, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetLastSearch(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	previews, ok := h.searchCache.Get(userID)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetLastSearch, domain.ErrNoLastSearch)
	}
	return presenters.SuccessResponse(c, previews, fiber.StatusOK, domain.MessageSuccessGetLastSearch)
}

func (h *recipeHandler) GetMainPage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := h.recipeService.GetMainPage(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMainPage, err)
	}
	return presenters.SuccessResponse(c, page, fiber.StatusOK, domain.MessageSuccessGetMainPage)
}

func (h *recipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}
	userID, _ := c.Locals("user_id").(string)

	details, err := h.recipeService.GetRecipeDetails(c.Context(), recipeID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, details, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, domain.ErrRecipeNotFound)
	}

	req := new(domain.ToggleLikeRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	liked, err := h.likeService.Toggle(c.Context(), userID, recipeID, req.Liked)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedToggleLike, err)
	}
	return presenters.SuccessResponse(c, domain.ToggleLikeResponse{Liked: liked}, fiber.StatusOK, domain.MessageSuccessToggleLike)
}
