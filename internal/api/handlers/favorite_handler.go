package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/favorites"
	"RecipeHub/pkg/recipes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FavoriteHandler interface {
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		GetFavorites(c *fiber.Ctx) error
	}

	favoriteHandler struct {
		favoriteService favorites.FavoriteService
		recipeService   recipes.RecipeService
		validator       *validator.Validate
	}
)

func NewFavoriteHandler(favoriteService favorites.FavoriteService, recipeService recipes.RecipeService, validator *validator.Validate) FavoriteHandler {
	return &favoriteHandler{
		favoriteService: favoriteService,
		recipeService:   recipeService,
		validator:       validator,
	}
}

func (h *favoriteHandler) AddFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.AddFavoriteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFavorite, err)
	}

	if err := h.favoriteService.Add(c.Context(), userID, req.RecipeID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddFavorite, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddFavorite)
}

func (h *favoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFavorite, domain.ErrFavoriteNotFound)
	}

	removed, err := h.favoriteService.Remove(c.Context(), userID, recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRemoveFavorite, err)
	}
	if !removed {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveFavorite, domain.ErrFavoriteNotFound)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFavorite)
}

func (h *favoriteHandler) GetFavorites(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipeIDs, err := h.favoriteService.List(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}

	previews, err := h.recipeService.GetPreviewBatch(c.Context(), recipeIDs, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFavorites, err)
	}
	return presenters.SuccessResponse(c, previews, fiber.StatusOK, domain.MessageSuccessGetFavorites)
}
