package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/recipes"
	"RecipeHub/pkg/watch"

	"github.com/gofiber/fiber/v2"
)

type (
	WatchHandler interface {
		RecordView(c *fiber.Ctx) error
		GetWatched(c *fiber.Ctx) error
		ClearWatched(c *fiber.Ctx) error
	}

	watchHandler struct {
		watchService  watch.WatchService
		recipeService recipes.RecipeService
	}
)

func NewWatchHandler(watchService watch.WatchService, recipeService recipes.RecipeService) WatchHandler {
	return &watchHandler{
		watchService:  watchService,
		recipeService: recipeService,
	}
}

func (h *watchHandler) RecordView(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordView, domain.ErrRecipeNotFound)
	}

	if err := h.watchService.RecordView(c.Context(), userID, recipeID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedRecordView, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessRecordView)
}

func (h *watchHandler) GetWatched(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var (
		recipeIDs []int
		err       error
	)
	if c.QueryBool("recent") {
		recipeIDs, err = h.watchService.ListRecent(c.Context(), userID, watch.DefaultRecentCount)
	} else {
		recipeIDs, err = h.watchService.ListAll(c.Context(), userID)
	}
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWatched, err)
	}

	previews, err := h.recipeService.GetPreviewBatch(c.Context(), recipeIDs, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWatched, err)
	}
	return presenters.SuccessResponse(c, previews, fiber.StatusOK, domain.MessageSuccessGetWatched)
}

func (h *watchHandler) ClearWatched(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	removed, err := h.watchService.ClearAll(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetWatched, err)
	}
	return presenters.SuccessResponse(c, domain.ClearWatchedResponse{Removed: removed}, fiber.StatusOK, domain.MessageSuccessClearWatched)
}
