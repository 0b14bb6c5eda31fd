package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/family"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FamilyRecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetails(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	familyRecipeHandler struct {
		familyRecipeService family.FamilyRecipeService
		validator           *validator.Validate
	}
)

func NewFamilyRecipeHandler(familyRecipeService family.FamilyRecipeService, validator *validator.Validate) FamilyRecipeHandler {
	return &familyRecipeHandler{
		familyRecipeService: familyRecipeService,
		validator:           validator,
	}
}

func (h *familyRecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateFamilyRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFamilyRecipe, domain.ErrMissingFamilyFields)
	}

	recipeID, err := h.familyRecipeService.Create(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateFamilyRecipe, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"id": recipeID}, fiber.StatusCreated, domain.MessageSuccessCreateFamilyRecipe)
}

func (h *familyRecipeHandler) GetRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipesList, err := h.familyRecipeService.ListAll(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientContent) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageInsufficientFamily, err)
		}
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFamilyRecipes, err)
	}
	return presenters.SuccessResponse(c, recipesList, fiber.StatusOK, domain.MessageSuccessGetFamilyRecipes)
}

func (h *familyRecipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	details, err := h.familyRecipeService.GetDetails(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetFamilyRecipes, err)
	}
	return presenters.SuccessResponse(c, details, fiber.StatusOK, domain.MessageSuccessGetFamilyRecipes)
}

func (h *familyRecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.familyRecipeService.Delete(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteFamilyRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFamilyRecipe)
}
