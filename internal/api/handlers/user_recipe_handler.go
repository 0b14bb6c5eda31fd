package handlers

import (
	"RecipeHub/domain"
	"RecipeHub/internal/api/presenters"
	"RecipeHub/pkg/userrecipes"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserRecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetails(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	userRecipeHandler struct {
		userRecipeService userrecipes.UserRecipeService
		validator         *validator.Validate
	}
)

func NewUserRecipeHandler(userRecipeService userrecipes.UserRecipeService, validator *validator.Validate) UserRecipeHandler {
	return &userRecipeHandler{
		userRecipeService: userRecipeService,
		validator:         validator,
	}
}

func (h *userRecipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateUserRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUserRecipe, domain.ErrMissingRecipeFields)
	}

	recipeID, err := h.userRecipeService.Create(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateUserRecipe, err)
	}
	return presenters.SuccessResponse(c, domain.CreateUserRecipeResponse{ID: recipeID}, fiber.StatusCreated, domain.MessageSuccessCreateUserRecipe)
}

func (h *userRecipeHandler) GetRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	summaries, err := h.userRecipeService.List(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetUserRecipes, err)
	}
	return presenters.SuccessResponse(c, summaries, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}

func (h *userRecipeHandler) GetRecipeDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	details, err := h.userRecipeService.GetDetails(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetUserRecipes, err)
	}
	return presenters.SuccessResponse(c, details, fiber.StatusOK, domain.MessageSuccessGetUserRecipes)
}

func (h *userRecipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userRecipeService.Delete(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteUserRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUserRecipe)
}

func (h *userRecipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	link, err := h.userRecipeService.UploadImage(c.Context(), c.Params("id"), userID, image)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"imageUrl": link}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
