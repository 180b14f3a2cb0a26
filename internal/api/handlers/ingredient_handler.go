package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		ReplaceIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator  *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:  validator,
	}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)

	res, err := h.ingredientService.GetIngredients(c.Context(), userID, queryFlag(c, "assigned_only"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredient(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)
	ingredientID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetIngredient, domain.ErrIngredientNotFound)
	}

	res, err := h.ingredientService.GetIngredient(c.Context(), ingredientID, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredient)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *ingredientHandler) ReplaceIngredient(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *ingredientHandler) update(c *fiber.Ctx, partial bool) error {
	userID := userIDFromLocals(c)
	ingredientID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateIngredient, domain.ErrIngredientNotFound)
	}

	req := new(domain.UpdateIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := rejectNulls(c, "name"); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateIngredient, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), ingredientID, *req, partial, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)
	ingredientID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteIngredient, domain.ErrIngredientNotFound)
	}

	if err := h.ingredientService.DeleteIngredient(c.Context(), ingredientID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteIngredient, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
