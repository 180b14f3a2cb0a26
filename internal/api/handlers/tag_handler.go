package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/tag"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TagHandler interface {
		GetTags(c *fiber.Ctx) error
		GetTag(c *fiber.Ctx) error
		UpdateTag(c *fiber.Ctx) error
		ReplaceTag(c *fiber.Ctx) error
		DeleteTag(c *fiber.Ctx) error
	}

	tagHandler struct {
		tagService tag.TagService
		validator  *validator.Validate
	}
)

func NewTagHandler(tagService tag.TagService, validator *validator.Validate) TagHandler {
	return &tagHandler{
		tagService: tagService,
		validator:  validator,
	}
}

func (h *tagHandler) GetTags(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)

	res, err := h.tagService.GetTags(c.Context(), userID, queryFlag(c, "assigned_only"))
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetTags, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTags)
}

func (h *tagHandler) GetTag(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)
	tagID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetTag, domain.ErrTagNotFound)
	}

	res, err := h.tagService.GetTag(c.Context(), tagID, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedGetTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTag)
}

func (h *tagHandler) UpdateTag(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *tagHandler) ReplaceTag(c *fiber.Ctx) error {
	return h.update(c, false)
}

func (h *tagHandler) update(c *fiber.Ctx, partial bool) error {
	userID := userIDFromLocals(c)
	tagID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateTag, domain.ErrTagNotFound)
	}

	req := new(domain.UpdateTagRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := rejectNulls(c, "name"); err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateTag, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTag, err)
	}

	res, err := h.tagService.UpdateTag(c.Context(), tagID, *req, partial, userID)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedUpdateTag, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTag)
}

func (h *tagHandler) DeleteTag(c *fiber.Ctx) error {
	userID := userIDFromLocals(c)
	tagID, err := paramID(c)
	if err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteTag, domain.ErrTagNotFound)
	}

	if err := h.tagService.DeleteTag(c.Context(), tagID, userID); err != nil {
		return presenters.HandleError(c, domain.MessageFailedDeleteTag, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
