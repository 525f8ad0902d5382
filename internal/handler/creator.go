package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5"

	"github.com/red326/media-client-management/internal/middleware"
	"github.com/red326/media-client-management/internal/service"
)

type CreatorHandler struct {
	svc *service.CreatorService
}

func NewCreatorHandler(svc *service.CreatorService) *CreatorHandler {
	return &CreatorHandler{svc: svc}
}

// List handles GET /api/creators
func (h *CreatorHandler) List(c fiber.Ctx) error {
	creators, err := h.svc.List(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list creators")
	}
	return c.JSON(creators)
}

// Get handles GET /api/creators/:id
func (h *CreatorHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateID(c.Params("id"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	creator, err := h.svc.Lookup(c.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Creator not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to lookup creator")
	}

	return c.JSON(creator)
}

// Categories handles GET /api/creators/categories
func (h *CreatorHandler) Categories(c fiber.Ctx) error {
	categories, err := h.svc.Categories(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list categories")
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}
