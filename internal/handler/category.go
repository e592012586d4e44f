package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/triviaco/trivia-api/internal/domain"
	"github.com/triviaco/trivia-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	triviaService domain.TriviaService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(triviaService domain.TriviaService) *CategoryHandler {
	return &CategoryHandler{
		triviaService: triviaService,
	}
}

// Register registers the category routes
func (h *CategoryHandler) Register(e *echo.Echo) {
	e.GET("/categories", h.GetCategories)
}

// GetCategories returns the id-to-name mapping of all categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.triviaService.Categories(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoCategories) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"status":     http.StatusOK,
		"categories": categories,
	})
}
