package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/triviaco/trivia-api/internal/domain"
	"github.com/triviaco/trivia-api/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	triviaService domain.TriviaService
	validate      *validator.Validate
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(triviaService domain.TriviaService) *QuestionHandler {
	return &QuestionHandler{
		triviaService: triviaService,
		validate:      validator.New(),
	}
}

// Register registers the question routes
func (h *QuestionHandler) Register(e *echo.Echo) {
	e.GET("/questions", h.ListQuestions)
	e.DELETE("/questions/:id", h.DeleteQuestion)
	e.POST("/add", h.CreateQuestion)
	e.POST("/questions/search", h.SearchQuestions)
	e.GET("/categories/:id/questions", h.QuestionsByCategory)
	e.POST("/quizzes", h.QuizQuestion)
}

// pageParam reads the 1-based page number from the query string. A
// missing or non-integer value falls back to page 1.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ListQuestions returns one page of questions together with the total
// question count and the category mapping
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	page, err := h.triviaService.ListQuestions(c.Request().Context(), pageParam(c))
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"categories":       page.Categories,
		"current_category": nil,
	})
}

// DeleteQuestion removes a question by id
func (h *QuestionHandler) DeleteQuestion(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	if err := h.triviaService.DeleteQuestion(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  http.StatusOK,
		"success": true,
	})
}

// CreateQuestionRequest represents the request to create a new question.
// Every field is optional: missing fields persist as NULL.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// CreateQuestion persists a new question
func (h *QuestionHandler) CreateQuestion(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	question := domain.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := h.triviaService.CreateQuestion(c.Request().Context(), &question); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"status":  http.StatusOK,
	})
}

// SearchQuestionsRequest represents the request to search questions
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions returns one page of the questions whose text contains
// the search term, case-insensitively. An empty term matches everything.
func (h *QuestionHandler) SearchQuestions(c echo.Context) error {
	var req SearchQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	questions, total, err := h.triviaService.SearchQuestions(c.Request().Context(), req.SearchTerm, pageParam(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"questions":        questions,
		"current_category": nil,
		"total_questions":  total,
	})
}

// QuestionsByCategory returns every question in a category, unpaginated
func (h *QuestionHandler) QuestionsByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	questions, err := h.triviaService.QuestionsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if questions == nil {
		questions = []domain.Question{}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":          true,
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": nil,
	})
}

// QuizCategory identifies the category a quiz round draws from
type QuizCategory struct {
	ID int `json:"id"`
}

// UnmarshalJSON coerces the id to an integer. The trivia frontend sends
// it as a numeric string, other clients as a number; both are accepted.
func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch id := raw.ID.(type) {
	case float64:
		q.ID = int(id)
	case string:
		parsed, err := strconv.Atoi(id)
		if err != nil {
			return fmt.Errorf("invalid category id %q", id)
		}
		q.ID = parsed
	default:
		return errors.New("quiz category requires an id")
	}
	return nil
}

// QuizQuestionRequest represents the request for the next quiz question
type QuizQuestionRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
}

// QuizQuestion picks a random question from the requested category that
// has not been asked yet. A null question means the category is
// exhausted and the quiz is over.
func (h *QuestionHandler) QuizQuestion(c echo.Context) error {
	var req QuizQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}

	if err := h.validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request().Context(), req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"question": question,
	})
}
