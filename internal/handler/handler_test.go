package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/triviaco/trivia-api/internal/domain"
)

// stubTriviaService is a canned domain.TriviaService for handler tests
type stubTriviaService struct {
	categories    map[int]string
	categoriesErr error

	page     *domain.QuestionPage
	listPage int
	listErr  error

	created   []domain.Question
	createErr error

	deleted   []int
	deleteErr error

	searchTerm    string
	searchPage    int
	searchResult  []domain.Question
	searchTotal   int
	searchErr     error

	byCategoryID  int
	byCategory    []domain.Question
	byCategoryErr error

	quizCategoryID int
	quizPrevious   []int
	quizQuestion   *domain.Question
	quizErr        error
}

func (s *stubTriviaService) Categories(ctx context.Context) (map[int]string, error) {
	return s.categories, s.categoriesErr
}

func (s *stubTriviaService) ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error) {
	s.listPage = page
	return s.page, s.listErr
}

func (s *stubTriviaService) CreateQuestion(ctx context.Context, question *domain.Question) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, *question)
	return nil
}

func (s *stubTriviaService) DeleteQuestion(ctx context.Context, id int) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTriviaService) SearchQuestions(ctx context.Context, term string, page int) ([]domain.Question, int, error) {
	s.searchTerm = term
	s.searchPage = page
	return s.searchResult, s.searchTotal, s.searchErr
}

func (s *stubTriviaService) QuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	s.byCategoryID = categoryID
	return s.byCategory, s.byCategoryErr
}

func (s *stubTriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	s.quizCategoryID = categoryID
	s.quizPrevious = previous
	return s.quizQuestion, s.quizErr
}

// newTestServer wires the handlers the same way cmd/api does
func newTestServer(svc domain.TriviaService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	NewQuestionHandler(svc).Register(e)
	NewCategoryHandler(svc).Register(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func requireErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, code int, message string) {
	t.Helper()
	require.Equal(t, code, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, false, body["success"])
	require.Equal(t, float64(code), body["error"])
	require.Equal(t, message, body["message"])
}
