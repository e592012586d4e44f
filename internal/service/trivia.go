package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/triviaco/trivia-api/internal/domain"
	"github.com/triviaco/trivia-api/internal/pagination"
)

// TriviaService implements the domain.TriviaService interface
type TriviaService struct {
	questionRepo domain.QuestionRepository
	categoryRepo domain.CategoryRepository
}

// NewTriviaService creates a new trivia service
func NewTriviaService(questionRepo domain.QuestionRepository, categoryRepo domain.CategoryRepository) *TriviaService {
	return &TriviaService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// Categories returns the id-to-name mapping of every stored category
func (s *TriviaService) Categories(ctx context.Context) (map[int]string, error) {
	mapping, err := s.categoryMapping(ctx)
	if err != nil {
		return nil, err
	}
	if len(mapping) == 0 {
		return nil, ErrNoCategories
	}
	return mapping, nil
}

func (s *TriviaService) categoryMapping(ctx context.Context) (map[int]string, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	mapping := make(map[int]string, len(categories))
	for _, category := range categories {
		mapping[category.ID] = category.Type
	}
	return mapping, nil
}

// ListQuestions returns one page of questions, the total question count
// and the full category mapping
func (s *TriviaService) ListQuestions(ctx context.Context, page int) (*domain.QuestionPage, error) {
	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	// An empty category table is not an error here; only the categories
	// endpoint treats it as one
	categories, err := s.categoryMapping(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.QuestionPage{
		Questions:  pagination.Slice(questions, page),
		Total:      len(questions),
		Categories: categories,
	}, nil
}

// CreateQuestion persists a new question
func (s *TriviaService) CreateQuestion(ctx context.Context, question *domain.Question) error {
	return s.questionRepo.Create(ctx, question)
}

// DeleteQuestion removes a question by id. The question is looked up
// first so a miss surfaces as ErrQuestionNotFound before the delete.
func (s *TriviaService) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := s.questionRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.questionRepo.Delete(ctx, id)
}

// SearchQuestions returns one page of the questions matching term plus
// the total match count. An empty term matches everything.
func (s *TriviaService) SearchQuestions(ctx context.Context, term string, page int) ([]domain.Question, int, error) {
	matches, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search questions: %w", err)
	}

	return pagination.Slice(matches, page), len(matches), nil
}

// QuestionsByCategory returns every question in a category, unpaginated
func (s *TriviaService) QuestionsByCategory(ctx context.Context, categoryID int) ([]domain.Question, error) {
	questions, err := s.questionRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}

// NextQuizQuestion picks a random question from a category that is not
// among the previously asked ids. A nil question with a nil error means
// the category is exhausted.
//
// Exhaustion is detected by comparing the previous-question count with
// the category's question count, matching the established client
// contract. Since previous ids are client-supplied and unvalidated, the
// candidate set can still come up empty; that case is guarded and also
// reported as exhaustion.
func (s *TriviaService) NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*domain.Question, error) {
	count, err := s.questionRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions for category %d: %w", categoryID, err)
	}
	if len(previous) == count {
		return nil, nil
	}

	candidates, err := s.questionRepo.GetByCategoryExcluding(ctx, categoryID, previous)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	question := candidates[rand.Intn(len(candidates))]
	return &question, nil
}
