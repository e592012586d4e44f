package domain

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// QuestionRepository defines the interface for question-related operations
type QuestionRepository interface {
	// GetAll retrieves every stored question ordered by id
	GetAll(ctx context.Context) ([]Question, error)

	// GetByID retrieves a question by its primary key
	GetByID(ctx context.Context, id int) (*Question, error)

	// Create persists a new question and fills in its generated id
	Create(ctx context.Context, question *Question) error

	// Delete removes a question by id
	Delete(ctx context.Context, id int) error

	// Search retrieves questions whose text contains the term,
	// case-insensitively
	Search(ctx context.Context, term string) ([]Question, error)

	// GetByCategory retrieves all questions in a category
	GetByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// CountByCategory counts the questions in a category
	CountByCategory(ctx context.Context, categoryID int) (int, error)

	// GetByCategoryExcluding retrieves the questions in a category whose
	// ids are not in exclude
	GetByCategoryExcluding(ctx context.Context, categoryID int, exclude []int) ([]Question, error)
}

// Question represents a trivia question. Every field except the id is
// nullable: creation is lenient and missing fields persist as NULL.
type Question struct {
	ID         int     `json:"id"`
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}
