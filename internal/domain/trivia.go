package domain

import "context"

// QuestionPage is the result of a paginated question listing.
type QuestionPage struct {
	Questions  []Question
	Total      int
	Categories map[int]string
}

// TriviaService defines the interface for trivia-related operations
type TriviaService interface {
	// Categories returns the id-to-name mapping of every stored category.
	// Returns ErrCategoryNotFound when the store holds no categories.
	Categories(ctx context.Context) (map[int]string, error)

	// ListQuestions returns the requested page of questions together with
	// the full question count and the category mapping. Returns
	// ErrQuestionNotFound when the store holds no questions.
	ListQuestions(ctx context.Context, page int) (*QuestionPage, error)

	// CreateQuestion persists a new question
	CreateQuestion(ctx context.Context, question *Question) error

	// DeleteQuestion removes a question by id. Returns
	// ErrQuestionNotFound when no such question exists.
	DeleteQuestion(ctx context.Context, id int) error

	// SearchQuestions returns the requested page of questions whose text
	// contains term, plus the total match count
	SearchQuestions(ctx context.Context, term string, page int) ([]Question, int, error)

	// QuestionsByCategory returns every question in a category,
	// unpaginated
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)

	// NextQuizQuestion picks a random question from a category that is
	// not among the previously asked ids. A nil question means the
	// category is exhausted.
	NextQuizQuestion(ctx context.Context, categoryID int, previous []int) (*Question, error)
}
