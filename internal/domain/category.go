package domain

import "context"

// Category represents a trivia category. Categories are read-only from
// the API's perspective; they are seeded directly in storage.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// GetAll retrieves every stored category
	GetAll(ctx context.Context) ([]Category, error)
}
