package service

import "errors"

// Common service errors
var (
	ErrNoCategories = errors.New("no categories found")
	ErrNoQuestions  = errors.New("no questions found")
)
