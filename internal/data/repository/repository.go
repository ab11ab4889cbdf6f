package repository

import (
	"book-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Book       BookRepository
	BookReview BookReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Book:       NewBookRepository(db, log),
		BookReview: NewBookReviewRepository(db, log),
	}
}
