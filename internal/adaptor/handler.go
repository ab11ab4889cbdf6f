package adaptor

import (
	"book-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Book   *BookHandler
	Review *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Book:   NewBookHandler(service.Book, log),
		Review: NewReviewHandler(service.Review, log),
	}
}
