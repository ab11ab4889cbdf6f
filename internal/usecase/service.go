package usecase

import (
	"book-catalog/internal/data/repository"
	"book-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Book   BookService
	Review ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Book:   NewBookService(repo, log),
		Review: NewReviewService(repo, config, log),
	}
}
