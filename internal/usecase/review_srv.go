package usecase

import (
	"context"
	"fmt"
	"time"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/data/repository"
	"book-catalog/internal/dto/request"
	"book-catalog/internal/dto/response"
	"book-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetBookReviews(ctx context.Context, bookID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID string) error

	// Stats
	GetBookReviewStats(ctx context.Context, bookID string) (*response.BookReviewStats, error)
}

type reviewService struct {
	repo        *repository.Repository
	requireBook bool
	log         *zap.Logger
}

func NewReviewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:        repo,
		requireBook: config.Review.RequireBook,
		log:         log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book ID format %s: %w", req.BookID, err)
	}

	// Check if book exists
	book, err := s.repo.Book.FindByID(ctx, bookID)
	if err != nil {
		s.log.Error("Failed to check book", zap.Error(err))
		return nil, fmt.Errorf("check book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", req.BookID)
	}

	now := time.Now()
	review := &entity.BookReview{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		BookID:  bookID,
		Content: req.Content,
		Rating:  req.Rating,
	}

	if errs := review.ValidateWithBook(s.requireBook); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.repo.BookReview.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("book_id", req.BookID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("book_id", req.BookID),
		zap.Int("rating", req.Rating),
	)

	reviewResp := response.ReviewToResponse(review, book.Title)
	return &reviewResp, nil
}

func (s *reviewService) GetBookReviews(ctx context.Context, bookID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	bookUUID, err := uuid.Parse(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book ID format %s: %w", bookID, err)
	}

	limit := req.Limit()
	offset := req.Offset()

	reviews, err := s.repo.BookReview.FindByBookID(ctx, bookUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get book reviews",
			zap.Error(err),
			zap.String("book_id", bookID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get book reviews: %w", err)
	}

	total, err := s.repo.BookReview.CountByBookID(ctx, bookUUID)
	if err != nil {
		s.log.Error("Failed to count book reviews", zap.Error(err))
		return nil, fmt.Errorf("count book reviews: %w", err)
	}

	// Book title for the responses
	book, _ := s.repo.Book.FindByID(ctx, bookUUID)
	bookTitle := ""
	if book != nil {
		bookTitle = book.Title
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, bookTitle)
	}

	s.log.Info("Book reviews retrieved",
		zap.String("book_id", bookID),
		zap.Int("count", len(reviews)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.PerPage, total), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.BookReview.FindByID(ctx, reviewUUID)
	if err != nil || review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	updated := false

	if req.Content != nil && *req.Content != review.Content {
		review.Content = *req.Content
		updated = true
	}

	if req.Rating != nil && *req.Rating != review.Rating {
		review.Rating = *req.Rating
		updated = true
	}

	if updated {
		if errs := review.Validate(); len(errs) > 0 {
			s.log.Warn("Update review validation failed", zap.Any("errors", errs))
			return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
		}

		if err := s.repo.BookReview.Update(ctx, review); err != nil {
			s.log.Error("Failed to update review",
				zap.Error(err),
				zap.String("review_id", reviewID),
			)
			return nil, fmt.Errorf("update review: %w", err)
		}
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.Bool("was_updated", updated),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.BookReview.FindByID(ctx, reviewUUID)
	if err != nil || review == nil {
		return fmt.Errorf("review %s not found", reviewID)
	}

	if err := s.repo.BookReview.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("book_id", review.BookID.String()),
	)

	return nil
}

func (s *reviewService) GetBookReviewStats(ctx context.Context, bookID string) (*response.BookReviewStats, error) {
	bookUUID, err := uuid.Parse(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book ID format %s: %w", bookID, err)
	}

	avgRating, reviewCount, err := s.repo.BookReview.GetBookRatingStats(ctx, bookUUID)
	if err != nil {
		s.log.Error("Failed to get book review stats",
			zap.Error(err),
			zap.String("book_id", bookID),
		)
		return nil, fmt.Errorf("get book review stats: %w", err)
	}

	return &response.BookReviewStats{
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.BookReview) *response.ReviewResponse {
	book, _ := s.repo.Book.FindByID(ctx, review.BookID)
	bookTitle := ""
	if book != nil {
		bookTitle = book.Title
	}

	reviewResp := response.ReviewToResponse(review, bookTitle)
	return &reviewResp
}
