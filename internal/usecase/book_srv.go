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

type BookService interface {
	GetBooks(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookResponse], error)
	GetBookByID(ctx context.Context, bookID string) (*response.BookDetailResponse, error)
	CreateBook(ctx context.Context, req *request.CreateBookRequest) (*response.BookResponse, error)
	UpdateBook(ctx context.Context, bookID string, req *request.UpdateBookRequest) (*response.BookResponse, error)
	DeleteBook(ctx context.Context, bookID string) error
}

type bookService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookService(repo *repository.Repository, log *zap.Logger) BookService {
	return &bookService{
		repo: repo,
		log:  log.With(zap.String("service", "book")),
	}
}

func (s *bookService) GetBooks(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	books, err := s.repo.Book.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get books",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get books: %w", err)
	}

	total, err := s.repo.Book.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count books", zap.Error(err))
		return nil, fmt.Errorf("count books: %w", err)
	}

	bookResponses := make([]response.BookResponse, len(books))
	for i, book := range books {
		avgRating, reviewCount, err := s.repo.BookReview.GetBookRatingStats(ctx, book.ID)
		if err != nil {
			// Log error but continue; stats stay zero
			s.log.Warn("Failed to get rating stats for book",
				zap.Error(err),
				zap.String("book_id", book.ID.String()),
			)
		}

		bookResponses[i] = response.BookToResponse(book, avgRating, reviewCount)
	}

	s.log.Info("Books retrieved",
		zap.Int("count", len(books)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(bookResponses, req.Page, req.PerPage, total), nil
}

func (s *bookService) GetBookByID(ctx context.Context, bookID string) (*response.BookDetailResponse, error) {
	bookUUID, err := uuid.Parse(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book ID format %s: %w", bookID, err)
	}

	book, err := s.repo.Book.FindByID(ctx, bookUUID)
	if err != nil {
		s.log.Error("Failed to get book",
			zap.Error(err),
			zap.String("book_id", bookID),
		)
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookID)
	}

	avgRating, reviewCount, err := s.repo.BookReview.GetBookRatingStats(ctx, bookUUID)
	if err != nil {
		s.log.Warn("Failed to get rating stats for book",
			zap.Error(err),
			zap.String("book_id", bookID),
		)
	}

	// Recent reviews for the detail view
	reviews, err := s.repo.BookReview.FindByBookID(ctx, bookUUID, 10, 0)
	if err != nil {
		s.log.Warn("Failed to get reviews for book",
			zap.Error(err),
			zap.String("book_id", bookID),
		)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = response.ReviewToResponse(review, book.Title)
	}

	return &response.BookDetailResponse{
		BookResponse: response.BookToResponse(book, avgRating, reviewCount),
		Reviews:      reviewResponses,
	}, nil
}

func (s *bookService) CreateBook(ctx context.Context, req *request.CreateBookRequest) (*response.BookResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create book validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	book := &entity.Book{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:  req.Title,
		Author: req.Author,
	}

	// Entity-level validation catches whitespace-only fields the tag check
	// lets through
	if errs := book.Validate(); len(errs) > 0 {
		s.log.Warn("Create book validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := s.repo.Book.Create(ctx, book); err != nil {
		s.log.Error("Failed to create book",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.Info("Book created",
		zap.String("book_id", book.ID.String()),
		zap.String("title", book.Title),
		zap.String("author", book.Author),
	)

	bookResp := response.BookToResponse(book, 0, 0)
	return &bookResp, nil
}

func (s *bookService) UpdateBook(ctx context.Context, bookID string, req *request.UpdateBookRequest) (*response.BookResponse, error) {
	bookUUID, err := uuid.Parse(bookID)
	if err != nil {
		return nil, fmt.Errorf("invalid book ID format %s: %w", bookID, err)
	}

	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update book validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	book, err := s.repo.Book.FindByID(ctx, bookUUID)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, fmt.Errorf("book %s not found", bookID)
	}

	updated := false

	if req.Title != nil && *req.Title != book.Title {
		book.Title = *req.Title
		updated = true
	}

	if req.Author != nil && *req.Author != book.Author {
		book.Author = *req.Author
		updated = true
	}

	if updated {
		if errs := book.Validate(); len(errs) > 0 {
			s.log.Warn("Update book validation failed", zap.Any("errors", errs))
			return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
		}

		book.UpdatedAt = time.Now()
		if err := s.repo.Book.Update(ctx, book); err != nil {
			s.log.Error("Failed to update book",
				zap.Error(err),
				zap.String("book_id", bookID),
			)
			return nil, fmt.Errorf("update book: %w", err)
		}
	}

	avgRating, reviewCount, _ := s.repo.BookReview.GetBookRatingStats(ctx, bookUUID)

	s.log.Info("Book updated",
		zap.String("book_id", bookID),
		zap.Bool("was_updated", updated),
	)

	bookResp := response.BookToResponse(book, avgRating, reviewCount)
	return &bookResp, nil
}

func (s *bookService) DeleteBook(ctx context.Context, bookID string) error {
	bookUUID, err := uuid.Parse(bookID)
	if err != nil {
		return fmt.Errorf("invalid book ID format %s: %w", bookID, err)
	}

	book, err := s.repo.Book.FindByID(ctx, bookUUID)
	if err != nil {
		return fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return fmt.Errorf("book %s not found", bookID)
	}

	// Cascades to the book's reviews inside the repository transaction
	reviewsDeleted, err := s.repo.Book.Delete(ctx, bookUUID)
	if err != nil {
		s.log.Error("Failed to delete book",
			zap.Error(err),
			zap.String("book_id", bookID),
		)
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.Info("Book deleted",
		zap.String("book_id", bookID),
		zap.String("title", book.Title),
		zap.Int64("reviews_deleted", reviewsDeleted),
	)

	return nil
}
