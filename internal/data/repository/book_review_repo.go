package repository

import (
	"context"
	"fmt"

	"book-catalog/internal/data/entity"
	"book-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookReviewRepository interface {
	Create(ctx context.Context, review *entity.BookReview) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BookReview, error)
	FindByBookID(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]*entity.BookReview, error)
	CountByBookID(ctx context.Context, bookID uuid.UUID) (int64, error)
	Update(ctx context.Context, review *entity.BookReview) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetBookRatingStats(ctx context.Context, bookID uuid.UUID) (float64, int64, error) // avg rating, count
}

type bookReviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookReviewRepository(db database.PgxIface, log *zap.Logger) BookReviewRepository {
	return &bookReviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "book_review")),
	}
}

func (r *bookReviewRepository) Create(ctx context.Context, review *entity.BookReview) error {
	query := `
		INSERT INTO book_reviews (id, book_id, content, rating, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.BookID,
		review.Content,
		review.Rating,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("book_id", review.BookID.String()),
		)
		return fmt.Errorf("create review for book %s: %w", review.BookID.String(), err)
	}

	return nil
}

func (r *bookReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BookReview, error) {
	query := `
		SELECT id, book_id, content, rating, created_at
		FROM book_reviews
		WHERE id = $1
	`

	var review entity.BookReview
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.BookID,
		&review.Content,
		&review.Rating,
		&review.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *bookReviewRepository) FindByBookID(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]*entity.BookReview, error) {
	query := `
		SELECT id, book_id, content, rating, created_at
		FROM book_reviews
		WHERE book_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, bookID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by book ID",
			zap.Error(err),
			zap.String("book_id", bookID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by book ID %s: %w", bookID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.BookReview
	for rows.Next() {
		var review entity.BookReview
		err := rows.Scan(
			&review.ID,
			&review.BookID,
			&review.Content,
			&review.Rating,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

func (r *bookReviewRepository) CountByBookID(ctx context.Context, bookID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM book_reviews WHERE book_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, bookID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by book ID",
			zap.Error(err),
			zap.String("book_id", bookID.String()),
		)
		return 0, fmt.Errorf("count reviews by book ID %s: %w", bookID.String(), err)
	}

	return count, nil
}

func (r *bookReviewRepository) Update(ctx context.Context, review *entity.BookReview) error {
	query := `
		UPDATE book_reviews
		SET content = $2, rating = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Content,
		review.Rating,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *bookReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM book_reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *bookReviewRepository) GetBookRatingStats(ctx context.Context, bookID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0) as avg_rating,
			COUNT(*) as review_count
		FROM book_reviews
		WHERE book_id = $1
	`

	var avgRating float64
	var reviewCount int64
	err := r.db.QueryRow(ctx, query, bookID).Scan(&avgRating, &reviewCount)
	if err != nil {
		r.log.Error("Failed to get book rating stats",
			zap.Error(err),
			zap.String("book_id", bookID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for book %s: %w", bookID.String(), err)
	}

	return avgRating, reviewCount, nil
}
