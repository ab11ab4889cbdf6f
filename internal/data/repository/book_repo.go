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

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes the book and every review that references it, in one
	// transaction. Returns the number of reviews removed alongside the book.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type bookRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookRepository(db database.PgxIface, log *zap.Logger) BookRepository {
	return &bookRepository{
		db:  db,
		log: log.With(zap.String("repository", "book")),
	}
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	query := `
		INSERT INTO books (id, title, author, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.CreatedAt,
		book.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create book",
			zap.Error(err),
			zap.String("title", book.Title),
		)
		return fmt.Errorf("create book %q: %w", book.Title, err)
	}

	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	query := `
		SELECT id, title, author, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book entity.Book
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find book by ID",
			zap.Error(err),
			zap.String("book_id", id.String()),
		)
		return nil, fmt.Errorf("find book by ID %s: %w", id.String(), err)
	}

	return &book, nil
}

func (r *bookRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Book, error) {
	query := `
		SELECT id, title, author, created_at, updated_at
		FROM books
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find books",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer rows.Close()

	var books []*entity.Book
	for rows.Next() {
		var book entity.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan book row", zap.Error(err))
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, &book)
	}

	return books, nil
}

func (r *bookRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM books`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count books", zap.Error(err))
		return 0, fmt.Errorf("count books: %w", err)
	}

	return count, nil
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		book.ID,
		book.Title,
		book.Author,
		book.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update book",
			zap.Error(err),
			zap.String("book_id", book.ID.String()),
		)
		return fmt.Errorf("update book %s: %w", book.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("book %s not found", book.ID.String())
	}

	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction",
			zap.Error(err),
			zap.String("book_id", id.String()),
		)
		return 0, fmt.Errorf("begin delete book %s: %w", id.String(), err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Reviews go first so the book never leaves orphans behind. Zero reviews
	// is fine.
	reviews, err := tx.Exec(ctx, `DELETE FROM book_reviews WHERE book_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reviews of book",
			zap.Error(err),
			zap.String("book_id", id.String()),
		)
		return 0, fmt.Errorf("delete reviews of book %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete book",
			zap.Error(err),
			zap.String("book_id", id.String()),
		)
		return 0, fmt.Errorf("delete book %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("book %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete transaction",
			zap.Error(err),
			zap.String("book_id", id.String()),
		)
		return 0, fmt.Errorf("commit delete book %s: %w", id.String(), err)
	}

	r.log.Info("Book deleted",
		zap.String("book_id", id.String()),
		zap.Int64("reviews_deleted", reviews.RowsAffected()),
	)

	return reviews.RowsAffected(), nil
}
