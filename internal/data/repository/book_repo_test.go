package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"book-catalog/internal/data/entity"
	"book-catalog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func setupBookRepo(t *testing.T) (BookRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	repo := NewBookRepository(mock, zap.NewNop())
	return repo, mock
}

func sampleBook() *entity.Book {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &entity.Book{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:  "Snow Country",
		Author: "Yasunari Kawabata",
	}
}

func bookColumns() []string {
	return []string{"id", "title", "author", "created_at", "updated_at"}
}

func bookRow(b *entity.Book) *pgxmock.Rows {
	return pgxmock.NewRows(bookColumns()).
		AddRow(b.ID, b.Title, b.Author, b.CreatedAt, b.UpdatedAt)
}

func TestBookRepository_Create(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	book := sampleBook()

	mock.ExpectExec("INSERT INTO books").
		WithArgs(book.ID, book.Title, book.Author, book.CreatedAt, book.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), book)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create_Error(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	book := sampleBook()

	mock.ExpectExec("INSERT INTO books").
		WithArgs(book.ID, book.Title, book.Author, book.CreatedAt, book.UpdatedAt).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), book)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create book")
}

func TestBookRepository_FindByID(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	book := sampleBook()

	mock.ExpectQuery("SELECT .+ FROM books").
		WithArgs(book.ID).
		WillReturnRows(bookRow(book))

	found, err := repo.FindByID(context.Background(), book.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, book.Title, found.Title)
	assert.Equal(t, book.Author, found.Author)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM books").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestBookRepository_FindAll(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	first := sampleBook()
	second := sampleBook()
	second.Title = "Kokoro"
	second.Author = "Natsume Soseki"

	rows := pgxmock.NewRows(bookColumns()).
		AddRow(first.ID, first.Title, first.Author, first.CreatedAt, first.UpdatedAt).
		AddRow(second.ID, second.Title, second.Author, second.CreatedAt, second.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM books").
		WithArgs(10, 0).
		WillReturnRows(rows)

	books, err := repo.FindAll(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Snow Country", books[0].Title)
	assert.Equal(t, "Kokoro", books[1].Title)
}

func TestBookRepository_Update_NotFound(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	book := sampleBook()

	mock.ExpectExec("UPDATE books").
		WithArgs(book.ID, book.Title, book.Author, book.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), book)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestBookRepository_Delete_CascadesReviews(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM book_reviews WHERE book_id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM books WHERE id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	reviewsDeleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reviewsDeleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Delete_NoReviews(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	id := uuid.New()

	// Zero owned reviews is not an error
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM book_reviews WHERE book_id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM books WHERE id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	reviewsDeleted, err := repo.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), reviewsDeleted)
}

func TestBookRepository_Delete_NotFound(t *testing.T) {
	repo, mock := setupBookRepo(t)
	defer mock.Close()

	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM book_reviews WHERE book_id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM books WHERE id =").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
