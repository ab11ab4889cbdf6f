package wire

import (
	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBook(r chi.Router, bookHandler *adaptor.BookHandler) {
	// GET /api/books - List books with pagination
	r.Get("/api/books", bookHandler.GetBooks)

	// GET /api/books/{id} - Book details with its reviews
	r.Get("/api/books/{id}", bookHandler.GetBookByID)

	// POST /api/books - Create new book
	r.Post("/api/books", bookHandler.CreateBook)

	// PUT /api/books/{id} - Update book
	r.Put("/api/books/{id}", bookHandler.UpdateBook)

	// DELETE /api/books/{id} - Delete book and all its reviews
	r.Delete("/api/books/{id}", bookHandler.DeleteBook)
}
