package wire

import (
	"book-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/books/{id}/reviews - Reviews of a book
	r.Get("/api/books/{id}/reviews", reviewHandler.GetBookReviews)

	// GET /api/books/{id}/review-stats - Rating statistics of a book
	r.Get("/api/books/{id}/review-stats", reviewHandler.GetBookReviewStats)

	// POST /api/reviews - Create new review
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// PUT /api/reviews/{id} - Update review
	r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

	// DELETE /api/reviews/{id} - Delete review
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
}
