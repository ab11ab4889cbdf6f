package response

import (
	"time"

	"book-catalog/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	BookTitle string    `json:"book_title,omitempty"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type BookReviewStats struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// Helper converter
func ReviewToResponse(review *entity.BookReview, bookTitle string) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID.String(),
		BookID:    review.BookID.String(),
		BookTitle: bookTitle,
		Content:   review.Content,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}
