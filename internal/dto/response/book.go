package response

import (
	"time"

	"book-catalog/internal/data/entity"
)

type BookResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookDetailResponse struct {
	BookResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// Helper converter
func BookToResponse(book *entity.Book, avgRating float64, reviewCount int64) BookResponse {
	return BookResponse{
		ID:            book.ID.String(),
		Title:         book.Title,
		Author:        book.Author,
		AverageRating: avgRating,
		ReviewCount:   reviewCount,
		CreatedAt:     book.CreatedAt,
		UpdatedAt:     book.UpdatedAt,
	}
}
