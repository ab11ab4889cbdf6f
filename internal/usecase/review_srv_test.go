package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"book-catalog/internal/data/entity"
	"book-catalog/internal/dto/request"
	"book-catalog/pkg/utils"
)

func newReviewService(books *mockBookRepository, reviews *mockBookReviewRepository, requireBook bool) ReviewService {
	config := &utils.Config{
		Review: utils.ReviewConfig{RequireBook: requireBook},
	}
	return NewReviewService(newTestRepo(books, reviews), config, zap.NewNop())
}

func TestCreateReview(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	book := testBook()

	books.On("FindByID", mock.Anything, book.ID).Return(book, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.BookReview) bool {
		return r.BookID == book.ID && r.Content == "Excellent!" && r.Rating == 5
	})).Return(nil)

	resp, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		BookID:  book.ID.String(),
		Content: "Excellent!",
		Rating:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, "Excellent!", resp.Content)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, book.ID.String(), resp.BookID)
	assert.Equal(t, book.Title, resp.BookTitle)
	reviews.AssertExpectations(t)
}

func TestCreateReview_BlankContent(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		BookID:  uuid.New().String(),
		Content: "",
		Rating:  3,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "can't be blank")
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	for _, rating := range []int{0, 6, 10} {
		_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
			BookID:  uuid.New().String(),
			Content: "Fine book",
			Rating:  rating,
		})

		require.Error(t, err, "rating %d should fail", rating)
		assert.Contains(t, err.Error(), "is not included in the list")
	}
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_BlankContentAndZeroRating(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		BookID:  uuid.New().String(),
		Content: "",
		Rating:  0,
	})

	// Both violations surface together
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't be blank")
	assert.Contains(t, err.Error(), "is not included in the list")
}

func TestCreateReview_BookNotFound(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	bookID := uuid.New()
	books.On("FindByID", mock.Anything, bookID).Return(nil, nil)

	_, err := svc.CreateReview(context.Background(), &request.CreateReviewRequest{
		BookID:  bookID.String(),
		Content: "Great",
		Rating:  4,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetBookReviews(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	book := testBook()
	list := []*entity.BookReview{
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: book.CreatedAt},
			BookID:     book.ID,
			Content:    "Loved it",
			Rating:     5,
		},
		{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: book.CreatedAt},
			BookID:     book.ID,
			Content:    "Decent",
			Rating:     3,
		},
	}

	reviews.On("FindByBookID", mock.Anything, book.ID, 10, 0).Return(list, nil)
	reviews.On("CountByBookID", mock.Anything, book.ID).Return(int64(2), nil)
	books.On("FindByID", mock.Anything, book.ID).Return(book, nil)

	resp, err := svc.GetBookReviews(context.Background(), book.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, book.Title, resp.Data[0].BookTitle)
}

func TestUpdateReview(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	book := testBook()
	review := &entity.BookReview{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: book.CreatedAt},
		BookID:     book.ID,
		Content:    "Okay",
		Rating:     3,
	}

	newContent := "Excellent!"
	newRating := 5

	reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	reviews.On("Update", mock.Anything, mock.MatchedBy(func(r *entity.BookReview) bool {
		return r.Content == "Excellent!" && r.Rating == 5
	})).Return(nil)
	books.On("FindByID", mock.Anything, book.ID).Return(book, nil)

	resp, err := svc.UpdateReview(context.Background(), review.ID.String(), &request.UpdateReviewRequest{
		Content: &newContent,
		Rating:  &newRating,
	})

	require.NoError(t, err)
	assert.Equal(t, "Excellent!", resp.Content)
	assert.Equal(t, 5, resp.Rating)
	reviews.AssertExpectations(t)
}

func TestUpdateReview_InvalidRating(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	badRating := 7

	_, err := svc.UpdateReview(context.Background(), uuid.New().String(), &request.UpdateReviewRequest{
		Rating: &badRating,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not included in the list")
	reviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteReview(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	review := &entity.BookReview{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		BookID:     uuid.New(),
		Content:    "Meh",
		Rating:     2,
	}

	reviews.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	reviews.On("Delete", mock.Anything, review.ID).Return(nil)

	err := svc.DeleteReview(context.Background(), review.ID.String())
	require.NoError(t, err)
	reviews.AssertExpectations(t)
}

func TestDeleteReview_NotFound(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	id := uuid.New()
	reviews.On("FindByID", mock.Anything, id).Return(nil, nil)

	err := svc.DeleteReview(context.Background(), id.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetBookReviewStats(t *testing.T) {
	books := new(mockBookRepository)
	reviews := new(mockBookReviewRepository)
	svc := newReviewService(books, reviews, false)

	bookID := uuid.New()
	reviews.On("GetBookRatingStats", mock.Anything, bookID).Return(3.5, int64(4), nil)

	stats, err := svc.GetBookReviewStats(context.Background(), bookID.String())
	require.NoError(t, err)
	assert.Equal(t, 3.5, stats.AverageRating)
	assert.Equal(t, int64(4), stats.ReviewCount)
}
