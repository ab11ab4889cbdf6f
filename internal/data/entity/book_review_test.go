package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validReview() *BookReview {
	return &BookReview{
		BaseSimple: BaseSimple{ID: uuid.New()},
		BookID:     uuid.New(),
		Content:    "A gripping read from start to finish.",
		Rating:     4,
	}
}

func TestBookReviewValidate_Valid(t *testing.T) {
	for rating := RatingMin; rating <= RatingMax; rating++ {
		review := validReview()
		review.Rating = rating

		errs := review.Validate()
		assert.Empty(t, errs, "rating %d should be valid", rating)
		assert.True(t, review.IsValid())
	}
}

func TestBookReviewValidate_BlankContent(t *testing.T) {
	review := validReview()
	review.Content = ""

	errs := review.Validate()
	assert.False(t, review.IsValid())
	assert.Equal(t, MsgBlank, errs["content"])
	assert.NotContains(t, errs, "rating")
}

func TestBookReviewValidate_WhitespaceContent(t *testing.T) {
	review := validReview()
	review.Content = "   "

	errs := review.Validate()
	assert.Equal(t, MsgBlank, errs["content"])
}

func TestBookReviewValidate_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, 10, -1} {
		review := validReview()
		review.Rating = rating

		errs := review.Validate()
		assert.False(t, review.IsValid(), "rating %d should be invalid", rating)
		assert.Equal(t, MsgNotIncluded, errs["rating"])
		assert.NotContains(t, errs, "content")
	}
}

func TestBookReviewValidate_BothFieldsInvalid(t *testing.T) {
	review := validReview()
	review.Content = ""
	review.Rating = 0

	// Violations are collected, not short-circuited
	errs := review.Validate()
	assert.Len(t, errs, 2)
	assert.Equal(t, MsgBlank, errs["content"])
	assert.Equal(t, MsgNotIncluded, errs["rating"])
}

func TestBookReviewValidate_RecomputedAfterMutation(t *testing.T) {
	review := validReview()
	review.Content = ""
	review.Rating = 0
	assert.False(t, review.IsValid())

	review.Content = "Excellent!"
	review.Rating = 5

	assert.Equal(t, "Excellent!", review.Content)
	assert.Equal(t, 5, review.Rating)
	assert.Empty(t, review.Validate())
}

func TestBookReviewValidateWithBook(t *testing.T) {
	review := validReview()
	review.BookID = uuid.Nil

	// Not enforced unless the policy is on
	assert.Empty(t, review.ValidateWithBook(false))

	errs := review.ValidateWithBook(true)
	assert.Equal(t, MsgMustExist, errs["book"])

	review.BookID = uuid.New()
	assert.Empty(t, review.ValidateWithBook(true))
}

func TestIsValidRating(t *testing.T) {
	for rating := RatingMin; rating <= RatingMax; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-3))
}
