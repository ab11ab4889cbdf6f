package entity

import (
	"strings"

	"github.com/google/uuid"
)

// Fixed validation messages, keyed by field in Validate results.
const (
	MsgBlank       = "can't be blank"
	MsgNotIncluded = "is not included in the list"
	MsgMustExist   = "must exist"
)

// RatingMin and RatingMax bound the allowed review ratings {1..5}.
const (
	RatingMin = 1
	RatingMax = 5
)

type BookReview struct {
	BaseSimple
	BookID  uuid.UUID `db:"book_id"`
	Content string    `db:"content"`
	Rating  int       `db:"rating"` // 1-5
}

func IsValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}

// Validate checks content and rating. Violations are collected per field, not
// short-circuited, so a blank content and an out-of-range rating are both
// reported at once. A zero (absent) rating reports the inclusion message.
func (r *BookReview) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Content) == "" {
		errs["content"] = MsgBlank
	}
	if !IsValidRating(r.Rating) {
		errs["rating"] = MsgNotIncluded
	}

	return errs
}

// ValidateWithBook additionally requires a book reference when requireBook is
// set. Presence of the owning book is deliberately not part of Validate; it is
// an opt-in policy.
func (r *BookReview) ValidateWithBook(requireBook bool) map[string]string {
	errs := r.Validate()

	if requireBook && r.BookID == uuid.Nil {
		errs["book"] = MsgMustExist
	}

	return errs
}

func (r *BookReview) IsValid() bool {
	return len(r.Validate()) == 0
}
