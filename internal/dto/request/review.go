package request

type CreateReviewRequest struct {
	BookID  string `json:"book_id" validate:"required,uuid4"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,oneof=1 2 3 4 5"`
}

type UpdateReviewRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,oneof=1 2 3 4 5"`
}
