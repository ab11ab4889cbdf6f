package request

type CreateBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

type UpdateBookRequest struct {
	Title  *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Author *string `json:"author,omitempty" validate:"omitempty,min=1"`
}
