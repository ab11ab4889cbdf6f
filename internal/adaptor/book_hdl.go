package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"book-catalog/internal/dto/request"
	"book-catalog/internal/usecase"
	"book-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookHandler struct {
	service usecase.BookService
	log     *zap.Logger
}

func NewBookHandler(service usecase.BookService, log *zap.Logger) *BookHandler {
	return &BookHandler{
		service: service,
		log:     log.With(zap.String("handler", "book")),
	}
}

// GetBooks handles GET /api/books
func (h *BookHandler) GetBooks(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    request.DefaultPage,
		PerPage: request.DefaultPerPage,
	}

	// Parse query parameters
	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), request.DefaultPage)
	req.PerPage = utils.ParseInt(query.Get("per_page"), request.DefaultPerPage)

	books, err := h.service.GetBooks(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get books")
		return
	}

	utils.ResponseSuccess(w, "success", books)
}

// GetBookByID handles GET /api/books/{id}
func (h *BookHandler) GetBookByID(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	if bookID == "" {
		utils.ResponseBadRequest(w, "Book ID is required", nil)
		return
	}

	book, err := h.service.GetBookByID(r.Context(), bookID)
	if err != nil {
		h.handleServiceError(w, err, "get book")
		return
	}

	utils.ResponseSuccess(w, "success", book)
}

// CreateBook handles POST /api/books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	book, err := h.service.CreateBook(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create book")
		return
	}

	utils.ResponseCreated(w, "success", book)
}

// UpdateBook handles PUT /api/books/{id}
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	if bookID == "" {
		utils.ResponseBadRequest(w, "Book ID is required", nil)
		return
	}

	var req request.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	book, err := h.service.UpdateBook(r.Context(), bookID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update book")
		return
	}

	utils.ResponseSuccess(w, "success", book)
}

// DeleteBook handles DELETE /api/books/{id}; the book's reviews go with it
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	bookID := chi.URLParam(r, "id")
	if bookID == "" {
		utils.ResponseBadRequest(w, "Book ID is required", nil)
		return
	}

	if err := h.service.DeleteBook(r.Context(), bookID); err != nil {
		h.handleServiceError(w, err, "delete book")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError maps service errors for book operations
func (h *BookHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
