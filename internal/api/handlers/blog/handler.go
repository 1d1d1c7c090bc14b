package blog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	"github.com/m04kA/HMA-AdminService/internal/api/middleware"
	blogService "github.com/m04kA/HMA-AdminService/internal/service/blog"
	"github.com/m04kA/HMA-AdminService/internal/service/blog/models"
)

const (
	msgInvalidPostID      = "некорректный ID поста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные поста"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgNotFound           = "пост не найден"
)

type Handler struct {
	service BlogService
	logger  Logger
}

func NewHandler(service BlogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/blog
// Query params: search, category, author, status (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListPostsRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	if category := query.Get("category"); category != "" {
		req.Category = &category
	}
	if author := query.Get("author"); author != "" {
		req.Author = &author
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("GET /blog - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /blog - Failed to list posts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blog - Posts retrieved successfully: count=%d", len(result.Posts))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/blog/{postId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.parseID(w, r, "GET /blog/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("GET /blog/{id} - Post not found: post_id=%d", postID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /blog/{id} - Failed to get post: post_id=%d, error=%v", postID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blog/{id} - Post retrieved successfully: post_id=%d", postID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/blog
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SavePostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blog - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Автор по умолчанию - авторизованный сотрудник
	if req.AuthorID == 0 {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			req.AuthorID = userID
		}
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("POST /blog - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /blog - Failed to create post: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blog - Post created successfully: post_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/blog/{postId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.parseID(w, r, "PUT /blog/{id}")
	if !ok {
		return
	}

	var req models.SavePostRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blog/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("PUT /blog/{id} - Post not found: post_id=%d", postID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, blogService.ErrInvalidInput):
			h.logger.Warn("PUT /blog/{id} - Invalid input: post_id=%d, error=%v", postID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /blog/{id} - Failed to update post: post_id=%d, error=%v", postID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /blog/{id} - Post updated successfully: post_id=%d", postID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/blog/{postId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.parseID(w, r, "DELETE /blog/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), postID); err != nil {
		switch {
		case errors.Is(err, blogService.ErrPostNotFound):
			h.logger.Warn("DELETE /blog/{id} - Post not found: post_id=%d", postID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blog/{id} - Failed to delete post: post_id=%d, error=%v", postID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blog/{id} - Post deleted successfully: post_id=%d", postID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Authors GET /api/v1/blog/authors
func (h *Handler) Authors(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Authors(r.Context())
	if err != nil {
		h.logger.Error("GET /blog/authors - Failed to get authors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blog/authors - Authors retrieved successfully: count=%d", len(result.Authors))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	postID, err := strconv.ParseInt(vars["postId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid post ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidPostID)
		return 0, false
	}
	return postID, true
}
