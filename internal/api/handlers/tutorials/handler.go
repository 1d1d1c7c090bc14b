package tutorials

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	tutorialsService "github.com/m04kA/HMA-AdminService/internal/service/tutorials"
	"github.com/m04kA/HMA-AdminService/internal/service/tutorials/models"
)

const (
	msgInvalidTutorialID  = "некорректный ID материала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные материала"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgNotFound           = "материал не найден"
)

type Handler struct {
	service TutorialsService
	logger  Logger
}

func NewHandler(service TutorialsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/tutorials
// Query params: search, category, difficulty, author (опционально).
// Возвращает только опубликованные материалы.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListTutorialsRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	if category := query.Get("category"); category != "" {
		req.Category = &category
	}
	if difficulty := query.Get("difficulty"); difficulty != "" {
		req.Difficulty = &difficulty
	}
	if author := query.Get("author"); author != "" {
		req.Author = &author
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrInvalidInput):
			h.logger.Warn("GET /tutorials - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /tutorials - Failed to list tutorials: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tutorials - Tutorials retrieved successfully: count=%d", len(result.Tutorials))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/tutorials/{tutorialId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	tutorialID, ok := h.parseID(w, r, "GET /tutorials/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), tutorialID)
	if err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrTutorialNotFound):
			h.logger.Warn("GET /tutorials/{id} - Tutorial not found: tutorial_id=%d", tutorialID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /tutorials/{id} - Failed to get tutorial: tutorial_id=%d, error=%v", tutorialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tutorials/{id} - Tutorial retrieved successfully: tutorial_id=%d", tutorialID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/tutorials
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveTutorialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tutorials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrInvalidInput):
			h.logger.Warn("POST /tutorials - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /tutorials - Failed to create tutorial: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tutorials - Tutorial created successfully: tutorial_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/tutorials/{tutorialId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	tutorialID, ok := h.parseID(w, r, "PUT /tutorials/{id}")
	if !ok {
		return
	}

	var req models.SaveTutorialRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tutorials/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tutorialID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrTutorialNotFound):
			h.logger.Warn("PUT /tutorials/{id} - Tutorial not found: tutorial_id=%d", tutorialID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tutorialsService.ErrInvalidInput):
			h.logger.Warn("PUT /tutorials/{id} - Invalid input: tutorial_id=%d, error=%v", tutorialID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /tutorials/{id} - Failed to update tutorial: tutorial_id=%d, error=%v", tutorialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tutorials/{id} - Tutorial updated successfully: tutorial_id=%d", tutorialID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// View POST /api/v1/tutorials/{tutorialId}/view
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	tutorialID, ok := h.parseID(w, r, "POST /tutorials/{id}/view")
	if !ok {
		return
	}

	result, err := h.service.View(r.Context(), tutorialID)
	if err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrTutorialNotFound):
			h.logger.Warn("POST /tutorials/{id}/view - Tutorial not found: tutorial_id=%d", tutorialID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /tutorials/{id}/view - Failed to register view: tutorial_id=%d, error=%v",
				tutorialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tutorials/{id}/view - View registered successfully: tutorial_id=%d, views=%d",
		tutorialID, result.Views)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/tutorials/{tutorialId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	tutorialID, ok := h.parseID(w, r, "DELETE /tutorials/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), tutorialID); err != nil {
		switch {
		case errors.Is(err, tutorialsService.ErrTutorialNotFound):
			h.logger.Warn("DELETE /tutorials/{id} - Tutorial not found: tutorial_id=%d", tutorialID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tutorials/{id} - Failed to delete tutorial: tutorial_id=%d, error=%v",
				tutorialID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tutorials/{id} - Tutorial deleted successfully: tutorial_id=%d", tutorialID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Authors GET /api/v1/tutorials/authors
func (h *Handler) Authors(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Authors(r.Context())
	if err != nil {
		h.logger.Error("GET /tutorials/authors - Failed to get authors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tutorials/authors - Authors retrieved successfully: count=%d", len(result.Authors))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	tutorialID, err := strconv.ParseInt(vars["tutorialId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid tutorial ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidTutorialID)
		return 0, false
	}
	return tutorialID, true
}
