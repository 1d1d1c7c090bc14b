package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	staffService "github.com/m04kA/HMA-AdminService/internal/service/staff"
	"github.com/m04kA/HMA-AdminService/internal/service/staff/models"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные сотрудника"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgNotFound           = "сотрудник не найден"
	msgDuplicateEmail     = "email уже зарегистрирован"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/staff
// Query params: search, type, department, status (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListStaffRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	if staffType := query.Get("type"); staffType != "" {
		req.Type = &staffType
	}
	if department := query.Get("department"); department != "" {
		req.Department = &department
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrInvalidInput):
			h.logger.Warn("GET /staff - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /staff - Failed to list staff: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff - Staff retrieved successfully: count=%d", len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/staff/{staffId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseID(w, r, "GET /staff/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /staff/{id} - Failed to get staff: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /staff/{id} - Staff retrieved successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrDuplicateEmail):
			h.logger.Warn("POST /staff - Duplicate email: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, staffService.ErrInvalidInput):
			h.logger.Warn("POST /staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /staff - Failed to create staff: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff - Staff created successfully: staff_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/staff/{staffId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseID(w, r, "PUT /staff/{id}")
	if !ok {
		return
	}

	var req models.SaveStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), staffID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("PUT /staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staffService.ErrDuplicateEmail):
			h.logger.Warn("PUT /staff/{id} - Duplicate email: staff_id=%d, email=%s", staffID, req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateEmail)

		case errors.Is(err, staffService.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id} - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /staff/{id} - Failed to update staff: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id} - Staff updated successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/staff/{staffId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseID(w, r, "DELETE /staff/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, staffService.ErrStaffNotFound):
			h.logger.Warn("DELETE /staff/{id} - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{id} - Failed to delete staff: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff deleted successfully: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Stats GET /api/v1/staff/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/stats - Failed to get stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/stats - Stats retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Departments GET /api/v1/staff/departments
func (h *Handler) Departments(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Departments(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/departments - Failed to get departments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/departments - Departments retrieved successfully: count=%d", len(result.Departments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid staff ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return 0, false
	}
	return staffID, true
}
