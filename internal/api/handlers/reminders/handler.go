package reminders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	"github.com/m04kA/HMA-AdminService/internal/api/middleware"
	remindersService "github.com/m04kA/HMA-AdminService/internal/service/reminders"
	"github.com/m04kA/HMA-AdminService/internal/service/reminders/models"
)

const (
	msgInvalidReminderID  = "некорректный ID напоминания"
	msgInvalidAssigneeID  = "некорректный ID исполнителя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные напоминания"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgNotFound           = "напоминание не найдено"
)

type Handler struct {
	service RemindersService
	logger  Logger
}

func NewHandler(service RemindersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/reminders
// Query params: status, priority, assignedTo (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListRemindersRequest{}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if priority := query.Get("priority"); priority != "" {
		req.Priority = &priority
	}
	if assignedToStr := query.Get("assignedTo"); assignedToStr != "" {
		assignedTo, err := strconv.ParseInt(assignedToStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reminders - Invalid assignee ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAssigneeID)
			return
		}
		req.AssignedTo = &assignedTo
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, remindersService.ErrInvalidInput):
			h.logger.Warn("GET /reminders - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reminders - Failed to list reminders: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reminders - Reminders retrieved successfully: count=%d", len(result.Reminders))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/reminders/{reminderId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	reminderID, ok := h.parseID(w, r, "GET /reminders/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), reminderID)
	if err != nil {
		switch {
		case errors.Is(err, remindersService.ErrReminderNotFound):
			h.logger.Warn("GET /reminders/{id} - Reminder not found: reminder_id=%d", reminderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /reminders/{id} - Failed to get reminder: reminder_id=%d, error=%v", reminderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reminders/{id} - Reminder retrieved successfully: reminder_id=%d", reminderID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/reminders
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reminders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создатель по умолчанию - авторизованный сотрудник
	if req.CreatedBy == 0 {
		if userID, ok := middleware.GetUserID(r.Context()); ok {
			req.CreatedBy = userID
		}
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, remindersService.ErrInvalidInput):
			h.logger.Warn("POST /reminders - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reminders - Failed to create reminder: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reminders - Reminder created successfully: reminder_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/reminders/{reminderId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	reminderID, ok := h.parseID(w, r, "PUT /reminders/{id}")
	if !ok {
		return
	}

	var req models.SaveReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reminders/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), reminderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, remindersService.ErrReminderNotFound):
			h.logger.Warn("PUT /reminders/{id} - Reminder not found: reminder_id=%d", reminderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, remindersService.ErrInvalidInput):
			h.logger.Warn("PUT /reminders/{id} - Invalid input: reminder_id=%d, error=%v", reminderID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reminders/{id} - Failed to update reminder: reminder_id=%d, error=%v", reminderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reminders/{id} - Reminder updated successfully: reminder_id=%d", reminderID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Complete PATCH /api/v1/reminders/{reminderId}/complete
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	reminderID, ok := h.parseID(w, r, "PATCH /reminders/{id}/complete")
	if !ok {
		return
	}

	result, err := h.service.Complete(r.Context(), reminderID)
	if err != nil {
		switch {
		case errors.Is(err, remindersService.ErrReminderNotFound):
			h.logger.Warn("PATCH /reminders/{id}/complete - Reminder not found: reminder_id=%d", reminderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /reminders/{id}/complete - Failed to complete reminder: reminder_id=%d, error=%v",
				reminderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reminders/{id}/complete - Reminder completed successfully: reminder_id=%d", reminderID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/reminders/{reminderId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reminderID, ok := h.parseID(w, r, "DELETE /reminders/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), reminderID); err != nil {
		switch {
		case errors.Is(err, remindersService.ErrReminderNotFound):
			h.logger.Warn("DELETE /reminders/{id} - Reminder not found: reminder_id=%d", reminderID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reminders/{id} - Failed to delete reminder: reminder_id=%d, error=%v", reminderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reminders/{id} - Reminder deleted successfully: reminder_id=%d", reminderID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	reminderID, err := strconv.ParseInt(vars["reminderId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid reminder ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidReminderID)
		return 0, false
	}
	return reminderID, true
}
