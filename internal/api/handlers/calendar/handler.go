package calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	"github.com/m04kA/HMA-AdminService/internal/api/middleware"
	calendarService "github.com/m04kA/HMA-AdminService/internal/service/calendar"
	"github.com/m04kA/HMA-AdminService/internal/service/calendar/models"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные события"
	msgInvalidFilter      = "некорректные параметры фильтрации"
	msgNotFound           = "событие не найдено"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/calendar
// Query params: type, attendee, startDate, endDate (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListEventsRequest{}

	if eventType := query.Get("type"); eventType != "" {
		req.Type = &eventType
	}
	if attendee := query.Get("attendee"); attendee != "" {
		req.Attendee = &attendee
	}
	if startDate := query.Get("startDate"); startDate != "" {
		req.StartDate = &startDate
	}
	if endDate := query.Get("endDate"); endDate != "" {
		req.EndDate = &endDate
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /calendar - Failed to list events: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Events retrieved successfully: count=%d", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/calendar/{eventId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.parseID(w, r, "GET /calendar/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrEventNotFound):
			h.logger.Warn("GET /calendar/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /calendar/{id} - Failed to get event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{id} - Event retrieved successfully: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/calendar
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SaveEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar - Invalid request body: %v", err)
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
		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("POST /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /calendar - Failed to create event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar - Event created successfully: event_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/calendar/{eventId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.parseID(w, r, "PUT /calendar/{id}")
	if !ok {
		return
	}

	var req models.SaveEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, calendarService.ErrEventNotFound):
			h.logger.Warn("PUT /calendar/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("PUT /calendar/{id} - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /calendar/{id} - Failed to update event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/{id} - Event updated successfully: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/calendar/{eventId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID, ok := h.parseID(w, r, "DELETE /calendar/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, calendarService.ErrEventNotFound):
			h.logger.Warn("DELETE /calendar/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /calendar/{id} - Failed to delete event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /calendar/{id} - Event deleted successfully: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid event ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return 0, false
	}
	return eventID, true
}
