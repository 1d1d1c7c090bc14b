package list_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	"github.com/m04kA/HMA-AdminService/internal/service/appointments"
	"github.com/m04kA/HMA-AdminService/internal/service/appointments/models"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgInvalidFilter   = "некорректные параметры фильтрации"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: doctorId, specialty, date (YYYY-MM-DD), status (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{}

	if doctorIDStr := query.Get("doctorId"); doctorIDStr != "" {
		doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid doctor ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)
			return
		}
		req.DoctorID = &doctorID
	}

	if specialty := query.Get("specialty"); specialty != "" {
		req.Specialty = &specialty
	}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
