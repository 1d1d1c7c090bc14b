package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	getTimeSlots "github.com/m04kA/HMA-AdminService/internal/usecase/get_time_slots"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDoctorNotFound  = "врач не найден"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorIDStr := vars["doctorId"]
	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/slots - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{id}/slots - Missing date: doctor_id=%d", doctorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(doctorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/slots - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/slots - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /doctors/{id}/slots - Failed to get slots: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /doctors/{id}/slots - Slots retrieved successfully: doctor_id=%d, date=%s, slots_count=%d",
		doctorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
