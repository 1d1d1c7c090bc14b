package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	bookAppointment "github.com/m04kA/HMA-AdminService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgDoctorNotFound     = "врач не найден"
	msgDoctorNotAvailable = "сотрудник не принимает пациентов"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: doctor_id=%d, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookAppointment.ErrDoctorNotAvailable):
			h.logger.Warn("POST /appointments - Doctor not available: doctor_id=%d", req.DoctorID)
			handlers.RespondBadRequest(w, msgDoctorNotAvailable)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to book appointment: doctor_id=%d, error=%v",
				req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment booked successfully: appointment_id=%d, patient_id=%d, doctor_id=%d",
		result.ID, result.PatientID, result.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
