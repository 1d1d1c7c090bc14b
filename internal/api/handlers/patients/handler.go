package patients

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMA-AdminService/internal/api/handlers"
	patientsService "github.com/m04kA/HMA-AdminService/internal/service/patients"
	"github.com/m04kA/HMA-AdminService/internal/service/patients/models"
)

const (
	msgInvalidPatientID   = "некорректный ID пациента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные пациента"
	msgNotFound           = "пациент не найден"
	msgDuplicateDocument  = "пациент с таким документом уже зарегистрирован"
)

type Handler struct {
	service PatientsService
	logger  Logger
}

func NewHandler(service PatientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/patients
// Query params: search (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	req := &models.ListPatientsRequest{}
	if search := r.URL.Query().Get("search"); search != "" {
		req.Search = &search
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /patients - Failed to list patients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients - Patients retrieved successfully: count=%d", len(result.Patients))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/patients/{patientId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.parseID(w, r, "GET /patients/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), patientID)
	if err != nil {
		switch {
		case errors.Is(err, patientsService.ErrPatientNotFound):
			h.logger.Warn("GET /patients/{id} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /patients/{id} - Failed to get patient: patient_id=%d, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/{id} - Patient retrieved successfully: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/patients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SavePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /patients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, patientsService.ErrDuplicateDocument):
			h.logger.Warn("POST /patients - Duplicate document: document=%s", req.Document)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDocument)

		case errors.Is(err, patientsService.ErrInvalidInput):
			h.logger.Warn("POST /patients - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /patients - Failed to create patient: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /patients - Patient created successfully: patient_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/patients/{patientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.parseID(w, r, "PUT /patients/{id}")
	if !ok {
		return
	}

	var req models.SavePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /patients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, patientsService.ErrPatientNotFound):
			h.logger.Warn("PUT /patients/{id} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, patientsService.ErrDuplicateDocument):
			h.logger.Warn("PUT /patients/{id} - Duplicate document: patient_id=%d, document=%s", patientID, req.Document)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDocument)

		case errors.Is(err, patientsService.ErrInvalidInput):
			h.logger.Warn("PUT /patients/{id} - Invalid input: patient_id=%d, error=%v", patientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /patients/{id} - Failed to update patient: patient_id=%d, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /patients/{id} - Patient updated successfully: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/patients/{patientId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, ok := h.parseID(w, r, "DELETE /patients/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), patientID); err != nil {
		switch {
		case errors.Is(err, patientsService.ErrPatientNotFound):
			h.logger.Warn("DELETE /patients/{id} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /patients/{id} - Failed to delete patient: patient_id=%d, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /patients/{id} - Patient deleted successfully: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, op string) (int64, bool) {
	vars := mux.Vars(r)
	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid patient ID: %v", op, err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return 0, false
	}
	return patientID, true
}
