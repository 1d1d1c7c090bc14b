package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	"github.com/m04kA/HMA-AdminService/internal/service/appointments/models"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// Service сервис для работы с записями на приём
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с фильтрацией по врачу, специальности, дате и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, doctor=%v, specialty=%v, date=%v, status=%v",
		req.DoctorID, req.Specialty, req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Update обновляет запись: дату, время, статус и медицинские поля.
// Перенос на занятый слот отклоняется с ErrSlotTaken.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Update: updating appointment id=%d", id)

	fields, err := s.toUpdateFields(req)
	if err != nil {
		s.logger.Warn("Update: invalid input for appointment id=%d: %v", id, err)
		return nil, err
	}

	if err := s.appointmentRepo.Update(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Update: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			s.logger.Warn("Update: target slot is taken for appointment id=%d", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("Update: repository error for appointment id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Update: successfully updated appointment id=%d", id)
	return s.GetByID(ctx, id)
}

// Cancel отменяет запись. Операция идемпотентна: повторная отмена
// уже отменённой записи успешна и ничего не меняет.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.AppointmentCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return s.GetByID(ctx, id)
}

// Delete физически удаляет запись
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// toUpdateFields конвертирует request в параметры обновления с валидацией
func (s *Service) toUpdateFields(req *models.UpdateAppointmentRequest) (appointmentRepo.UpdateFields, error) {
	var fields appointmentRepo.UpdateFields

	if req.AppointmentDate != nil {
		if _, err := time.Parse(domain.DateFormat, *req.AppointmentDate); err != nil {
			return fields, fmt.Errorf("%w: invalid appointmentDate: %v", ErrInvalidInput, err)
		}
		fields.AppointmentDate = req.AppointmentDate
	}

	if req.AppointmentTime != nil {
		ts, err := types.NewTimeStringFromString(*req.AppointmentTime)
		if err != nil {
			return fields, fmt.Errorf("%w: invalid appointmentTime: %v", ErrInvalidInput, err)
		}
		fields.AppointmentTime = &ts
	}

	if req.Status != nil {
		status := domain.AppointmentStatus(*req.Status)
		if !domain.ValidAppointmentStatus(status) {
			return fields, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		fields.Status = &status
	}

	fields.Notes = req.Notes
	fields.Diagnosis = req.Diagnosis
	fields.Treatment = req.Treatment

	return fields, nil
}
