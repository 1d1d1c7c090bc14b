package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	appointmentRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/appointment"
	patientRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/patient"
	staffRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/staff"
)

// UseCase use case записи пациента к врачу
type UseCase struct {
	appointmentRepo AppointmentRepository
	patientRepo     PatientRepository
	staffRepo       StaffRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	patientRepo PatientRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		staffRepo:       staffRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет запись пациента к врачу.
// Поиск/создание пациента, проверка занятости слота и вставка записи идут
// в одной сериализуемой транзакции: между проверкой и вставкой не может
// вклиниться конкурирующее бронирование того же слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%d, date=%s, time=%s, document=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat), req.Time, req.Patient.Document)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем врача: существует, активен, принимает пациентов
	doctor, err := uc.staffRepo.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("BookAppointment: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("BookAppointment: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	if err := validateDoctor(doctor); err != nil {
		uc.logger.Warn("BookAppointment: doctor id=%d is not available (type=%s, status=%s)",
			doctor.ID, doctor.Type, doctor.Status)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Ищем пациента по документу; совпадение освежает контактные данные
		patientID, err := uc.resolvePatient(txCtx, req.Patient)
		if err != nil {
			return err
		}

		// 3.2. Проверяем занятость слота по активным записям врача на дату
		takenTimes, err := uc.appointmentRepo.ListActiveTimes(txCtx, req.DoctorID, req.Date.Format(domain.DateFormat))
		if err != nil {
			uc.logger.Error("BookAppointment: failed to list taken slots: %v", err)
			return fmt.Errorf("%w: failed to list taken slots: %v", ErrInternal, err)
		}

		for _, taken := range takenTimes {
			if taken == req.Time {
				uc.logger.Warn("BookAppointment: slot %s at %s is taken for doctor id=%d",
					req.Time, req.Date.Format(domain.DateFormat), req.DoctorID)
				return ErrSlotTaken
			}
		}

		// 3.3. Создаем запись. Уникальный индекс страхует от гонки
		appointment := &domain.Appointment{
			PatientID:       patientID,
			DoctorID:        req.DoctorID,
			AppointmentDate: req.Date,
			AppointmentTime: req.Time,
			Status:          domain.AppointmentConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	// 4. Перечитываем запись с денормализованными данными пациента и врача
	full, err := uc.appointmentRepo.GetByID(ctx, result.ID)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to reload appointment id=%d: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to reload appointment: %v", ErrInternal, err)
	}

	return toResponse(full), nil
}

// resolvePatient находит пациента по документу или создает нового.
// При совпадении документа карточка получает свежие имя и контакты из запроса.
func (uc *UseCase) resolvePatient(ctx context.Context, data PatientData) (int64, error) {
	existing, err := uc.patientRepo.GetByDocument(ctx, data.Document)
	if err != nil && !errors.Is(err, patientRepo.ErrPatientNotFound) {
		uc.logger.Error("BookAppointment: failed to find patient by document: %v", err)
		return 0, fmt.Errorf("%w: failed to find patient: %v", ErrInternal, err)
	}

	if existing != nil {
		if err := uc.patientRepo.UpdateContact(ctx, existing.ID, data.FirstName, data.LastName, data.Phone, data.Email); err != nil {
			uc.logger.Error("BookAppointment: failed to update patient id=%d: %v", existing.ID, err)
			return 0, fmt.Errorf("%w: failed to update patient: %v", ErrInternal, err)
		}
		uc.logger.Info("BookAppointment: reusing patient id=%d", existing.ID)
		return existing.ID, nil
	}

	created, err := uc.patientRepo.Create(ctx, &domain.Patient{
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Document:  data.Document,
		Phone:     data.Phone,
		Email:     data.Email,
	})
	if err != nil {
		uc.logger.Error("BookAppointment: failed to create patient: %v", err)
		return 0, fmt.Errorf("%w: failed to create patient: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: created patient id=%d", created.ID)
	return created.ID, nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:              appt.ID,
		PatientID:       appt.PatientID,
		DoctorID:        appt.DoctorID,
		AppointmentDate: appt.AppointmentDate,
		AppointmentTime: appt.AppointmentTime,
		Status:          string(appt.Status),
		Notes:           appt.Notes,
		PatientName:     appt.PatientFirstName + " " + appt.PatientLastName,
		PatientDocument: appt.PatientDocument,
		PatientPhone:    appt.PatientPhone,
		DoctorName:      appt.DoctorFirstName + " " + appt.DoctorLastName,
		DoctorSpecialty: appt.DoctorSpecialty,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}
