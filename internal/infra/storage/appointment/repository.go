package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/psqlbuilder"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

const pgUniqueViolation = "23505"

// Колонки JOIN-выборки записи вместе с данными пациента и врача
var joinedColumns = []string{
	"a.id",
	"a.patient_id",
	"a.doctor_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.status",
	"a.notes",
	"a.diagnosis",
	"a.treatment",
	"p.first_name",
	"p.last_name",
	"p.document",
	"p.phone",
	"s.first_name",
	"s.last_name",
	"s.specialty",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на приём.
// Если в контексте передана активная транзакция, использует её - это
// обязательный режим при бронировании, где вставка идёт вместе с проверкой
// занятости слота и созданием/обновлением пациента.
// Частичный уникальный индекс (doctor_id, date, time) WHERE status <> 'cancelled'
// страхует от гонки: нарушение транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"doctor_id",
			"appointment_date",
			"appointment_time",
			"status",
			"notes",
		).
		Values(
			appt.PatientID,
			appt.DoctorID,
			appt.AppointmentDate,
			appt.AppointmentTime,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID вместе с данными пациента и врача
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("appointments a").
		Join("patients p ON p.id = a.patient_id").
		Join("staff s ON s.id = a.doctor_id").
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// List получает записи на приём с гибкой фильтрацией.
// Фильтры - по врачу, подстроке специальности, дате и статусу; все опциональны.
// Сортировка: сначала новые (дата DESC, время DESC).
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("appointments a").
		Join("patients p ON p.id = a.patient_id").
		Join("staff s ON s.id = a.doctor_id").
		OrderBy("a.appointment_date DESC, a.appointment_time DESC")

	if filter.DoctorID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.doctor_id": *filter.DoctorID})
	}
	if filter.Specialty != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"s.specialty": "%" + *filter.Specialty + "%"})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.appointment_date": *filter.Date})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListActiveTimes возвращает времена неотменённых записей врача на дату.
// Используется для построения сетки слотов и проверки занятости.
// Внутри транзакции добавляет FOR UPDATE, чтобы конкурирующее бронирование
// того же дня ждало завершения текущего.
func (r *Repository) ListActiveTimes(ctx context.Context, doctorID int64, date string) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("appointment_time").
		From("appointments").
		Where(squirrel.Eq{"doctor_id": doctorID}).
		Where(squirrel.Eq{"appointment_date": date}).
		Where(squirrel.NotEq{"status": domain.AppointmentCancelled}).
		OrderBy("appointment_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListActiveTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateFields параметры обновления записи (nil - поле не трогаем)
type UpdateFields struct {
	AppointmentDate *string
	AppointmentTime *types.TimeString
	Status          *domain.AppointmentStatus
	Notes           *string
	Diagnosis       *string
	Treatment       *string
}

// Update обновляет поля записи на приём.
// Перенос на занятый слот нарушает уникальный индекс и даёт ErrSlotTaken.
func (r *Repository) Update(ctx context.Context, id int64, fields UpdateFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.AppointmentDate != nil {
		updateBuilder = updateBuilder.Set("appointment_date", *fields.AppointmentDate)
	}
	if fields.AppointmentTime != nil {
		updateBuilder = updateBuilder.Set("appointment_time", *fields.AppointmentTime)
	}
	if fields.Status != nil {
		updateBuilder = updateBuilder.Set("status", *fields.Status)
	}
	if fields.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *fields.Notes)
	}
	if fields.Diagnosis != nil {
		updateBuilder = updateBuilder.Set("diagnosis", *fields.Diagnosis)
	}
	if fields.Treatment != nil {
		updateBuilder = updateBuilder.Set("treatment", *fields.Treatment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete физически удаляет запись на приём
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.PatientID,
		&appt.DoctorID,
		&appt.AppointmentDate,
		&appt.AppointmentTime,
		&appt.Status,
		&appt.Notes,
		&appt.Diagnosis,
		&appt.Treatment,
		&appt.PatientFirstName,
		&appt.PatientLastName,
		&appt.PatientDocument,
		&appt.PatientPhone,
		&appt.DoctorFirstName,
		&appt.DoctorLastName,
		&appt.DoctorSpecialty,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
