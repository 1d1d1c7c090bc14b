package patient

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
)

const pgUniqueViolation = "23505"

var columns = []string{
	"id",
	"first_name",
	"last_name",
	"document",
	"phone",
	"email",
	"birth_date",
	"address",
	"emergency_contact",
	"emergency_phone",
	"medical_history",
	"allergies",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пациентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пациентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пациента
func (r *Repository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("patients").
		Columns(
			"first_name",
			"last_name",
			"document",
			"phone",
			"email",
			"birth_date",
			"address",
			"emergency_contact",
			"emergency_phone",
			"medical_history",
			"allergies",
		).
		Values(
			p.FirstName,
			p.LastName,
			p.Document,
			p.Phone,
			p.Email,
			p.BirthDate,
			p.Address,
			p.EmergencyContact,
			p.EmergencyPhone,
			p.MedicalHistory,
			p.Allergies,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateDocument
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает пациента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Patient, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByDocument получает пациента по номеру документа.
// Внутри транзакции добавляет FOR UPDATE: при бронировании найденный пациент
// сразу блокируется перед обновлением контактных данных.
func (r *Repository) GetByDocument(ctx context.Context, document string) (*domain.Patient, error) {
	return r.getOne(ctx, squirrel.Eq{"document": document}, "GetByDocument")
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, method string) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("patients").
		Where(pred)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	p, err := scanPatient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan patient: %v", ErrScanRow, method, err)
	}

	return p, nil
}

// List получает пациентов с поиском по имени/документу/телефону/email
func (r *Repository) List(ctx context.Context, filter domain.PatientsFilter) ([]*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("patients").
		OrderBy("first_name ASC, last_name ASC")

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"document": pattern},
			squirrel.ILike{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
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

	patients := make([]*domain.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		patients = append(patients, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return patients, nil
}

// Update обновляет карточку пациента целиком
func (r *Repository) Update(ctx context.Context, p *domain.Patient) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("first_name", p.FirstName).
		Set("last_name", p.LastName).
		Set("document", p.Document).
		Set("phone", p.Phone).
		Set("email", p.Email).
		Set("birth_date", p.BirthDate).
		Set("address", p.Address).
		Set("emergency_contact", p.EmergencyContact).
		Set("emergency_phone", p.EmergencyPhone).
		Set("medical_history", p.MedicalHistory).
		Set("allergies", p.Allergies).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrDuplicateDocument
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// UpdateContact обновляет имя и контактные данные пациента.
// Используется при бронировании: совпадение по документу освежает карточку.
func (r *Repository) UpdateContact(ctx context.Context, id int64, firstName, lastName, phone string, email *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("patients").
		Set("first_name", firstName).
		Set("last_name", lastName).
		Set("phone", phone).
		Set("email", email).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateContact - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateContact - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// Delete физически удаляет пациента (каскадно удаляет его записи)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("patients").
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
		return ErrPatientNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*domain.Patient, error) {
	var p domain.Patient
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Document,
		&p.Phone,
		&p.Email,
		&p.BirthDate,
		&p.Address,
		&p.EmergencyContact,
		&p.EmergencyPhone,
		&p.MedicalHistory,
		&p.Allergies,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
