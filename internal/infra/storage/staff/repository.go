package staff

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
	"email",
	"phone",
	"position",
	"department",
	"specialty",
	"type",
	"status",
	"hire_date",
	"avatar",
	"bio",
	"certifications",
	"keywords",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового сотрудника
func (r *Repository) Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff").
		Columns(
			"first_name",
			"last_name",
			"email",
			"phone",
			"position",
			"department",
			"specialty",
			"type",
			"status",
			"hire_date",
			"avatar",
			"bio",
			"certifications",
			"keywords",
		).
		Values(
			s.FirstName,
			s.LastName,
			s.Email,
			s.Phone,
			s.Position,
			s.Department,
			s.Specialty,
			s.Type,
			s.Status,
			s.HireDate,
			s.Avatar,
			s.Bio,
			s.Certifications,
			s.Keywords,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %v", ErrScanRow, err)
	}

	return s, nil
}

// List получает сотрудников с гибкой фильтрацией.
// Поиск идёт по имени, специальности, отделению и ключевым словам (JSONB).
func (r *Repository) List(ctx context.Context, filter domain.StaffFilter) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("staff").
		OrderBy("first_name ASC, last_name ASC")

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"specialty": pattern},
			squirrel.ILike{"department": pattern},
			squirrel.ILike{"keywords::text": pattern},
		})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Department != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"department": *filter.Department})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
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

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// Update обновляет карточку сотрудника целиком
func (r *Repository) Update(ctx context.Context, s *domain.Staff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("staff").
		Set("first_name", s.FirstName).
		Set("last_name", s.LastName).
		Set("email", s.Email).
		Set("phone", s.Phone).
		Set("position", s.Position).
		Set("department", s.Department).
		Set("specialty", s.Specialty).
		Set("type", s.Type).
		Set("status", s.Status).
		Set("hire_date", s.HireDate).
		Set("avatar", s.Avatar).
		Set("bio", s.Bio).
		Set("certifications", s.Certifications).
		Set("keywords", s.Keywords).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}

// Delete физически удаляет сотрудника
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff").
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
		return ErrStaffNotFound
	}

	return nil
}

// Stats возвращает сводку по персоналу: всего, активных и по ролям
func (r *Repository) Stats(ctx context.Context) (*domain.StaffStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("type", "status", "COUNT(*)").
		From("staff").
		GroupBy("type", "status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Stats - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := &domain.StaffStats{ByType: make(map[domain.StaffType]int64)}
	for rows.Next() {
		var (
			staffType domain.StaffType
			status    domain.StaffStatus
			count     int64
		)
		if err := rows.Scan(&staffType, &status, &count); err != nil {
			return nil, fmt.Errorf("%w: Stats - scan row: %v", ErrScanRow, err)
		}

		stats.Total += count
		stats.ByType[staffType] += count
		if status == domain.StaffActive {
			stats.Active += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Stats - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// Departments возвращает список отделений без повторов
func (r *Repository) Departments(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT department").
		From("staff").
		Where(squirrel.NotEq{"department": ""}).
		OrderBy("department ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Departments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Departments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	departments := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("%w: Departments - scan row: %v", ErrScanRow, err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Departments - rows error: %v", ErrScanRow, err)
	}

	return departments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(row rowScanner) (*domain.Staff, error) {
	var s domain.Staff
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Position,
		&s.Department,
		&s.Specialty,
		&s.Type,
		&s.Status,
		&s.HireDate,
		&s.Avatar,
		&s.Bio,
		&s.Certifications,
		&s.Keywords,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// isUniqueViolation проверяет, является ли ошибка нарушением уникальности (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
