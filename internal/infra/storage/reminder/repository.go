package reminder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/psqlbuilder"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

// Срочные наверху, внутри приоритета - по сроку
const orderByUrgency = "CASE r.priority WHEN 'urgent' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, r.due_date ASC, r.due_time ASC NULLS FIRST"

// Исполнитель опционален, поэтому staff для assigned_to подключается через LEFT JOIN
var joinedColumns = []string{
	"r.id",
	"r.title",
	"r.description",
	"r.type",
	"r.priority",
	"r.due_date",
	"r.due_time",
	"r.assigned_to",
	"r.created_by",
	"r.status",
	"r.completed_at",
	"a.first_name || ' ' || a.last_name AS assignee_name",
	"c.first_name || ' ' || c.last_name AS creator_name",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с напоминаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория напоминаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое напоминание
func (r *Repository) Create(ctx context.Context, rem *domain.Reminder) (*domain.Reminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reminders").
		Columns(
			"title",
			"description",
			"type",
			"priority",
			"due_date",
			"due_time",
			"assigned_to",
			"created_by",
			"status",
		).
		Values(
			rem.Title,
			rem.Description,
			rem.Type,
			rem.Priority,
			rem.DueDate,
			rem.DueTime,
			rem.AssignedTo,
			rem.CreatedBy,
			rem.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rem.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rem.CreatedAt = createdAt.Time
	rem.UpdatedAt = updatedAt.Time

	return rem, nil
}

// GetByID получает напоминание по ID вместе с именами исполнителя и автора
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("reminders r").
		LeftJoin("staff a ON a.id = r.assigned_to").
		Join("staff c ON c.id = r.created_by").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rem, err := scanReminder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReminderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reminder: %v", ErrScanRow, err)
	}

	return rem, nil
}

// List получает напоминания с фильтрацией по статусу, приоритету и исполнителю
func (r *Repository) List(ctx context.Context, filter domain.RemindersFilter) ([]*domain.Reminder, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("reminders r").
		LeftJoin("staff a ON a.id = r.assigned_to").
		Join("staff c ON c.id = r.created_by").
		OrderBy(orderByUrgency)

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
	}
	if filter.Priority != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.priority": *filter.Priority})
	}
	if filter.AssignedTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.assigned_to": *filter.AssignedTo})
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

	reminders := make([]*domain.Reminder, 0)
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reminders = append(reminders, rem)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reminders, nil
}

// Update обновляет напоминание целиком
func (r *Repository) Update(ctx context.Context, rem *domain.Reminder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reminders").
		Set("title", rem.Title).
		Set("description", rem.Description).
		Set("type", rem.Type).
		Set("priority", rem.Priority).
		Set("due_date", rem.DueDate).
		Set("due_time", rem.DueTime).
		Set("assigned_to", rem.AssignedTo).
		Set("status", rem.Status).
		Set("completed_at", rem.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rem.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// Complete помечает напоминание выполненным с фиксацией времени.
// Повторный вызов безвреден: строка уже в нужном состоянии.
func (r *Repository) Complete(ctx context.Context, id int64, completedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reminders").
		Set("status", domain.ReminderCompleted).
		Set("completed_at", completedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Complete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Complete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// Delete физически удаляет напоминание
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reminders").
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
		return ErrReminderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (*domain.Reminder, error) {
	var rem domain.Reminder
	var createdAt, updatedAt sql.NullTime
	var dueTime sql.NullString
	var assigneeName sql.NullString

	err := row.Scan(
		&rem.ID,
		&rem.Title,
		&rem.Description,
		&rem.Type,
		&rem.Priority,
		&rem.DueDate,
		&dueTime,
		&rem.AssignedTo,
		&rem.CreatedBy,
		&rem.Status,
		&rem.CompletedAt,
		&assigneeName,
		&rem.CreatorName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if dueTime.Valid {
		ts, err := types.NewTimeStringFromString(dueTime.String)
		if err != nil {
			return nil, err
		}
		rem.DueTime = &ts
	}
	if assigneeName.Valid {
		rem.AssigneeName = &assigneeName.String
	}

	rem.CreatedAt = createdAt.Time
	rem.UpdatedAt = updatedAt.Time

	return &rem, nil
}
