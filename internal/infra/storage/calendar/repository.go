package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/psqlbuilder"
	"github.com/m04kA/HMA-AdminService/pkg/types"
)

var joinedColumns = []string{
	"e.id",
	"e.title",
	"e.description",
	"e.start_date",
	"e.end_date",
	"e.start_time",
	"e.end_time",
	"e.type",
	"e.location",
	"e.attendees",
	"e.created_by",
	"e.is_all_day",
	"e.color",
	"s.first_name || ' ' || s.last_name AS creator_name",
	"e.created_at",
	"e.updated_at",
}

// Repository репозиторий для работы с событиями общего календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое событие
func (r *Repository) Create(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("calendar_events").
		Columns(
			"title",
			"description",
			"start_date",
			"end_date",
			"start_time",
			"end_time",
			"type",
			"location",
			"attendees",
			"created_by",
			"is_all_day",
			"color",
		).
		Values(
			event.Title,
			event.Description,
			event.StartDate,
			event.EndDate,
			event.StartTime,
			event.EndTime,
			event.Type,
			event.Location,
			event.Attendees,
			event.CreatedBy,
			event.IsAllDay,
			event.Color,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return event, nil
}

// GetByID получает событие по ID вместе с именем создателя
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("calendar_events e").
		Join("staff s ON s.id = e.created_by").
		Where(squirrel.Eq{"e.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	event, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %v", ErrScanRow, err)
	}

	return event, nil
}

// List получает события с фильтрацией по типу, участнику и периоду.
// Сортировка хронологическая, события без времени идут первыми в рамках дня.
func (r *Repository) List(ctx context.Context, filter domain.CalendarFilter) ([]*domain.CalendarEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("calendar_events e").
		Join("staff s ON s.id = e.created_by").
		OrderBy("e.start_date ASC, e.start_time ASC NULLS FIRST")

	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"e.type": *filter.Type})
	}
	if filter.Attendee != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"e.attendees::text": "%" + *filter.Attendee + "%"})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"e.start_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"e.end_date": *filter.EndDate})
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

	events := make([]*domain.CalendarEvent, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return events, nil
}

// Update обновляет событие целиком
func (r *Repository) Update(ctx context.Context, event *domain.CalendarEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("calendar_events").
		Set("title", event.Title).
		Set("description", event.Description).
		Set("start_date", event.StartDate).
		Set("end_date", event.EndDate).
		Set("start_time", event.StartTime).
		Set("end_time", event.EndTime).
		Set("type", event.Type).
		Set("location", event.Location).
		Set("attendees", event.Attendees).
		Set("is_all_day", event.IsAllDay).
		Set("color", event.Color).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": event.ID}).
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
		return ErrEventNotFound
	}

	return nil
}

// Delete физически удаляет событие
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("calendar_events").
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
		return ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	var createdAt, updatedAt sql.NullTime
	var startTime, endTime sql.NullString

	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&startTime,
		&endTime,
		&event.Type,
		&event.Location,
		&event.Attendees,
		&event.CreatedBy,
		&event.IsAllDay,
		&event.Color,
		&event.CreatorName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// TIME-колонки опциональны: для событий на весь день времена NULL
	if startTime.Valid {
		ts, err := types.NewTimeStringFromString(startTime.String)
		if err != nil {
			return nil, err
		}
		event.StartTime = &ts
	}
	if endTime.Valid {
		ts, err := types.NewTimeStringFromString(endTime.String)
		if err != nil {
			return nil, err
		}
		event.EndTime = &ts
	}

	event.CreatedAt = createdAt.Time
	event.UpdatedAt = updatedAt.Time

	return &event, nil
}
