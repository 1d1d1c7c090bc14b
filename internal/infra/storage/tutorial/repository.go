package tutorial

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/psqlbuilder"
)

var joinedColumns = []string{
	"t.id",
	"t.title",
	"t.content",
	"t.category",
	"t.tags",
	"t.author_id",
	"t.difficulty",
	"t.estimated_time",
	"t.steps",
	"t.views",
	"t.rating",
	"t.is_published",
	"t.published_at",
	"s.first_name || ' ' || s.last_name AS author_name",
	"t.created_at",
	"t.updated_at",
}

// Repository репозиторий для работы с обучающими материалами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория материалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый обучающий материал
func (r *Repository) Create(ctx context.Context, t *domain.Tutorial) (*domain.Tutorial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tutorials").
		Columns(
			"title",
			"content",
			"category",
			"tags",
			"author_id",
			"difficulty",
			"estimated_time",
			"steps",
			"is_published",
		).
		Values(
			t.Title,
			t.Content,
			t.Category,
			t.Tags,
			t.AuthorID,
			t.Difficulty,
			t.EstimatedTime,
			t.Steps,
			t.IsPublished,
		).
		Suffix("RETURNING id, views, rating, published_at, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Views,
		&t.Rating,
		&t.PublishedAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает материал по ID вместе с именем автора
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tutorial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("tutorials t").
		Join("staff s ON s.id = t.author_id").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTutorial(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTutorialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tutorial: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает материалы с гибкой фильтрацией.
// Поиск идёт по заголовку, тексту и тегам; приватные материалы скрываются
// при PublishedOnly.
func (r *Repository) List(ctx context.Context, filter domain.TutorialsFilter) ([]*domain.Tutorial, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("tutorials t").
		Join("staff s ON s.id = t.author_id").
		OrderBy("t.published_at DESC")

	if filter.PublishedOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.is_published": true})
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"t.title": pattern},
			squirrel.ILike{"t.content": pattern},
			squirrel.ILike{"t.tags::text": pattern},
		})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.category": *filter.Category})
	}
	if filter.Difficulty != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.difficulty": *filter.Difficulty})
	}
	if filter.Author != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.first_name || ' ' || s.last_name": *filter.Author})
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

	tutorials := make([]*domain.Tutorial, 0)
	for rows.Next() {
		t, err := scanTutorial(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		tutorials = append(tutorials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return tutorials, nil
}

// Update обновляет материал целиком
func (r *Repository) Update(ctx context.Context, t *domain.Tutorial) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tutorials").
		Set("title", t.Title).
		Set("content", t.Content).
		Set("category", t.Category).
		Set("tags", t.Tags).
		Set("difficulty", t.Difficulty).
		Set("estimated_time", t.EstimatedTime).
		Set("steps", t.Steps).
		Set("is_published", t.IsPublished).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": t.ID}).
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
		return ErrTutorialNotFound
	}

	return nil
}

// IncrementViews увеличивает счётчик просмотров на единицу
func (r *Repository) IncrementViews(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tutorials").
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementViews - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementViews - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTutorialNotFound
	}

	return nil
}

// Delete физически удаляет материал
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tutorials").
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
		return ErrTutorialNotFound
	}

	return nil
}

// Authors возвращает отображаемые имена авторов материалов без повторов
func (r *Repository) Authors(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT s.first_name || ' ' || s.last_name AS author_name").
		From("tutorials t").
		Join("staff s ON s.id = t.author_id").
		OrderBy("author_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Authors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Authors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	authors := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: Authors - scan row: %v", ErrScanRow, err)
		}
		authors = append(authors, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Authors - rows error: %v", ErrScanRow, err)
	}

	return authors, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTutorial(row rowScanner) (*domain.Tutorial, error) {
	var t domain.Tutorial
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Content,
		&t.Category,
		&t.Tags,
		&t.AuthorID,
		&t.Difficulty,
		&t.EstimatedTime,
		&t.Steps,
		&t.Views,
		&t.Rating,
		&t.IsPublished,
		&t.PublishedAt,
		&t.AuthorName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
