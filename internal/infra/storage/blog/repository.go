package blog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	"github.com/m04kA/HMA-AdminService/pkg/dbmetrics"
	"github.com/m04kA/HMA-AdminService/pkg/psqlbuilder"
)

// Приоритет важнее даты: срочные объявления всегда наверху
const orderByPriority = "CASE b.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 ELSE 1 END DESC, b.published_at DESC NULLS LAST"

var joinedColumns = []string{
	"b.id",
	"b.title",
	"b.content",
	"b.excerpt",
	"b.author_id",
	"b.category",
	"b.tags",
	"b.status",
	"b.priority",
	"b.published_at",
	"s.first_name || ' ' || s.last_name AS author_name",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с постами внутренних объявлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория постов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый пост
func (r *Repository) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blog_posts").
		Columns(
			"title",
			"content",
			"excerpt",
			"author_id",
			"category",
			"tags",
			"status",
			"priority",
			"published_at",
		).
		Values(
			post.Title,
			post.Content,
			post.Excerpt,
			post.AuthorID,
			post.Category,
			post.Tags,
			post.Status,
			post.Priority,
			post.PublishedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&post.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return post, nil
}

// GetByID получает пост по ID вместе с именем автора
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(joinedColumns...).
		From("blog_posts b").
		Join("staff s ON s.id = b.author_id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	post, err := scanPost(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan post: %v", ErrScanRow, err)
	}

	return post, nil
}

// List получает посты с гибкой фильтрацией.
// Поиск идёт по заголовку, тексту и тегам; фильтры по категории, автору и статусу.
func (r *Repository) List(ctx context.Context, filter domain.BlogFilter) ([]*domain.BlogPost, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(joinedColumns...).
		From("blog_posts b").
		Join("staff s ON s.id = b.author_id").
		OrderBy(orderByPriority)

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"b.title": pattern},
			squirrel.ILike{"b.content": pattern},
			squirrel.ILike{"b.tags::text": pattern},
		})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.category": *filter.Category})
	}
	if filter.Author != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.first_name || ' ' || s.last_name": *filter.Author})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
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

	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return posts, nil
}

// Update обновляет пост целиком, включая published_at
func (r *Repository) Update(ctx context.Context, post *domain.BlogPost) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blog_posts").
		Set("title", post.Title).
		Set("content", post.Content).
		Set("excerpt", post.Excerpt).
		Set("category", post.Category).
		Set("tags", post.Tags).
		Set("status", post.Status).
		Set("priority", post.Priority).
		Set("published_at", post.PublishedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID}).
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
		return ErrPostNotFound
	}

	return nil
}

// Delete физически удаляет пост
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blog_posts").
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
		return ErrPostNotFound
	}

	return nil
}

// Authors возвращает отображаемые имена авторов постов без повторов
func (r *Repository) Authors(ctx context.Context) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT s.first_name || ' ' || s.last_name AS author_name").
		From("blog_posts b").
		Join("staff s ON s.id = b.author_id").
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

func scanPost(row rowScanner) (*domain.BlogPost, error) {
	var post domain.BlogPost
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Excerpt,
		&post.AuthorID,
		&post.Category,
		&post.Tags,
		&post.Status,
		&post.Priority,
		&post.PublishedAt,
		&post.AuthorName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	post.CreatedAt = createdAt.Time
	post.UpdatedAt = updatedAt.Time

	return &post, nil
}
