package blog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	postRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/blog"
	"github.com/m04kA/HMA-AdminService/internal/service/blog/models"
	"github.com/m04kA/HMA-AdminService/pkg/ptr"
)

var _ PostRepository = (*mockPostRepo)(nil)

type mockPostRepo struct {
	CreateFunc  func(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.BlogPost, error)
	ListFunc    func(ctx context.Context, filter domain.BlogFilter) ([]*domain.BlogPost, error)
	UpdateFunc  func(ctx context.Context, post *domain.BlogPost) error
	DeleteFunc  func(ctx context.Context, id int64) error
	AuthorsFunc func(ctx context.Context) ([]string, error)
}

func (m *mockPostRepo) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	post.ID = 1
	return post, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.BlogPost, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.BlogPost{ID: id, Title: "t", Status: domain.BlogDraft}, nil
}

func (m *mockPostRepo) List(ctx context.Context, filter domain.BlogFilter) ([]*domain.BlogPost, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) Authors(ctx context.Context) ([]string, error) {
	if m.AuthorsFunc != nil {
		return m.AuthorsFunc(ctx)
	}
	return nil, nil
}

var _ TimeProvider = (*fakeTimeProvider)(nil)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *mockPostRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fakeTimeProvider{now: now}
	return svc
}

func validSaveRequest() *models.SavePostRequest {
	return &models.SavePostRequest{
		Title:    "Новый график работы регистратуры",
		Content:  "С понедельника регистратура работает с 07:30.",
		Excerpt:  "Регистратура открывается раньше.",
		AuthorID: 3,
		Category: string(domain.BlogAnnouncement),
		Tags:     []string{"регистратура"},
		Status:   string(domain.BlogPublished),
	}
}

func TestCreate_PublishedGetsPublishedAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	var created *domain.BlogPost
	repo := &mockPostRepo{
		CreateFunc: func(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
			created = post
			post.ID = 10
			return post, nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.BlogPost, error) {
			return created, nil
		},
	}
	svc := newTestService(repo, now)

	resp, err := svc.Create(context.Background(), validSaveRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, now, *resp.PublishedAt)
	assert.Equal(t, string(domain.BlogPublished), resp.Status)
}

func TestCreate_DraftHasNoPublishedAt(t *testing.T) {
	var created *domain.BlogPost
	repo := &mockPostRepo{
		CreateFunc: func(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
			created = post
			post.ID = 10
			return post, nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.BlogPost, error) {
			return created, nil
		},
	}
	svc := newTestService(repo, time.Now())

	req := validSaveRequest()
	req.Status = string(domain.BlogDraft)

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.PublishedAt)
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(&mockPostRepo{}, time.Now())

	tests := []struct {
		name   string
		mutate func(r *models.SavePostRequest)
	}{
		{"empty title", func(r *models.SavePostRequest) { r.Title = "" }},
		{"empty content", func(r *models.SavePostRequest) { r.Content = "" }},
		{"empty excerpt", func(r *models.SavePostRequest) { r.Excerpt = "" }},
		{"zero author", func(r *models.SavePostRequest) { r.AuthorID = 0 }},
		{"bad category", func(r *models.SavePostRequest) { r.Category = "gossip" }},
		{"bad status", func(r *models.SavePostRequest) { r.Status = "archived" }},
		{"bad priority", func(r *models.SavePostRequest) { r.Priority = "urgent" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSaveRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_DraftToPublishedSetsPublishedAt(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)

	var updated *domain.BlogPost
	repo := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.BlogPost, error) {
			if updated != nil {
				return updated, nil
			}
			return &domain.BlogPost{ID: id, Status: domain.BlogDraft}, nil
		},
		UpdateFunc: func(ctx context.Context, post *domain.BlogPost) error {
			updated = post
			return nil
		},
	}
	svc := newTestService(repo, now)

	resp, err := svc.Update(context.Background(), 10, validSaveRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, now, *resp.PublishedAt)
}

func TestUpdate_AlreadyPublishedKeepsPublishedAt(t *testing.T) {
	originalPublishedAt := time.Date(2026, 8, 20, 15, 0, 0, 0, time.UTC)

	var updated *domain.BlogPost
	repo := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.BlogPost, error) {
			if updated != nil {
				return updated, nil
			}
			return &domain.BlogPost{
				ID:          id,
				Status:      domain.BlogPublished,
				PublishedAt: &originalPublishedAt,
			}, nil
		},
		UpdateFunc: func(ctx context.Context, post *domain.BlogPost) error {
			updated = post
			return nil
		},
	}
	svc := newTestService(repo, time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC))

	resp, err := svc.Update(context.Background(), 10, validSaveRequest())
	require.NoError(t, err)

	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, originalPublishedAt, *resp.PublishedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockPostRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.BlogPost, error) {
			return nil, postRepo.ErrPostNotFound
		},
	}
	svc := newTestService(repo, time.Now())

	_, err := svc.Update(context.Background(), 404, validSaveRequest())
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestList_StatusAllMeansNoFilter(t *testing.T) {
	var gotFilter domain.BlogFilter
	repo := &mockPostRepo{
		ListFunc: func(ctx context.Context, filter domain.BlogFilter) ([]*domain.BlogPost, error) {
			gotFilter = filter
			return []*domain.BlogPost{{ID: 1, Title: "t"}}, nil
		},
	}
	svc := newTestService(repo, time.Now())

	resp, err := svc.List(context.Background(), &models.ListPostsRequest{
		Search: ptr.Ptr("график"),
		Status: ptr.Ptr("all"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Posts, 1)
	assert.Nil(t, gotFilter.Status)
	require.NotNil(t, gotFilter.Search)
	assert.Equal(t, "график", *gotFilter.Search)
}

func TestList_InvalidCategory(t *testing.T) {
	svc := newTestService(&mockPostRepo{}, time.Now())

	_, err := svc.List(context.Background(), &models.ListPostsRequest{
		Category: ptr.Ptr("gossip"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockPostRepo{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return postRepo.ErrPostNotFound
		},
	}
	svc := newTestService(repo, time.Now())

	err := svc.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAuthors(t *testing.T) {
	repo := &mockPostRepo{
		AuthorsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"Анна Смирнова", "Пётр Иванов"}, nil
		},
	}
	svc := newTestService(repo, time.Now())

	resp, err := svc.Authors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Анна Смирнова", "Пётр Иванов"}, resp.Authors)
}
