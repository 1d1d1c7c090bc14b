package tutorials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMA-AdminService/internal/domain"
	tutorialRepo "github.com/m04kA/HMA-AdminService/internal/infra/storage/tutorial"
	"github.com/m04kA/HMA-AdminService/internal/service/tutorials/models"
	"github.com/m04kA/HMA-AdminService/pkg/ptr"
)

var _ TutorialRepository = (*mockTutorialRepo)(nil)

type mockTutorialRepo struct {
	CreateFunc         func(ctx context.Context, tutorial *domain.Tutorial) (*domain.Tutorial, error)
	GetByIDFunc        func(ctx context.Context, id int64) (*domain.Tutorial, error)
	ListFunc           func(ctx context.Context, filter domain.TutorialsFilter) ([]*domain.Tutorial, error)
	UpdateFunc         func(ctx context.Context, tutorial *domain.Tutorial) error
	IncrementViewsFunc func(ctx context.Context, id int64) error
	DeleteFunc         func(ctx context.Context, id int64) error
	AuthorsFunc        func(ctx context.Context) ([]string, error)

	IncrementViewsCalls int
}

func (m *mockTutorialRepo) Create(ctx context.Context, tutorial *domain.Tutorial) (*domain.Tutorial, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tutorial)
	}
	tutorial.ID = 1
	return tutorial, nil
}

func (m *mockTutorialRepo) GetByID(ctx context.Context, id int64) (*domain.Tutorial, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.Tutorial{ID: id, Title: "t"}, nil
}

func (m *mockTutorialRepo) List(ctx context.Context, filter domain.TutorialsFilter) ([]*domain.Tutorial, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTutorialRepo) Update(ctx context.Context, tutorial *domain.Tutorial) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tutorial)
	}
	return nil
}

func (m *mockTutorialRepo) IncrementViews(ctx context.Context, id int64) error {
	m.IncrementViewsCalls++
	if m.IncrementViewsFunc != nil {
		return m.IncrementViewsFunc(ctx, id)
	}
	return nil
}

func (m *mockTutorialRepo) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTutorialRepo) Authors(ctx context.Context) ([]string, error) {
	if m.AuthorsFunc != nil {
		return m.AuthorsFunc(ctx)
	}
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validSaveRequest() *models.SaveTutorialRequest {
	return &models.SaveTutorialRequest{
		Title:    "Регистрация пациента в системе",
		Content:  "Пошаговая инструкция по оформлению нового пациента.",
		Category: string(domain.TutorialSoftware),
		AuthorID: 3,
		Steps:    []string{"Открыть карточку", "Заполнить данные", "Сохранить"},
	}
}

func TestView_IncrementsAndReturns(t *testing.T) {
	views := int64(41)
	repo := &mockTutorialRepo{
		IncrementViewsFunc: func(ctx context.Context, id int64) error {
			views++
			return nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Tutorial, error) {
			return &domain.Tutorial{ID: id, Title: "t", Views: views}, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.View(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.IncrementViewsCalls)
	assert.Equal(t, int64(42), resp.Views)
}

func TestView_NotFound(t *testing.T) {
	repo := &mockTutorialRepo{
		IncrementViewsFunc: func(ctx context.Context, id int64) error {
			return tutorialRepo.ErrTutorialNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.View(context.Background(), 404)
	assert.ErrorIs(t, err, ErrTutorialNotFound)
}

func TestList_AlwaysPublishedOnly(t *testing.T) {
	var gotFilter domain.TutorialsFilter
	repo := &mockTutorialRepo{
		ListFunc: func(ctx context.Context, filter domain.TutorialsFilter) ([]*domain.Tutorial, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListTutorialsRequest{
		Category: ptr.Ptr(string(domain.TutorialSoftware)),
	})
	require.NoError(t, err)

	assert.True(t, gotFilter.PublishedOnly)
	require.NotNil(t, gotFilter.Category)
	assert.Equal(t, domain.TutorialSoftware, *gotFilter.Category)
}

func TestList_InvalidDifficulty(t *testing.T) {
	svc := NewService(&mockTutorialRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListTutorialsRequest{
		Difficulty: ptr.Ptr("expert"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_DefaultsApplied(t *testing.T) {
	var created *domain.Tutorial
	repo := &mockTutorialRepo{
		CreateFunc: func(ctx context.Context, tutorial *domain.Tutorial) (*domain.Tutorial, error) {
			created = tutorial
			tutorial.ID = 10
			return tutorial, nil
		},
		GetByIDFunc: func(ctx context.Context, id int64) (*domain.Tutorial, error) {
			return created, nil
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validSaveRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.DifficultyBeginner, created.Difficulty)
	assert.Equal(t, domain.DefaultTutorialETA, created.EstimatedTime)
	assert.True(t, created.IsPublished)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockTutorialRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.SaveTutorialRequest)
	}{
		{"empty title", func(r *models.SaveTutorialRequest) { r.Title = "" }},
		{"empty content", func(r *models.SaveTutorialRequest) { r.Content = "" }},
		{"zero author", func(r *models.SaveTutorialRequest) { r.AuthorID = 0 }},
		{"bad category", func(r *models.SaveTutorialRequest) { r.Category = "memes" }},
		{"bad difficulty", func(r *models.SaveTutorialRequest) { r.Difficulty = "expert" }},
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

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockTutorialRepo{
		UpdateFunc: func(ctx context.Context, tutorial *domain.Tutorial) error {
			return tutorialRepo.ErrTutorialNotFound
		},
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Update(context.Background(), 404, validSaveRequest())
	assert.ErrorIs(t, err, ErrTutorialNotFound)
}
