package lead

import (
	"context"
	"testing"
	"time"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) Count(ctx context.Context, f domain.Filter) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLeadRepo) Find(ctx context.Context, f domain.Filter, offset, limit int) ([]domain.Lead, error) {
	args := m.Called(ctx, f, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *mockLeadRepo) Update(ctx context.Context, lead *domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *mockLeadRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockLeadRepo) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func validCreateRequest() CreateLeadRequest {
	return CreateLeadRequest{
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Source:    domain.SourceWebsite,
		Status:    domain.StatusNew,
		Score:     50,
	}
}

func TestCreate_Success(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("ExistsByEmail", mock.Anything, "alice@example.com", "").Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)

	lead, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", lead.Email)
	repo.AssertExpectations(t)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("ExistsByEmail", mock.Anything, "alice@example.com", "").Return(true, nil)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StoreRejectsRacingDuplicate(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("ExistsByEmail", mock.Anything, "alice@example.com", "").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestCreate_ValidationFailures(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	cases := map[string]func(*CreateLeadRequest){
		"missing first name": func(r *CreateLeadRequest) { r.FirstName = "" },
		"missing email":      func(r *CreateLeadRequest) { r.Email = "" },
		"bad source":         func(r *CreateLeadRequest) { r.Source = "carrier_pigeon" },
		"bad status":         func(r *CreateLeadRequest) { r.Status = "unknown" },
		"score too high":     func(r *CreateLeadRequest) { r.Score = 150 },
		"score negative":     func(r *CreateLeadRequest) { r.Score = -1 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validCreateRequest()
			mutate(&req)
			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidData)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestList_Pagination(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)
	f := domain.Filter{}

	repo.On("Count", mock.Anything, f).Return(int64(45), nil)
	repo.On("Find", mock.Anything, f, 20, 20).Return([]domain.Lead{{ID: "x"}}, nil)

	result, err := svc.List(context.Background(), f, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	repo.AssertExpectations(t)
}

func TestList_PageBeyondEndIsEmptyNotError(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)
	f := domain.Filter{}

	repo.On("Count", mock.Anything, f).Return(int64(5), nil)
	repo.On("Find", mock.Anything, f, 180, 20).Return(nil, nil)

	result, err := svc.List(context.Background(), f, 10, 20)
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 1, result.TotalPages)
}

func TestList_CoercesPageAndLimit(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)
	f := domain.Filter{}

	repo.On("Count", mock.Anything, f).Return(int64(0), nil)
	repo.On("Find", mock.Anything, f, 0, 100).Return([]domain.Lead{}, nil)

	result, err := svc.List(context.Background(), f, -3, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 100, result.Limit)
	assert.Equal(t, 0, result.TotalPages)
}

func TestUpdate_PartialMerge(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	existing := &domain.Lead{
		ID:        "lead-1",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Company:   "Acme",
		Source:    domain.SourceWebsite,
		Status:    domain.StatusNew,
		Score:     10,
	}
	repo.On("GetByID", mock.Anything, "lead-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)

	newStatus := domain.StatusContacted
	newScore := 75.0
	lead, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{
		Status: &newStatus,
		Score:  &newScore,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusContacted, lead.Status)
	assert.Equal(t, 75.0, lead.Score)
	// Untouched fields survive the merge
	assert.Equal(t, "Alice", lead.FirstName)
	assert.Equal(t, "Acme", lead.Company)
}

func TestUpdate_RevalidatesMergedRecord(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	existing := &domain.Lead{
		ID:        "lead-1",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Source:    domain.SourceWebsite,
		Status:    domain.StatusNew,
	}
	repo.On("GetByID", mock.Anything, "lead-1").Return(existing, nil)

	bad := 200.0
	_, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{Score: &bad})
	assert.ErrorIs(t, err, ErrInvalidData)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), "missing", UpdateLeadRequest{})
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestUpdate_EmailCollision(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	existing := &domain.Lead{
		ID:        "lead-1",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Source:    domain.SourceWebsite,
		Status:    domain.StatusNew,
	}
	repo.On("GetByID", mock.Anything, "lead-1").Return(existing, nil)
	repo.On("ExistsByEmail", mock.Anything, "bob@example.com", "lead-1").Return(true, nil)

	taken := "bob@example.com"
	_, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestDelete_NotFoundOnSecondCall(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, "gone").Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestUpdate_LastActivityAt(t *testing.T) {
	repo := new(mockLeadRepo)
	svc := NewService(repo)

	existing := &domain.Lead{
		ID:        "lead-1",
		FirstName: "Alice",
		LastName:  "Anderson",
		Email:     "alice@example.com",
		Source:    domain.SourceWebsite,
		Status:    domain.StatusNew,
	}
	repo.On("GetByID", mock.Anything, "lead-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	lead, err := svc.Update(context.Background(), "lead-1", UpdateLeadRequest{LastActivityAt: &at})
	require.NoError(t, err)
	require.NotNil(t, lead.LastActivityAt)
	assert.Equal(t, at, *lead.LastActivityAt)
}
