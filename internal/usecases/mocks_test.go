package usecases_test

import (
	"context"

	"betterside.backend/internal/domain/entities"
	"betterside.backend/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role entities.UserRole) ([]*entities.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock CpProfileRepository
type MockCpProfileRepository struct {
	mock.Mock
}

func (m *MockCpProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CpProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CpProfile), args.Error(1)
}

func (m *MockCpProfileRepository) Create(ctx context.Context, profile *entities.CpProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockCpProfileRepository) Update(ctx context.Context, profile *entities.CpProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByDeveloper(ctx context.Context, developerID uuid.UUID) ([]*entities.Project, error) {
	args := m.Called(ctx, developerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) ListActive(ctx context.Context) ([]*entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock AssignmentRepository
type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Create(ctx context.Context, assignment *entities.CpProjectMap) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CpProjectMap, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CpProjectMap), args.Error(1)
}

func (m *MockAssignmentRepository) GetByCpAndProject(ctx context.Context, cpID, projectID uuid.UUID) (*entities.CpProjectMap, error) {
	args := m.Called(ctx, cpID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CpProjectMap), args.Error(1)
}

func (m *MockAssignmentRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.CpProjectMap, error) {
	args := m.Called(ctx, cpID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CpProjectMap), args.Error(1)
}

func (m *MockAssignmentRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.CpProjectMap, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CpProjectMap), args.Error(1)
}

func (m *MockAssignmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.AssignmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAssignmentRepository) CountDistinctProjectsByCp(ctx context.Context, cpID uuid.UUID) (int64, error) {
	args := m.Called(ctx, cpID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, filter entities.LeadFilter, limit, offset int) ([]*entities.Lead, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) Count(ctx context.Context, filter entities.LeadFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeadRepository) CountByProject(ctx context.Context, projectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockLeadRepository) CountByCpAndProject(ctx context.Context, projectIDs []uuid.UUID) (map[repositories.CpProjectKey]int64, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[repositories.CpProjectKey]int64), args.Error(1)
}

// Mock AdRepository
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Create(ctx context.Context, ad *entities.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ad, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ad), args.Error(1)
}

func (m *MockAdRepository) List(ctx context.Context, filter repositories.AdFilter) ([]*entities.Ad, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ad), args.Error(1)
}

func (m *MockAdRepository) Count(ctx context.Context, filter repositories.AdFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdRepository) Update(ctx context.Context, ad *entities.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) UpdateMetrics(ctx context.Context, id uuid.UUID, metrics *entities.AdMetricsInput) error {
	args := m.Called(ctx, id, metrics)
	return args.Error(0)
}

func (m *MockAdRepository) CpProjectsWithAds(ctx context.Context, projectIDs []uuid.UUID) (map[repositories.CpProjectKey]bool, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[repositories.CpProjectKey]bool), args.Error(1)
}

// Mock MarketingCounterRepository
type MockMarketingCounterRepository struct {
	mock.Mock
}

func (m *MockMarketingCounterRepository) Increment(ctx context.Context, cpID uuid.UUID, projectID *uuid.UUID, creatives, edms int) (*entities.MarketingCounter, error) {
	args := m.Called(ctx, cpID, projectID, creatives, edms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MarketingCounter), args.Error(1)
}

func (m *MockMarketingCounterRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingCounter, error) {
	args := m.Called(ctx, cpID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MarketingCounter), args.Error(1)
}

func (m *MockMarketingCounterRepository) ListByProjects(ctx context.Context, projectIDs []uuid.UUID) ([]*entities.MarketingCounter, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MarketingCounter), args.Error(1)
}

// Mock MarketingRequestRepository
type MockMarketingRequestRepository struct {
	mock.Mock
}

func (m *MockMarketingRequestRepository) Create(ctx context.Context, request *entities.MarketingRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMarketingRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.MarketingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MarketingRequest), args.Error(1)
}

func (m *MockMarketingRequestRepository) ListByCp(ctx context.Context, cpID uuid.UUID) ([]*entities.MarketingRequest, error) {
	args := m.Called(ctx, cpID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MarketingRequest), args.Error(1)
}

func (m *MockMarketingRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.MarketingRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
