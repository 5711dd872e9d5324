package usecases_test

import (
	"context"
	"testing"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"betterside.backend/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
)

type cpPanelFixture struct {
	leadRepo       *MockLeadRepository
	adRepo         *MockAdRepository
	assignmentRepo *MockAssignmentRepository
	profileRepo    *MockCpProfileRepository
	uc             *usecases.CpPanelUsecase
}

func newCpPanelFixture() *cpPanelFixture {
	f := &cpPanelFixture{
		leadRepo:       new(MockLeadRepository),
		adRepo:         new(MockAdRepository),
		assignmentRepo: new(MockAssignmentRepository),
		profileRepo:    new(MockCpProfileRepository),
	}
	f.uc = usecases.NewCpPanelUsecase(f.leadRepo, f.adRepo, f.assignmentRepo, f.profileRepo)
	return f
}

func TestCpPanelUsecase_Dashboard(t *testing.T) {
	f := newCpPanelFixture()
	ctx := context.Background()
	cp := newUser(entities.UserRoleCP)

	f.leadRepo.On("Count", ctx, mock.MatchedBy(func(fl entities.LeadFilter) bool { return fl.Since != nil })).Return(int64(2), nil)
	f.leadRepo.On("Count", ctx, entities.LeadFilter{CpID: &cp.ID}).Return(int64(9), nil)
	f.assignmentRepo.On("CountDistinctProjectsByCp", ctx, cp.ID).Return(int64(3), nil)
	f.adRepo.On("Count", ctx, repositories.AdFilter{CpID: &cp.ID, Status: entities.AdStatusActive}).Return(int64(1), nil)

	got, err := f.uc.Dashboard(ctx, cp)
	require.NoError(t, err)
	assert.Equal(t, &entities.CpDashboard{TodaysLeads: 2, TotalLeads: 9, ActiveProjects: 3, ActiveAds: 1}, got)
}

func TestCpPanelUsecase_Profile_FallsBackToUser(t *testing.T) {
	f := newCpPanelFixture()
	ctx := context.Background()
	cp := newUser(entities.UserRoleCP)
	cp.CompanyName = null.StringFrom("Sharma Realty")

	f.profileRepo.On("GetByUserID", ctx, cp.ID).Return(nil, domainerrors.ErrNotFound)

	view, err := f.uc.Profile(ctx, cp)
	require.NoError(t, err)
	assert.Nil(t, view.ID)
	assert.Equal(t, cp.FullName, view.FullName)
	assert.Equal(t, "Sharma Realty", view.CompanyName.String)
	assert.Equal(t, cp.Email, view.Email)
}

func TestCpPanelUsecase_UpdateProfile_CreatesOnFirstWrite(t *testing.T) {
	f := newCpPanelFixture()
	ctx := context.Background()
	cp := newUser(entities.UserRoleCP)

	f.profileRepo.On("GetByUserID", ctx, cp.ID).Return(nil, domainerrors.ErrNotFound)
	f.profileRepo.On("Create", ctx, mock.AnythingOfType("*entities.CpProfile")).Return(nil)

	view, err := f.uc.UpdateProfile(ctx, cp, &entities.UpdateCpProfileInput{City: strPtr("Thane"), ExtraJSON: strPtr(`{"languages":["hi","mr"]}`)})
	require.NoError(t, err)
	require.NotNil(t, view.ID)
	assert.Equal(t, "Thane", view.City)
	assert.Equal(t, cp.Phone, view.Phone)
	assert.Equal(t, `{"languages":["hi","mr"]}`, view.ExtraJSON.String)
	f.profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCpPanelUsecase_UpdateProfile_Existing(t *testing.T) {
	f := newCpPanelFixture()
	ctx := context.Background()
	cp := newUser(entities.UserRoleCP)

	profile := &entities.CpProfile{ID: uuid.New(), UserID: cp.ID, FullName: "R. Sharma", Phone: "9000000000", City: "Mumbai"}
	f.profileRepo.On("GetByUserID", ctx, cp.ID).Return(profile, nil)
	f.profileRepo.On("Update", ctx, profile).Return(nil)

	view, err := f.uc.UpdateProfile(ctx, cp, &entities.UpdateCpProfileInput{Phone: strPtr("9111111111")})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, *view.ID)
	assert.Equal(t, "9111111111", view.Phone)
	assert.Equal(t, "R. Sharma", view.FullName)

	_, err = f.uc.UpdateProfile(ctx, cp, &entities.UpdateCpProfileInput{Phone: strPtr("123")})
	requireAppError(t, err, 400, domainerrors.CodeValidation)
}
