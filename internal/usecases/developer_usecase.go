package usecases

import (
	"context"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Engagement and performance bands of the developer panel
const (
	highActivityLeads    = 40
	activeLeads          = 20
	highPerformanceLeads = 100
	steadyLeads          = 50
)

// DeveloperUsecase serves the developer panel analytics
type DeveloperUsecase struct {
	projectRepo    repositories.ProjectRepository
	assignmentRepo repositories.AssignmentRepository
	leadRepo       repositories.LeadRepository
	adRepo         repositories.AdRepository
	counterRepo    repositories.MarketingCounterRepository
	userRepo       repositories.UserRepository
}

// NewDeveloperUsecase creates a new developer panel usecase
func NewDeveloperUsecase(
	projectRepo repositories.ProjectRepository,
	assignmentRepo repositories.AssignmentRepository,
	leadRepo repositories.LeadRepository,
	adRepo repositories.AdRepository,
	counterRepo repositories.MarketingCounterRepository,
	userRepo repositories.UserRepository,
) *DeveloperUsecase {
	return &DeveloperUsecase{
		projectRepo:    projectRepo,
		assignmentRepo: assignmentRepo,
		leadRepo:       leadRepo,
		adRepo:         adRepo,
		counterRepo:    counterRepo,
		userRepo:       userRepo,
	}
}

// EngagementLevel classifies a partner by lead volume
func EngagementLevel(leads int64) string {
	switch {
	case leads > highActivityLeads:
		return "High Activity"
	case leads >= activeLeads:
		return "Active"
	}
	return "Low Activity"
}

// PerformanceLevel classifies a project by lead volume
func PerformanceLevel(leads int64) string {
	switch {
	case leads > highPerformanceLeads:
		return "High Performance"
	case leads > steadyLeads:
		return "Steady"
	}
	return "Growing"
}

// Dashboard summarises the developer's projects, leads and partners
func (u *DeveloperUsecase) Dashboard(ctx context.Context, developer *entities.User) (*entities.DeveloperDashboard, error) {
	projects, err := u.projectRepo.ListByDeveloper(ctx, developer.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	out := &entities.DeveloperDashboard{TotalProjects: int64(len(projects))}
	for _, p := range projects {
		if p.IsActive {
			out.ActiveProjects++
		}
	}

	if out.TotalLeads, err = u.leadRepo.Count(ctx, entities.LeadFilter{DeveloperID: &developer.ID}); err != nil {
		return nil, domainerrors.InternalError(err)
	}
	converted := entities.LeadFilter{DeveloperID: &developer.ID, Status: string(entities.LeadStatusConverted)}
	if out.ConvertedLeads, err = u.leadRepo.Count(ctx, converted); err != nil {
		return nil, domainerrors.InternalError(err)
	}

	ids := projectIDs(projects, func(p *entities.Project) uuid.UUID { return p.ID })
	assignments, err := u.assignmentRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	for _, a := range assignments {
		switch a.Status {
		case entities.AssignmentStatusApproved:
			out.ApprovedPartners++
		case entities.AssignmentStatusPending:
			out.PendingPartnerRequests++
		}
	}
	return out, nil
}

// Partners returns one activity row per CP assignment on the developer's projects
func (u *DeveloperUsecase) Partners(ctx context.Context, developer *entities.User) ([]*entities.PartnerActivity, error) {
	projects, err := u.projectRepo.ListByDeveloper(ctx, developer.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if len(projects) == 0 {
		return []*entities.PartnerActivity{}, nil
	}
	names := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		names[p.ID] = p.Name
	}
	ids := projectIDs(projects, func(p *entities.Project) uuid.UUID { return p.ID })

	assignments, err := u.assignmentRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	cps, err := u.userRepo.GetByIDs(ctx, projectIDs(assignments, func(a *entities.CpProjectMap) uuid.UUID { return a.CpID }))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	users := make(map[uuid.UUID]*entities.User, len(cps))
	for _, cp := range cps {
		users[cp.ID] = cp
	}

	leads, err := u.leadRepo.CountByCpAndProject(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	withAds, err := u.adRepo.CpProjectsWithAds(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	rows, err := u.counterRepo.ListByProjects(ctx, ids)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	counters := make(map[repositories.CpProjectKey]*entities.MarketingCounter, len(rows))
	for _, row := range rows {
		counters[repositories.CpProjectKey{CpID: row.CpID, ProjectID: *row.ProjectID}] = row
	}

	out := make([]*entities.PartnerActivity, 0, len(assignments))
	for _, a := range assignments {
		key := repositories.CpProjectKey{CpID: a.CpID, ProjectID: a.ProjectID}
		row := &entities.PartnerActivity{
			CpID:             a.CpID,
			ProjectID:        a.ProjectID,
			ProjectName:      names[a.ProjectID],
			AssignmentStatus: a.Status,
			TotalLeads:       leads[key],
			HasRunAds:        withAds[key],
			Engagement:       EngagementLevel(leads[key]),
		}
		if cp, ok := users[a.CpID]; ok {
			row.CpName = cp.FullName
			row.Company = nullOr(cp.CompanyName, "")
			row.City = cp.City
		}
		if c, ok := counters[key]; ok {
			row.CreativesReceived = c.CreativesShared
			row.EdmsSent = c.EdmsShared
		}
		out = append(out, row)
	}
	return out, nil
}

// Performance returns the lead volume band of each of the developer's projects
func (u *DeveloperUsecase) Performance(ctx context.Context, developer *entities.User) ([]*entities.ProjectPerformance, error) {
	projects, err := u.projectRepo.ListByDeveloper(ctx, developer.ID)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	counts, err := u.leadRepo.CountByProject(ctx, projectIDs(projects, func(p *entities.Project) uuid.UUID { return p.ID }))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	out := make([]*entities.ProjectPerformance, 0, len(projects))
	for _, p := range projects {
		out = append(out, &entities.ProjectPerformance{
			ProjectID:   p.ID,
			Name:        p.Name,
			TotalLeads:  counts[p.ID],
			Performance: PerformanceLevel(counts[p.ID]),
		})
	}
	return out, nil
}

func nullOr(s null.String, fallback string) string {
	if s.Valid {
		return s.String
	}
	return fallback
}
