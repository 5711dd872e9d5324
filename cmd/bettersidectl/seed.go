package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"betterside.backend/internal/domain/entities"
	domainerrors "betterside.backend/internal/domain/errors"
	"betterside.backend/internal/infrastructure/repositories"
	"betterside.backend/pkg/crypto"
	"betterside.backend/pkg/utils"
)

const seedPassword = "password123"

type seedUser struct {
	key  string
	user entities.User
}

var seedUsers = []seedUser{
	{key: "cp1", user: entities.User{
		Email: "rahul.sharma@example.com", FullName: "Rahul Sharma", Role: entities.UserRoleCP,
		CompanyName: null.StringFrom("Sharma Realty"), Phone: "9876543210", City: "Mumbai",
	}},
	{key: "cp2", user: entities.User{
		Email: "priya.patel@example.com", FullName: "Priya Patel", Role: entities.UserRoleCP,
		CompanyName: null.StringFrom("Patel Properties"), Phone: "9123456789", City: "Pune",
	}},
	{key: "dev1", user: entities.User{
		Email: "developer@lodhagroup.com", FullName: "Lodha Group", Role: entities.UserRoleDeveloper,
		CompanyName: null.StringFrom("Lodha Group"), Phone: "9999888877", City: "Mumbai",
		ContactPerson: null.StringFrom("Abhishek Lodha"), GSTNumber: null.StringFrom("27AABCL1234F1Z5"),
		ReraNumber: null.StringFrom("P51700012345"), IsReraRegistered: true,
	}},
	{key: "dev2", user: entities.User{
		Email: "developer@godrej.com", FullName: "Godrej Properties", Role: entities.UserRoleDeveloper,
		CompanyName: null.StringFrom("Godrej Properties"), Phone: "9988776655", City: "Pune",
		ContactPerson: null.StringFrom("Pirojsha Godrej"), GSTNumber: null.StringFrom("27AABCG5678H1Z3"),
		ReraNumber: null.StringFrom("P52900067890"), IsReraRegistered: true,
	}},
}

type seedProject struct {
	key       string
	developer string
	project   entities.Project
}

var seedProjects = []seedProject{
	{key: "p1", developer: "dev1", project: entities.Project{
		Name: "Lodha Park Side", Description: null.StringFrom("Luxurious 2 & 3 BHK apartments in Worli with sea-facing views."),
		City: "Mumbai", Location: "Worli", PriceMin: null.IntFrom(35000000), PriceMax: null.IntFrom(70000000),
		ProjectType: entities.ProjectTypeResidential, Status: entities.ProjectStatusUnderConstruction, IsActive: true,
	}},
	{key: "p2", developer: "dev2", project: entities.Project{
		Name: "Godrej Horizon", Description: null.StringFrom("Premium residences in Undri with world-class amenities."),
		City: "Pune", Location: "Undri", PriceMin: null.IntFrom(8500000), PriceMax: null.IntFrom(15000000),
		ProjectType: entities.ProjectTypeResidential, Status: entities.ProjectStatusUnderConstruction, IsActive: true,
	}},
}

var seedAssignments = [][2]string{{"cp1", "p1"}, {"cp1", "p2"}, {"cp2", "p2"}}

type seedLead struct {
	cp, project string
	lead        entities.Lead
}

var seedLeads = []seedLead{
	{"cp1", "p1", entities.Lead{CustomerName: "Vikram Mehta", CustomerPhone: "9112233445", CustomerEmail: null.StringFrom("vikram@email.com"),
		CustomerCity: null.StringFrom("Mumbai"), Budget: null.StringFrom("4 Cr"), Source: null.StringFrom(entities.LeadSourceMetaAds),
		Status: entities.LeadStatusNew, Notes: null.StringFrom("Interested in sea-facing unit")}},
	{"cp1", "p1", entities.Lead{CustomerName: "Ananya Singh", CustomerPhone: "9223344556",
		CustomerCity: null.StringFrom("Mumbai"), Budget: null.StringFrom("5 Cr"), Source: null.StringFrom(entities.LeadSourceReferral),
		Status: entities.LeadStatusContacted, Notes: null.StringFrom("Follow up scheduled for next week")}},
	{"cp1", "p2", entities.Lead{CustomerName: "Rajesh Kumar", CustomerPhone: "9334455667", CustomerEmail: null.StringFrom("rajesh.k@email.com"),
		CustomerCity: null.StringFrom("Pune"), Budget: null.StringFrom("1.2 Cr"), Source: null.StringFrom(entities.LeadSourceBetterSide),
		Status: entities.LeadStatusSiteVisit, Notes: null.StringFrom("Site visit completed, very positive")}},
	{"cp2", "p2", entities.Lead{CustomerName: "Sneha Desai", CustomerPhone: "9445566778", CustomerEmail: null.StringFrom("sneha.d@email.com"),
		CustomerCity: null.StringFrom("Pune"), Budget: null.StringFrom("1 Cr"), Source: null.StringFrom(entities.LeadSourceOrganic),
		Status: entities.LeadStatusNew}},
	{"cp2", "p2", entities.Lead{CustomerName: "Amit Joshi", CustomerPhone: "9556677889",
		CustomerCity: null.StringFrom("Pune"), Budget: null.StringFrom("90 L"), Source: null.StringFrom(entities.LeadSourceMetaAds),
		Status: entities.LeadStatusNegotiation, Notes: null.StringFrom("Negotiating on payment plan")}},
	{"cp2", "p2", entities.Lead{CustomerName: "Pooja Sharma", CustomerPhone: "9667788990", CustomerEmail: null.StringFrom("pooja.s@email.com"),
		CustomerCity: null.StringFrom("Mumbai"), Budget: null.StringFrom("1.3 Cr"), Source: null.StringFrom(entities.LeadSourceReferral),
		Status: entities.LeadStatusConverted, Notes: null.StringFrom("Booking done!")}},
}

type seedAd struct {
	cp, project string
	startDays   int
	endDays     int
	ad          entities.Ad
}

var seedAds = []seedAd{
	{"cp1", "p1", 0, 30, entities.Ad{Title: "Lead Generation Campaign", Description: null.StringFrom("Target HNIs in Mumbai"),
		Budget: 50000, Status: entities.AdStatusActive, Platform: entities.AdPlatformFacebook}},
	{"cp1", "p2", 0, 14, entities.Ad{Title: "Awareness Campaign", Description: null.StringFrom("Brand awareness in Pune"),
		Budget: 25000, Status: entities.AdStatusPending, Platform: entities.AdPlatformInstagram}},
	{"cp2", "p2", 0, 45, entities.Ad{Title: "Site Visit Campaign", Description: null.StringFrom("Drive site visits for Godrej Horizon"),
		Budget: 75000, Status: entities.AdStatusActive, Platform: entities.AdPlatformAll}},
	{"cp2", "p2", -30, 0, entities.Ad{Title: "Lead Gen - Phase 2", Description: null.StringFrom("Second phase lead generation"),
		Budget: 35000, Status: entities.AdStatusCompleted, Platform: entities.AdPlatformGoogle}},
}

type seedCounter struct {
	cp, project     string
	creatives, edms int
}

var seedCounters = []seedCounter{
	{"cp1", "p1", 15, 8},
	{"cp1", "p2", 10, 5},
	{"cp2", "p2", 12, 6},
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo CPs, developers and their data",
		Long:  "Load demo data. Users are matched by email and never duplicated; dependent rows are only created for newly created projects.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, closeDB, err := openDB()
			if err != nil {
				return err
			}
			defer closeDB()
			return runSeed(cmd.Context(), db, cmd.OutOrStdout())
		},
	}
}

type seeder struct {
	users       *repositories.UserRepository
	profiles    *repositories.CpProfileRepository
	projects    *repositories.ProjectRepository
	assignments *repositories.AssignmentRepository
	leads       *repositories.LeadRepository
	ads         *repositories.AdRepository
	counters    *repositories.MarketingCounterRepository
	out         io.Writer
}

func runSeed(ctx context.Context, db *gorm.DB, out io.Writer) error {
	s := &seeder{
		users:       repositories.NewUserRepository(db),
		profiles:    repositories.NewCpProfileRepository(db),
		projects:    repositories.NewProjectRepository(db),
		assignments: repositories.NewAssignmentRepository(db),
		leads:       repositories.NewLeadRepository(db),
		ads:         repositories.NewAdRepository(db),
		counters:    repositories.NewMarketingCounterRepository(db),
		out:         out,
	}

	hash, err := crypto.HashPassword(seedPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make(map[string]*entities.User, len(seedUsers))
	for _, su := range seedUsers {
		u, err := s.ensureUser(ctx, su.user, hash)
		if err != nil {
			return err
		}
		users[su.key] = u
		if u.Role == entities.UserRoleCP {
			if err := s.ensureProfile(ctx, u); err != nil {
				return err
			}
		}
	}

	projects := make(map[string]*entities.Project, len(seedProjects))
	fresh := make(map[string]bool)
	for _, sp := range seedProjects {
		p, created, err := s.ensureProject(ctx, users[sp.developer], sp.project)
		if err != nil {
			return err
		}
		projects[sp.key] = p
		fresh[sp.key] = created
	}

	for _, pair := range seedAssignments {
		if err := s.ensureAssignment(ctx, users[pair[0]], projects[pair[1]]); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, sl := range seedLeads {
		if !fresh[sl.project] {
			continue
		}
		lead := sl.lead
		lead.ID = utils.GenerateUUIDv7()
		lead.CpID = users[sl.cp].ID
		lead.ProjectID = projects[sl.project].ID
		lead.DeveloperID = projects[sl.project].DeveloperID
		lead.CreatedAt, lead.UpdatedAt = now, now
		if err := s.leads.Create(ctx, &lead); err != nil {
			return fmt.Errorf("failed to seed lead %s: %w", lead.CustomerName, err)
		}
	}

	for _, sa := range seedAds {
		if !fresh[sa.project] {
			continue
		}
		ad := sa.ad
		cpID, projectID := users[sa.cp].ID, projects[sa.project].ID
		ad.ID = utils.GenerateUUIDv7()
		ad.CpID, ad.ProjectID = &cpID, &projectID
		ad.StartDate = now.AddDate(0, 0, sa.startDays)
		ad.EndDate = now.AddDate(0, 0, sa.endDays)
		ad.CreatedAt, ad.UpdatedAt = now, now
		if err := s.ads.Create(ctx, &ad); err != nil {
			return fmt.Errorf("failed to seed ad %s: %w", ad.Title, err)
		}
	}

	for _, sc := range seedCounters {
		if !fresh[sc.project] {
			continue
		}
		projectID := projects[sc.project].ID
		if _, err := s.counters.Increment(ctx, users[sc.cp].ID, &projectID, sc.creatives, sc.edms); err != nil {
			return fmt.Errorf("failed to seed marketing counter: %w", err)
		}
	}

	fmt.Fprintln(out, "Seed complete. Test credentials:")
	for _, su := range seedUsers {
		fmt.Fprintf(out, "  %-4s %s / %s\n", su.key, su.user.Email, seedPassword)
	}
	return nil
}

func (s *seeder) ensureUser(ctx context.Context, u entities.User, hash string) (*entities.User, error) {
	existing, err := s.users.GetByEmail(ctx, u.Email)
	if err == nil {
		fmt.Fprintf(s.out, "user %s exists, skipping\n", u.Email)
		return existing, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up %s: %w", u.Email, err)
	}

	u.ID = utils.GenerateUUIDv7()
	u.PasswordHash = hash
	u.CreatedAt = time.Now()
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, fmt.Errorf("failed to seed user %s: %w", u.Email, err)
	}
	fmt.Fprintf(s.out, "created %s %s\n", u.Role, u.Email)
	return &u, nil
}

func (s *seeder) ensureProfile(ctx context.Context, u *entities.User) error {
	_, err := s.profiles.GetByUserID(ctx, u.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to look up profile of %s: %w", u.Email, err)
	}
	now := time.Now()
	return s.profiles.Create(ctx, &entities.CpProfile{
		ID:          utils.GenerateUUIDv7(),
		UserID:      u.ID,
		FullName:    u.FullName,
		CompanyName: u.CompanyName,
		Phone:       u.Phone,
		City:        u.City,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *seeder) ensureProject(ctx context.Context, developer *entities.User, p entities.Project) (*entities.Project, bool, error) {
	owned, err := s.projects.ListByDeveloper(ctx, developer.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list projects of %s: %w", developer.Email, err)
	}
	for _, existing := range owned {
		if existing.Name == p.Name {
			return existing, false, nil
		}
	}

	now := time.Now()
	p.ID = utils.GenerateUUIDv7()
	p.DeveloperID = developer.ID
	p.CreatedAt, p.UpdatedAt = now, now
	if err := s.projects.Create(ctx, &p); err != nil {
		return nil, false, fmt.Errorf("failed to seed project %s: %w", p.Name, err)
	}
	fmt.Fprintf(s.out, "created project %s\n", p.Name)
	return &p, true, nil
}

func (s *seeder) ensureAssignment(ctx context.Context, cp *entities.User, p *entities.Project) error {
	_, err := s.assignments.GetByCpAndProject(ctx, cp.ID, p.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return fmt.Errorf("failed to look up assignment: %w", err)
	}
	return s.assignments.Create(ctx, &entities.CpProjectMap{
		ID:         utils.GenerateUUIDv7(),
		CpID:       cp.ID,
		ProjectID:  p.ID,
		Status:     entities.AssignmentStatusApproved,
		AssignedAt: time.Now(),
	})
}

