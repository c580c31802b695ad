package seed

import (
	"context"

	authservice "maideasy/internal/auth/service"
	companyrepo "maideasy/internal/company/repository"
	maidrepo "maideasy/internal/maids/repository"
	"maideasy/pkg/config"
	"maideasy/pkg/logger"
	"maideasy/pkg/model"
)

// Seeder populates the stores on startup: the admin account, the default
// company profile, and optionally a set of sample maids for demos.
type Seeder struct {
	auth     authservice.AuthService
	maids    *maidrepo.MaidRepository
	settings *companyrepo.CompanySettingsRepository
	cfg      *config.Config
	log      *logger.Logger
}

func New(
	auth authservice.AuthService,
	maids *maidrepo.MaidRepository,
	settings *companyrepo.CompanySettingsRepository,
	cfg *config.Config,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		auth:     auth,
		maids:    maids,
		settings: settings,
		cfg:      cfg,
		log:      log,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if err := s.auth.EnsureAdmin(ctx, s.cfg.AdminUsername, s.cfg.AdminPassword, s.cfg.AdminEmail); err != nil {
		return err
	}

	s.ensureCompanySettings(ctx)

	if s.cfg.SeedSampleData {
		s.seedSampleMaids(ctx)
	}
	return nil
}

func (s *Seeder) ensureCompanySettings(ctx context.Context) {
	if _, ok := s.settings.Get(ctx); ok {
		return
	}

	settings := s.settings.Upsert(ctx, model.CompanySettings{
		CompanyName:  "MaidEasy",
		ContactEmail: "contact@maideasy.com",
		ContactPhone: "+91 9876543210",
		Address:      "123 Main Street, Mumbai, India",
		Logo:         "/logo.png",
		ServicesOffered: []string{
			"Cleaning", "Cooking", "Child Care", "Elderly Care", "Laundry", "Pet Care",
		},
		OperatingHours: "Monday to Saturday, 8:00 AM to 8:00 PM",
	})
	s.log.Info("Company settings seeded", "company_name", settings.CompanyName)
}

func (s *Seeder) seedSampleMaids(ctx context.Context) {
	if len(s.maids.FindAll(ctx)) > 0 {
		return
	}

	for _, maid := range sampleMaids() {
		s.maids.Create(ctx, maid)
	}
	s.log.Info("Sample maids seeded", "count", len(sampleMaids()))
}

func sampleMaids() []model.Maid {
	return []model.Maid{
		{
			Name:       "Priya Sharma",
			Email:      "priya.sharma@example.com",
			Phone:      "9876543210",
			City:       "Mumbai",
			Locality:   "Andheri",
			Address:    "123 Main Street, Andheri East",
			Experience: "5 years",
			Services:   []string{"Cleaning", "Cooking", "Child Care"},
			JoinedAt:   "2023-01-15T08:30:00Z",
		},
		{
			Name:       "Anjali Patel",
			Email:      "anjali.patel@example.com",
			Phone:      "8765432109",
			City:       "Mumbai",
			Locality:   "Bandra",
			Address:    "45 Park Avenue, Bandra West",
			Experience: "3 years",
			Services:   []string{"Cleaning", "Laundry"},
			JoinedAt:   "2023-03-10T10:15:00Z",
		},
		{
			Name:       "Lakshmi Reddy",
			Email:      "lakshmi.reddy@example.com",
			Phone:      "7654321098",
			City:       "Bangalore",
			Locality:   "Indiranagar",
			Address:    "78 Green View, Indiranagar",
			Experience: "7 years",
			Services:   []string{"Cooking", "Cleaning", "Elder Care"},
			JoinedAt:   "2022-11-05T09:45:00Z",
		},
		{
			Name:       "Meena Kumari",
			Email:      "meena.kumari@example.com",
			Phone:      "6543210987",
			City:       "Delhi",
			Locality:   "Saket",
			Address:    "25 Ring Road, Saket",
			Experience: "4 years",
			Services:   []string{"Cooking", "Child Care"},
			JoinedAt:   "2023-02-22T14:30:00Z",
		},
		{
			Name:       "Sunita Devi",
			Email:      "sunita.devi@example.com",
			Phone:      "5432109876",
			City:       "Delhi",
			Locality:   "Connaught Place",
			Address:    "10 Central Lane, Connaught Place",
			Experience: "6 years",
			Services:   []string{"Cleaning", "Laundry", "Cooking"},
			JoinedAt:   "2022-12-18T11:20:00Z",
		},
		{
			Name:       "Rekha Mishra",
			Email:      "rekha.mishra@example.com",
			Phone:      "4321098765",
			City:       "Kolkata",
			Locality:   "Salt Lake",
			Address:    "55 Lake View, Salt Lake",
			Experience: "8 years",
			Services:   []string{"Cleaning", "Cooking", "Elder Care", "Child Care"},
			JoinedAt:   "2022-10-30T07:55:00Z",
		},
		{
			Name:       "Geeta Singh",
			Email:      "geeta.singh@example.com",
			Phone:      "3210987654",
			City:       "Chennai",
			Locality:   "Adyar",
			Address:    "32 Beach Road, Adyar",
			Experience: "2 years",
			Services:   []string{"Cleaning"},
			JoinedAt:   "2023-04-05T15:40:00Z",
		},
		{
			Name:       "Kavita Joshi",
			Email:      "kavita.joshi@example.com",
			Phone:      "2109876543",
			City:       "Hyderabad",
			Locality:   "Banjara Hills",
			Address:    "89 Hill View, Banjara Hills",
			Experience: "5 years",
			Services:   []string{"Cooking", "Child Care"},
			JoinedAt:   "2023-01-28T12:10:00Z",
		},
		{
			Name:       "Deepa Gupta",
			Email:      "deepa.gupta@example.com",
			Phone:      "1098765432",
			City:       "Pune",
			Locality:   "Koregaon Park",
			Address:    "12 River Road, Koregaon Park",
			Experience: "4 years",
			Services:   []string{"Cleaning", "Laundry", "Cooking"},
			JoinedAt:   "2023-02-14T13:25:00Z",
		},
		{
			Name:       "Asha Verma",
			Email:      "asha.verma@example.com",
			Phone:      "0987654321",
			City:       "Jaipur",
			Locality:   "Malviya Nagar",
			Address:    "67 Pink City, Malviya Nagar",
			Experience: "3 years",
			Services:   []string{"Cleaning", "Elder Care"},
			JoinedAt:   "2023-03-20T16:15:00Z",
		},
	}
}
