// Command seed loads the starter catalog and demo accounts into the configured database.
// Re-running it skips anything that already exists.
package main

import (
	"context"
	"time"

	"homefix/config"
	"homefix/database"
	"homefix/database/repository"
	catalogRepo "homefix/database/repository/catalog"
	"homefix/models"
	"homefix/services/catalog"
	"homefix/services/technician"
	"homefix/services/user"
	"homefix/utils"

	"go.uber.org/zap"
)

var plans = []catalog.PlanInput{
	{Name: "Basic", Price: 2500, Duration: models.DurationMonthly, Description: "Essential cover for small repairs",
		Services: []string{"2 electrical or plumbing visits", "Standard response time"}},
	{Name: "Standard", Price: 6500, Duration: models.DurationQuarterly, Description: "Quarterly cover for busy households",
		Services: []string{"6 visits across all categories", "Priority scheduling", "10% off bookings"}},
	{Name: "Premium", Price: 22000, Duration: models.DurationYearly, Description: "Year-round cover including emergencies",
		Services: []string{"Unlimited visits", "Emergency call-outs", "10% off bookings", "Annual appliance check"}},
}

var services = []catalog.ServiceInput{
	{Name: "Wiring & switchboard repair", Category: models.CategoryElectrical, Price: 450, EstimatedTime: "1-2 hours"},
	{Name: "Leak & tap repair", Category: models.CategoryPlumbing, Price: 350, EstimatedTime: "1 hour"},
	{Name: "Washing machine service", Category: models.CategoryAppliances, Price: 600, EstimatedTime: "2 hours"},
	{Name: "Split AC servicing", Category: models.CategoryACCooling, Price: 800, EstimatedTime: "1-2 hours"},
	{Name: "Door & hinge fixing", Category: models.CategoryCarpentry, Price: 400, EstimatedTime: "1 hour"},
	{Name: "Room repainting", Category: models.CategoryPainting, Price: 3500, EstimatedTime: "1 day"},
	{Name: "CCTV installation", Category: models.CategorySecurity, Price: 1500, EstimatedTime: "3 hours"},
	{Name: "Wi-Fi router setup", Category: models.CategoryTechIT, Price: 300, EstimatedTime: "45 minutes"},
	{Name: "Kitchen deep clean", Category: models.CategoryCleaning, Price: 1200, EstimatedTime: "4 hours"},
	{Name: "Emergency call-out", Category: models.CategoryEmergency, Price: 999, EstimatedTime: "Within 2 hours"},
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger(false, config.AppConfig.LogLevel)
	logger := utils.GetLogger()

	if err := database.InitDB(); err != nil {
		logger.Fatal("seed: database unavailable", zap.Error(err))
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(ctx)

	repos, err := repository.NewMongoSet(database.DB())
	if err != nil {
		logger.Fatal("seed: failed to initialize repositories", zap.Error(err))
	}
	catalogService := catalog.NewCatalogService(repos.Catalog, nil)
	tokens := utils.NewTokenManager(config.AppConfig.JWTSecret, time.Hour)
	userService := user.NewUserService(repos.Users, tokens, nil)
	technicianService := technician.NewTechnicianService(repos.Technicians, repos.Users, repos.Bookings, nil)

	seedPlans(ctx, catalogService, logger)
	seedServices(ctx, catalogService, logger)

	if _, err := ensureUser(ctx, userService, repos, "Admin", "admin@homefix.local", models.RoleAdmin, logger); err != nil {
		logger.Fatal("seed: admin account", zap.Error(err))
	}
	techUser, err := ensureUser(ctx, userService, repos, "Demo Technician", "tech@homefix.local", models.RoleTechnician, logger)
	if err != nil {
		logger.Fatal("seed: technician account", zap.Error(err))
	}
	_, err = technicianService.Create(ctx, technician.TechnicianInput{
		UserID:          techUser.ID,
		Specializations: []models.Specialization{models.SpecElectrical, models.SpecPlumbing},
		Experience:      5,
		Location:        "Bengaluru",
	})
	switch {
	case err == nil:
		logger.Info("seed: technician profile created", zap.String("userId", techUser.ID))
	case utils.KindOf(err) == utils.KindConflict:
		logger.Info("seed: technician profile already exists")
	default:
		logger.Fatal("seed: technician profile", zap.Error(err))
	}

	logger.Info("seed: done")
}

func seedPlans(ctx context.Context, svc catalog.CatalogService, logger *zap.Logger) {
	existing, err := svc.ListPlans(ctx)
	if err != nil {
		logger.Fatal("seed: list plans", zap.Error(err))
	}
	have := map[string]bool{}
	for _, p := range existing {
		have[p.Name] = true
	}
	for _, in := range plans {
		if have[in.Name] {
			continue
		}
		if _, err := svc.CreatePlan(ctx, in); err != nil {
			logger.Fatal("seed: create plan", zap.String("name", in.Name), zap.Error(err))
		}
		logger.Info("seed: plan created", zap.String("name", in.Name))
	}
}

func seedServices(ctx context.Context, svc catalog.CatalogService, logger *zap.Logger) {
	existing, err := svc.ListServices(ctx, catalogRepo.ServiceFilter{})
	if err != nil {
		logger.Fatal("seed: list services", zap.Error(err))
	}
	have := map[string]bool{}
	for _, s := range existing {
		have[s.Name] = true
	}
	for _, in := range services {
		if have[in.Name] {
			continue
		}
		if _, err := svc.CreateService(ctx, in); err != nil {
			logger.Fatal("seed: create service", zap.String("name", in.Name), zap.Error(err))
		}
	}
	logger.Info("seed: services ready", zap.Int("count", len(services)))
}

// ensureUser registers the account if missing and sets its role.
func ensureUser(ctx context.Context, svc user.UserService, repos *repository.Set, name, email string, role models.Role, logger *zap.Logger) (*models.User, error) {
	id := ""
	resp, err := svc.Register(ctx, user.RegisterInput{Name: name, Email: email, Phone: "0000000000", Password: "changeme123"})
	switch {
	case err == nil:
		id = resp.User.ID
		logger.Info("seed: account created", zap.String("email", email), zap.String("password", "changeme123"))
	case utils.KindOf(err) == utils.KindConflict:
		u, err := repos.Users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		id = u.ID
	default:
		return nil, err
	}
	return svc.UpdateRole(ctx, id, role)
}
