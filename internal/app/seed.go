package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clienthub/customers-service/internal/config"
	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/services"
	"github.com/clienthub/customers-service/internal/utils"
)

// SeedSampleData populates a fresh database with the administrator account
// plus a small set of cities, social statuses, and customers to click
// around. The admin account doubles as the idempotency sentinel: when it
// already exists the whole seed is skipped.
func SeedSampleData(
	ctx context.Context,
	cfg *config.Config,
	userRepo repositories.UserRepository,
	userService services.UserService,
	cityService services.CityService,
	socialStatusService services.SocialStatusService,
	customerService services.CustomerService,
) error {
	existing, err := userRepo.GetByUsername(ctx, cfg.SeedAdminUsername)
	if err != nil {
		return fmt.Errorf("check for seeded admin: %w", err)
	}
	if existing != nil {
		utils.Logger.Info("customers-service: Seed data already present; skipping seeding.")
		return nil
	}

	if _, err := userService.Create(ctx, dtos.CreateUserRequest{
		Username:    cfg.SeedAdminUsername,
		Password:    cfg.SeedAdminPassword,
		DisplayName: "Administrator",
		RoleName:    string(models.UserRoleAdministrator),
	}); err != nil && !errors.Is(err, utils.ErrUsernameExists) {
		return fmt.Errorf("seed admin user: %w", err)
	}

	cityIDs := make(map[string]string)
	for _, name := range []string{"Springfield", "Fairview", "Riverton"} {
		city, err := cityService.Create(ctx, dtos.CreateCityRequest{CityName: name})
		if err != nil {
			return fmt.Errorf("seed city %q: %w", name, err)
		}
		cityIDs[name] = city.ID.String()
	}

	statusIDs := make(map[string]string)
	for _, name := range []string{"Employed", "Self-employed", "Student", "Retired"} {
		status, err := socialStatusService.Create(ctx, dtos.CreateSocialStatusRequest{
			SocialStatusName: name,
		})
		if err != nil {
			return fmt.Errorf("seed social status %q: %w", name, err)
		}
		statusIDs[name] = status.ID.String()
	}

	samples := []dtos.CreateCustomerRequest{
		{
			FirstName:      "John",
			LastName:       "Smith",
			MiddleName:     strPtr("Allen"),
			BirthDate:      timePtr(time.Date(1985, time.March, 14, 0, 0, 0, 0, time.UTC)),
			Email:          strPtr("john.smith@example.com"),
			PhoneNumber:    strPtr("+1-202-555-0134"),
			CityID:         strPtr(cityIDs["Springfield"]),
			SocialStatusID: strPtr(statusIDs["Employed"]),
		},
		{
			FirstName:      "Jane",
			LastName:       "Doe",
			BirthDate:      timePtr(time.Date(1992, time.November, 2, 0, 0, 0, 0, time.UTC)),
			Email:          strPtr("jane.doe@example.com"),
			CityID:         strPtr(cityIDs["Fairview"]),
			SocialStatusID: strPtr(statusIDs["Student"]),
		},
		{
			FirstName: "Robert",
			LastName:  "Brown",
			// No optional fields; exercises the all-null path.
		},
	}
	for _, sample := range samples {
		if _, err := customerService.Create(ctx, sample); err != nil {
			return fmt.Errorf("seed customer %s %s: %w", sample.FirstName, sample.LastName, err)
		}
	}

	utils.Logger.Info("customers-service: Seeding completed successfully.")
	return nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
