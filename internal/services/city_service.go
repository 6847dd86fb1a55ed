package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// CityService defines the interface for city lookup-data management.
type CityService interface {
	Create(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.City, error)
	List(ctx context.Context, req dtos.ListRequest) ([]*models.City, int, error)
	Update(ctx context.Context, req dtos.UpdateCityRequest) (*models.City, error)
	Delete(ctx context.Context, id uuid.UUID, version int64) error
}

type cityService struct {
	cityRepo     repositories.CityRepository
	customerRepo repositories.CustomerRepository
}

// NewCityService creates a new CityService.
func NewCityService(
	cityRepo repositories.CityRepository,
	customerRepo repositories.CustomerRepository,
) CityService {
	return &cityService{
		cityRepo:     cityRepo,
		customerRepo: customerRepo,
	}
}

func (s *cityService) Create(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error) {
	if err := s.validateNewCityName(ctx, req.CityName, uuid.Nil); err != nil {
		return nil, err
	}

	city := &models.City{
		ID:       uuid.New(),
		CityName: req.CityName,
	}
	city.SetRowVersion(1)

	if err := s.cityRepo.Create(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *cityService) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	return s.cityRepo.GetByID(ctx, id)
}

func (s *cityService) List(ctx context.Context, req dtos.ListRequest) ([]*models.City, int, error) {
	return s.cityRepo.Search(ctx, req.Filter, req.Limit, req.Offset)
}

func (s *cityService) Update(ctx context.Context, req dtos.UpdateCityRequest) (*models.City, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	if err := s.validateNewCityName(ctx, req.CityName, id); err != nil {
		return nil, err
	}

	city := &models.City{
		ID:       id,
		CityName: req.CityName,
	}
	if err := s.cityRepo.Update(ctx, city, req.Version); err != nil {
		return nil, err
	}

	city.SetRowVersion(req.Version + 1)
	return city, nil
}

func (s *cityService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	inUse, err := s.customerRepo.CountByCityID(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return utils.ErrCityInUse
	}
	return s.cityRepo.Delete(ctx, id, version)
}

// validateNewCityName rejects a name already held by a different city.
func (s *cityService) validateNewCityName(ctx context.Context, name string, currentID uuid.UUID) error {
	existing, err := s.cityRepo.GetByCityName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != currentID {
		return utils.ErrCityNameExists
	}
	return nil
}
