package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// CustomerService defines the interface for customer record management.
type CustomerService interface {
	Create(ctx context.Context, req dtos.CreateCustomerRequest) (*models.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context, req dtos.ListRequest) ([]*models.Customer, int, error)
	Update(ctx context.Context, req dtos.UpdateCustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID, version int64) error
}

type customerService struct {
	customerRepo repositories.CustomerRepository
	cityRepo     repositories.CityRepository
	statusRepo   repositories.SocialStatusRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(
	customerRepo repositories.CustomerRepository,
	cityRepo repositories.CityRepository,
	statusRepo repositories.SocialStatusRepository,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		cityRepo:     cityRepo,
		statusRepo:   statusRepo,
	}
}

func (s *customerService) Create(ctx context.Context, req dtos.CreateCustomerRequest) (*models.Customer, error) {
	cityID, err := s.resolveCityID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	statusID, err := s.resolveSocialStatusID(ctx, req.SocialStatusID)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:             uuid.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		BirthDate:      req.BirthDate,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CityID:         cityID,
		SocialStatusID: statusID,
	}
	customer.SetRowVersion(1)

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, req dtos.ListRequest) ([]*models.Customer, int, error) {
	return s.customerRepo.Search(ctx, req.Filter, req.Limit, req.Offset)
}

func (s *customerService) Update(ctx context.Context, req dtos.UpdateCustomerRequest) (*models.Customer, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	cityID, err := s.resolveCityID(ctx, req.CityID)
	if err != nil {
		return nil, err
	}
	statusID, err := s.resolveSocialStatusID(ctx, req.SocialStatusID)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:             id,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		MiddleName:     req.MiddleName,
		BirthDate:      req.BirthDate,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		CityID:         cityID,
		SocialStatusID: statusID,
	}
	if err := s.customerRepo.Update(ctx, customer, req.Version); err != nil {
		return nil, err
	}

	customer.SetRowVersion(req.Version + 1)
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	return s.customerRepo.Delete(ctx, id, version)
}

// resolveCityID checks the referenced city exists before the write, so the
// caller sees a domain error instead of a raw foreign-key violation.
func (s *customerService) resolveCityID(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, utils.ErrCityNotFound
	}
	city, err := s.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}
	return &id, nil
}

func (s *customerService) resolveSocialStatusID(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, utils.ErrSocialStatusNotFound
	}
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, utils.ErrSocialStatusNotFound
	}
	return &id, nil
}
