package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// SocialStatusService defines the interface for social-status lookup-data
// management.
type SocialStatusService interface {
	Create(ctx context.Context, req dtos.CreateSocialStatusRequest) (*models.SocialStatus, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error)
	List(ctx context.Context, req dtos.ListRequest) ([]*models.SocialStatus, int, error)
	Update(ctx context.Context, req dtos.UpdateSocialStatusRequest) (*models.SocialStatus, error)
	Delete(ctx context.Context, id uuid.UUID, version int64) error
}

type socialStatusService struct {
	statusRepo   repositories.SocialStatusRepository
	customerRepo repositories.CustomerRepository
}

// NewSocialStatusService creates a new SocialStatusService.
func NewSocialStatusService(
	statusRepo repositories.SocialStatusRepository,
	customerRepo repositories.CustomerRepository,
) SocialStatusService {
	return &socialStatusService{
		statusRepo:   statusRepo,
		customerRepo: customerRepo,
	}
}

func (s *socialStatusService) Create(ctx context.Context, req dtos.CreateSocialStatusRequest) (*models.SocialStatus, error) {
	if err := s.validateNewStatusName(ctx, req.SocialStatusName, uuid.Nil); err != nil {
		return nil, err
	}

	status := &models.SocialStatus{
		ID:               uuid.New(),
		SocialStatusName: req.SocialStatusName,
	}
	status.SetRowVersion(1)

	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}
	return status, nil
}

func (s *socialStatusService) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error) {
	return s.statusRepo.GetByID(ctx, id)
}

func (s *socialStatusService) List(ctx context.Context, req dtos.ListRequest) ([]*models.SocialStatus, int, error) {
	return s.statusRepo.Search(ctx, req.Filter, req.Limit, req.Offset)
}

func (s *socialStatusService) Update(ctx context.Context, req dtos.UpdateSocialStatusRequest) (*models.SocialStatus, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	if err := s.validateNewStatusName(ctx, req.SocialStatusName, id); err != nil {
		return nil, err
	}

	status := &models.SocialStatus{
		ID:               id,
		SocialStatusName: req.SocialStatusName,
	}
	if err := s.statusRepo.Update(ctx, status, req.Version); err != nil {
		return nil, err
	}

	status.SetRowVersion(req.Version + 1)
	return status, nil
}

func (s *socialStatusService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	inUse, err := s.customerRepo.CountBySocialStatusID(ctx, id)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return utils.ErrSocialStatusInUse
	}
	return s.statusRepo.Delete(ctx, id, version)
}

func (s *socialStatusService) validateNewStatusName(ctx context.Context, name string, currentID uuid.UUID) error {
	existing, err := s.statusRepo.GetBySocialStatusName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != currentID {
		return utils.ErrSocialStatusNameExists
	}
	return nil
}
