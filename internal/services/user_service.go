package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// UserService defines the interface for user account management.
type UserService interface {
	Create(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, req dtos.ListRequest) ([]*models.User, int, error)
	Update(ctx context.Context, req dtos.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID, version int64) error
	ListRoles(ctx context.Context) ([]*models.UserRole, error)
}

type userService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.UserRoleRepository
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.UserRoleRepository,
) UserService {
	return &userService{
		userRepo: userRepo,
		roleRepo: roleRepo,
	}
}

func (s *userService) Create(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error) {
	if err := s.validateNewUsername(ctx, req.Username, uuid.Nil); err != nil {
		return nil, err
	}

	role, err := s.resolveRole(ctx, req.RoleName)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to hash password for new user")
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		DisplayName:  req.DisplayName,
		RoleName:     role.Name,
	}
	user.SetRowVersion(1)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context, req dtos.ListRequest) ([]*models.User, int, error) {
	return s.userRepo.Search(ctx, req.Filter, req.Limit, req.Offset)
}

func (s *userService) Update(ctx context.Context, req dtos.UpdateUserRequest) (*models.User, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	if err := s.validateNewUsername(ctx, req.Username, id); err != nil {
		return nil, err
	}

	role, err := s.resolveRole(ctx, req.RoleName)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          id,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		RoleName:    role.Name,
	}
	if req.Password != nil {
		passwordHash, hashErr := utils.HashPassword(*req.Password)
		if hashErr != nil {
			utils.Logger.WithError(hashErr).Error("Failed to hash password on user update")
			return nil, hashErr
		}
		user.PasswordHash = passwordHash
	}

	if err := s.userRepo.Update(ctx, user, req.Version); err != nil {
		return nil, err
	}

	// The conditional update bumped the row to the next version.
	user.SetRowVersion(req.Version + 1)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	return s.userRepo.DeleteWithSessions(ctx, id, version)
}

func (s *userService) ListRoles(ctx context.Context) ([]*models.UserRole, error) {
	return s.roleRepo.List(ctx)
}

// validateNewUsername rejects a username already held by a different user.
// currentID is uuid.Nil on create, so any match is a conflict.
func (s *userService) validateNewUsername(ctx context.Context, username string, currentID uuid.UUID) error {
	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != currentID {
		return utils.ErrUsernameExists
	}
	return nil
}

func (s *userService) resolveRole(ctx context.Context, name string) (*models.UserRole, error) {
	role, err := s.roleRepo.GetByName(ctx, models.UserRoleName(name))
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, utils.ErrUserRoleNotFound
	}
	return role, nil
}
