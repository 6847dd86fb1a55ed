package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/config"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// AuthService defines the interface for sign-in and session flows.
type AuthService interface {
	SignIn(
		ctx context.Context,
		username string,
		password string,
		ipAddress string,
	) (*models.User, string, string, error)
	RefreshSession(
		ctx context.Context,
		refreshTokenString string,
		ipAddress string,
	) (*models.User, string, string, error)
	SignOut(ctx context.Context, refreshTokenString string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	cfg         *config.Config
	jwtService  JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) AuthService {
	jwtSvc := NewJWTService(cfg, sessionRepo)
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
		jwtService:  jwtSvc,
	}
}

// SignIn verifies the credentials and issues an access token plus a fresh
// session. Unknown username and wrong password are indistinguishable to the
// caller.
func (s *authService) SignIn(
	ctx context.Context,
	username string,
	password string,
	ipAddress string,
) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", "", utils.ErrInvalidCredentials
	}

	if removeErr := s.sessionRepo.RemoveAllByUserID(ctx, user.ID); removeErr != nil {
		utils.Logger.WithError(removeErr).Error("failed to remove old sessions on sign-in")
	}

	accessToken, aErr := s.jwtService.GenerateAccessToken(ctx, user, s.cfg.AccessTokenTTL)
	if aErr != nil {
		utils.Logger.WithError(aErr).Error("Failed to generate access token")
		return nil, "", "", aErr
	}

	session, rErr := s.jwtService.GenerateSession(ctx, user.ID, ipAddress, s.cfg.SessionTTL)
	if rErr != nil {
		utils.Logger.WithError(rErr).Error("Failed to create session")
		return nil, "", "", rErr
	}

	return user, accessToken, session.Token, nil
}

func (s *authService) RefreshSession(
	ctx context.Context,
	refreshTokenString string,
	ipAddress string,
) (*models.User, string, string, error) {
	session, err := s.jwtService.RotateSession(ctx, refreshTokenString, ipAddress, s.cfg.SessionTTL)
	if err != nil {
		return nil, "", "", err
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, "", "", err
	}
	if user == nil {
		// The account vanished between rotations; drop the orphan session.
		_ = s.sessionRepo.Remove(ctx, session.ID)
		return nil, "", "", utils.ErrInvalidSession
	}

	accessToken, aErr := s.jwtService.GenerateAccessToken(ctx, user, s.cfg.AccessTokenTTL)
	if aErr != nil {
		utils.Logger.WithError(aErr).Error("Failed to generate access token on refresh")
		return nil, "", "", aErr
	}

	return user, accessToken, session.Token, nil
}

func (s *authService) SignOut(ctx context.Context, refreshTokenString string) error {
	return s.jwtService.RevokeSession(ctx, refreshTokenString)
}

func (s *authService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
