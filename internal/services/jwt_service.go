package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/config"
	"github.com/clienthub/customers-service/internal/middleware"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------

// JWTService signs access tokens and manages the session rows that back
// refresh tokens.
type JWTService interface {
	GenerateAccessToken(
		ctx context.Context,
		user *models.User,
		tokenExpiry time.Duration,
	) (string, error)

	GenerateSession(
		ctx context.Context,
		userID uuid.UUID,
		ipAddress string,
		sessionExpiry time.Duration,
	) (*models.Session, error)

	RotateSession(
		ctx context.Context,
		refreshTokenString string,
		ipAddress string,
		sessionExpiry time.Duration,
	) (*models.Session, error)

	RevokeSession(ctx context.Context, refreshTokenString string) error
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jwtService struct {
	privateKey  *rsa.PrivateKey
	sessionRepo repositories.SessionRepository
}

func NewJWTService(cfg *config.Config, sessionRepo repositories.SessionRepository) JWTService {
	return &jwtService{
		privateKey:  cfg.RSAPrivateKey,
		sessionRepo: sessionRepo,
	}
}

func (j *jwtService) GenerateAccessToken(
	ctx context.Context,
	user *models.User,
	tokenExpiry time.Duration,
) (string, error) {
	claims := jwt.MapClaims{
		"iss":  middleware.TokenIssuer,
		"sub":  user.ID.String(),
		"exp":  time.Now().Add(tokenExpiry).Unix(),
		"iat":  time.Now().Unix(),
		"jti":  uuid.NewString(),
		"role": string(user.RoleName),
	}
	return j.signClaims(claims)
}

func (j *jwtService) GenerateSession(
	ctx context.Context,
	userID uuid.UUID,
	ipAddress string,
	sessionExpiry time.Duration,
) (*models.Session, error) {
	rawToken := generateSecureToken(64)

	session := &models.Session{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     rawToken,
		ExpiresAt: time.Now().Add(sessionExpiry),
		CreatedAt: time.Now(),
		IPAddress: ipAddress,
	}

	if err := j.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RotateSession swaps the presented refresh token for a fresh session. The
// old row is removed first, so a token can be rotated at most once.
func (j *jwtService) RotateSession(
	ctx context.Context,
	refreshTokenString string,
	ipAddress string,
	sessionExpiry time.Duration,
) (*models.Session, error) {
	oldSession, err := j.sessionRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("failed to fetch session in jwtService.RotateSession")
		return nil, err
	}
	if oldSession == nil {
		return nil, utils.ErrInvalidSession
	}
	if oldSession.IsExpired() {
		return nil, utils.ErrSessionExpired
	}
	if oldSession.IPAddress != "" && ipAddress != "" && oldSession.IPAddress != ipAddress {
		utils.Logger.Warn("IP mismatch in jwtService.RotateSession")
		return nil, utils.ErrInvalidSession
	}

	if err := j.sessionRepo.Remove(ctx, oldSession.ID); err != nil {
		utils.Logger.WithError(err).Error("failed to remove old session in jwtService.RotateSession")
		return nil, err
	}

	return j.GenerateSession(ctx, oldSession.UserID, ipAddress, sessionExpiry)
}

func (j *jwtService) RevokeSession(ctx context.Context, refreshTokenString string) error {
	oldSession, err := j.sessionRepo.GetByToken(ctx, refreshTokenString)
	if err != nil {
		utils.Logger.WithError(err).Error("failed to fetch session in jwtService.RevokeSession")
		return err
	}
	if oldSession == nil {
		// already not found => no-op
		return nil
	}
	return j.sessionRepo.Remove(ctx, oldSession.ID)
}

// ---------------------------------------------------------------------
// signClaims – helper for RSA signing
// ---------------------------------------------------------------------

func (j *jwtService) signClaims(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(j.privateKey)
}

// ---------------------------------------------------------------------
// Secure random generator
// ---------------------------------------------------------------------

func generateSecureToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[secureRandomInt(len(charset))]
	}
	return string(b)
}

func secureRandomInt(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}
	return int(n.Int64())
}
