package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/jackc/pgconn"

	"github.com/clienthub/customers-service/internal/metrics"
	"github.com/clienthub/customers-service/internal/repositories"
	"github.com/clienthub/customers-service/internal/utils"
)

// One retry on transient network errors (EOF, closed connection) with a
// small back-off.
const cleanupRetryDelay = 3 * time.Second

// SessionCleanupService removes expired sessions each night.
type SessionCleanupService interface {
	CleanupDaily(ctx context.Context) error
}

type sessionCleanupService struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionCleanupService(sessionRepo repositories.SessionRepository) SessionCleanupService {
	return &sessionCleanupService{sessionRepo: sessionRepo}
}

// runWithRetry executes op(ctx) and, if it returns a transient network
// error (EOF, pgconn safe-to-retry, or the common closed-connection
// message), waits a moment then retries once.
func (s *sessionCleanupService) runWithRetry(
	ctx context.Context,
	op func(context.Context) error,
) error {
	if err := op(ctx); err != nil {
		if errors.Is(err, io.EOF) || pgconn.SafeToRetry(err) ||
			strings.Contains(err.Error(), "connection was closed") {
			utils.Logger.WithError(err).Warn("session cleanup hit transient DB error; retrying once")
			time.Sleep(cleanupRetryDelay)
			return op(ctx)
		}
		return err
	}
	return nil
}

// CleanupDaily removes sessions whose expiry has passed.
func (s *sessionCleanupService) CleanupDaily(ctx context.Context) error {
	var removed int64

	op := func(ctx context.Context) error {
		n, err := s.sessionRepo.CleanupExpired(ctx)
		if err != nil {
			return err
		}
		removed = n
		return nil
	}

	if err := s.runWithRetry(ctx, op); err != nil {
		utils.Logger.WithError(err).Error("Failed to cleanup expired sessions")
		metrics.RecordSessionCleanup(false)
		return err
	}

	utils.Logger.Infof("Daily session cleanup completed successfully (%d removed).", removed)
	metrics.RecordSessionCleanup(true)
	return nil
}
