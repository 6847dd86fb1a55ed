package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedCleanupRepo plays back one CleanupExpired result per call.
type scriptedCleanupRepo struct {
	*memSessionRepo

	results []func() (int64, error)
	calls   int
}

func (s *scriptedCleanupRepo) CleanupExpired(ctx context.Context) (int64, error) {
	s.calls++
	return s.results[s.calls-1]()
}

func TestCleanupDailySuccess(t *testing.T) {
	repo := &scriptedCleanupRepo{
		memSessionRepo: newMemSessionRepo(),
		results: []func() (int64, error){
			func() (int64, error) { return 5, nil },
		},
	}
	svc := NewSessionCleanupService(repo)

	require.NoError(t, svc.CleanupDaily(context.Background()))
	require.Equal(t, 1, repo.calls)
}

// A transient network error gets one retry.
func TestCleanupDailyRetriesTransientError(t *testing.T) {
	repo := &scriptedCleanupRepo{
		memSessionRepo: newMemSessionRepo(),
		results: []func() (int64, error){
			func() (int64, error) { return 0, io.EOF },
			func() (int64, error) { return 2, nil },
		},
	}
	svc := NewSessionCleanupService(repo)

	require.NoError(t, svc.CleanupDaily(context.Background()))
	require.Equal(t, 2, repo.calls)
}

func TestCleanupDailyDoesNotRetryQueryErrors(t *testing.T) {
	repo := &scriptedCleanupRepo{
		memSessionRepo: newMemSessionRepo(),
		results: []func() (int64, error){
			func() (int64, error) { return 0, errors.New("syntax error at or near DELETE") },
		},
	}
	svc := NewSessionCleanupService(repo)

	require.Error(t, svc.CleanupDaily(context.Background()))
	require.Equal(t, 1, repo.calls)
}
