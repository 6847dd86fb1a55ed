package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/utils"
)

// SessionRepository stores refresh-token sessions. Only the token hash is
// ever written; lookups hash the raw token the client presented.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByToken(ctx context.Context, rawToken string) (*models.Session, error)
	Remove(ctx context.Context, id uuid.UUID) error
	RemoveAllByUserID(ctx context.Context, userID uuid.UUID) error
	CleanupExpired(ctx context.Context) (int64, error)
}

type sessionRepo struct {
	db DB
}

func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, token_hash, expires_at, created_at, ip_address)
		VALUES ($1, $2, $3, $4, NOW(), $5)
	`
	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		utils.HashToken(session.Token),
		session.ExpiresAt,
		session.IPAddress,
	)
	return err
}

func (r *sessionRepo) GetByToken(ctx context.Context, rawToken string) (*models.Session, error) {
	hashed := utils.HashToken(rawToken)
	query := `
		SELECT id, user_id, token_hash, expires_at, created_at, ip_address
		FROM sessions
		WHERE token_hash = $1
	`
	row := r.db.QueryRow(ctx, query, hashed)

	var s models.Session
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Token,
		&s.ExpiresAt,
		&s.CreatedAt,
		&s.IPAddress,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Remove(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *sessionRepo) RemoveAllByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *sessionRepo) CleanupExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
