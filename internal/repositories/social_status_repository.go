package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
)

// SocialStatusRepository defines the interface for social-status
// lookup-data operations.
type SocialStatusRepository interface {
	Create(ctx context.Context, status *models.SocialStatus) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error)
	GetBySocialStatusName(ctx context.Context, name string) (*models.SocialStatus, error)
	Search(ctx context.Context, filter string, limit, offset int) ([]*models.SocialStatus, int, error)
	Update(ctx context.Context, status *models.SocialStatus, expected int64) error
	Delete(ctx context.Context, id uuid.UUID, expected int64) error
}

type socialStatusRepo struct {
	*BaseVersionedRepo[*models.SocialStatus]
	db DB
}

func NewSocialStatusRepository(db DB) SocialStatusRepository {
	r := &socialStatusRepo{db: db}
	selectStmt := baseSelectSocialStatus() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanSocialStatus)
	return r
}

func (r *socialStatusRepo) Create(ctx context.Context, status *models.SocialStatus) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO social_statuses (id, social_status_name, created_at, updated_at, row_version)
		VALUES ($1, $2, NOW(), NOW(), 1)
	`, status.ID, status.SocialStatusName)
	return err
}

func (r *socialStatusRepo) GetBySocialStatusName(ctx context.Context, name string) (*models.SocialStatus, error) {
	row := r.db.QueryRow(ctx, baseSelectSocialStatus()+" WHERE social_status_name=$1", name)
	return scanSocialStatus(row)
}

func (r *socialStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *socialStatusRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.SocialStatus, int, error) {
	var qb strings.Builder
	var args []any
	idx := 1

	countQb := strings.Builder{}
	countQb.WriteString("SELECT count(*) FROM social_statuses")

	qb.WriteString(baseSelectSocialStatus())

	if filter != "" {
		whereClause := fmt.Sprintf(" WHERE social_status_name ILIKE $%d", idx)
		qb.WriteString(whereClause)
		countQb.WriteString(whereClause)
		args = append(args, "%"+filter+"%")
		idx++
	}

	var total int
	err := r.db.QueryRow(ctx, countQb.String(), args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	qb.WriteString(fmt.Sprintf(" ORDER BY social_status_name ASC LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var statuses []*models.SocialStatus
	for rows.Next() {
		status, err := scanSocialStatus(rows)
		if err != nil {
			return nil, 0, err
		}
		statuses = append(statuses, status)
	}
	return statuses, total, rows.Err()
}

func (r *socialStatusRepo) Update(ctx context.Context, status *models.SocialStatus, expected int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE social_statuses SET
			social_status_name=$1, updated_at=NOW(), row_version=row_version+1
		WHERE id=$2 AND row_version=$3
	`, status.SocialStatusName, status.ID, expected)
	return r.CheckVersionedWrite(ctx, status.GetID(), tag, err)
}

func (r *socialStatusRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM social_statuses WHERE id=$1 AND row_version=$2`, id, expected)
	return r.CheckVersionedWrite(ctx, id.String(), tag, err)
}

func baseSelectSocialStatus() string {
	return `
		SELECT id, social_status_name, row_version, created_at, updated_at
		FROM social_statuses`
}

func scanSocialStatus(row pgx.Row) (*models.SocialStatus, error) {
	var status models.SocialStatus
	err := row.Scan(
		&status.ID, &status.SocialStatusName,
		&status.RowVersion, &status.CreatedAt, &status.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}
