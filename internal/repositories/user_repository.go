package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/utils"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Search(ctx context.Context, filter string, limit, offset int) ([]*models.User, int, error)
	Update(ctx context.Context, user *models.User, expected int64) error
	DeleteWithSessions(ctx context.Context, id uuid.UUID, expected int64) error
}

type userRepo struct {
	*BaseVersionedRepo[*models.User]
	db DB
}

// NewUserRepository creates a new instance of the user repository.
func NewUserRepository(db DB) UserRepository {
	r := &userRepo{db: db}
	selectStmt := baseSelectUser() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanUser)
	return r
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	// The caller is responsible for hashing the password. This repository
	// just stores the hash it is given.
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (
			id, username, password_hash, display_name, user_role_name,
			created_at, updated_at, row_version
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), 1)
	`, user.ID, user.Username, user.PasswordHash, user.DisplayName, string(user.RoleName))
	return err
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE username=$1", username)
	return scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *userRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.User, int, error) {
	var qb strings.Builder
	var args []any
	idx := 1

	countQb := strings.Builder{}
	countQb.WriteString("SELECT count(*) FROM users")

	qb.WriteString(baseSelectUser())

	if filter != "" {
		whereClause := fmt.Sprintf(" WHERE (username ILIKE $%d OR display_name ILIKE $%d)", idx, idx)
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

	qb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, rows.Err()
}

// Update writes the row only if it still carries the expected version.
func (r *userRepo) Update(ctx context.Context, user *models.User, expected int64) error {
	tag, err := r.updateIfVersion(ctx, user, expected)
	return r.CheckVersionedWrite(ctx, user.GetID(), tag, err)
}

func (r *userRepo) updateIfVersion(ctx context.Context, user *models.User, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE users SET
			username=$1, display_name=$2, user_role_name=$3,
			updated_at=NOW(), row_version=row_version+1`
	args := []any{user.Username, user.DisplayName, string(user.RoleName)}

	// An empty hash means "leave the password alone".
	if user.PasswordHash != "" {
		sql += ", password_hash=$4 WHERE id=$5 AND row_version=$6"
		args = append(args, user.PasswordHash, user.ID, expected)
	} else {
		sql += " WHERE id=$4 AND row_version=$5"
		args = append(args, user.ID, expected)
	}
	return r.db.Exec(ctx, sql, args...)
}

// DeleteWithSessions removes the user's sessions and the user row in one
// transaction. The user delete is conditional on the expected version, so a
// stale delete rolls the session delete back as well.
func (r *userRepo) DeleteWithSessions(ctx context.Context, id uuid.UUID, expected int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM sessions WHERE user_id=$1`, id); err != nil {
		return err
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `DELETE FROM users WHERE id=$1 AND row_version=$2`, id, expected)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id=$1)`, id).Scan(&exists); err != nil {
			return err
		}
		if exists {
			err = utils.ErrVersionConflict
		} else {
			err = utils.ErrNotFound
		}
		return err
	}
	return nil
}

func baseSelectUser() string {
	return `
		SELECT id, username, password_hash, display_name, user_role_name,
		       row_version, created_at, updated_at
		FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	var role string

	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.DisplayName,
		&role,
		&user.RowVersion, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	user.RoleName = models.UserRoleName(role)
	return &user, nil
}
