package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
)

// UserRoleRepository reads the seeded role reference data.
type UserRoleRepository interface {
	List(ctx context.Context) ([]*models.UserRole, error)
	GetByName(ctx context.Context, name models.UserRoleName) (*models.UserRole, error)
}

type userRoleRepo struct {
	db DB
}

func NewUserRoleRepository(db DB) UserRoleRepository {
	return &userRoleRepo{db: db}
}

func (r *userRoleRepo) List(ctx context.Context) ([]*models.UserRole, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, description FROM user_roles ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.UserRole
	for rows.Next() {
		role, err := scanUserRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *userRoleRepo) GetByName(ctx context.Context, name models.UserRoleName) (*models.UserRole, error) {
	row := r.db.QueryRow(ctx,
		`SELECT name, description FROM user_roles WHERE name=$1`, string(name))
	return scanUserRole(row)
}

func scanUserRole(row pgx.Row) (*models.UserRole, error) {
	var role models.UserRole
	var name string

	err := row.Scan(&name, &role.Description)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	role.Name = models.UserRoleName(name)
	return &role, nil
}
