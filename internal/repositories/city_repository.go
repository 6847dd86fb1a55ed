package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
)

// CityRepository defines the interface for city lookup-data operations.
type CityRepository interface {
	Create(ctx context.Context, city *models.City) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.City, error)
	GetByCityName(ctx context.Context, name string) (*models.City, error)
	Search(ctx context.Context, filter string, limit, offset int) ([]*models.City, int, error)
	Update(ctx context.Context, city *models.City, expected int64) error
	Delete(ctx context.Context, id uuid.UUID, expected int64) error
}

type cityRepo struct {
	*BaseVersionedRepo[*models.City]
	db DB
}

func NewCityRepository(db DB) CityRepository {
	r := &cityRepo{db: db}
	selectStmt := baseSelectCity() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanCity)
	return r
}

func (r *cityRepo) Create(ctx context.Context, city *models.City) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cities (id, city_name, created_at, updated_at, row_version)
		VALUES ($1, $2, NOW(), NOW(), 1)
	`, city.ID, city.CityName)
	return err
}

func (r *cityRepo) GetByCityName(ctx context.Context, name string) (*models.City, error) {
	row := r.db.QueryRow(ctx, baseSelectCity()+" WHERE city_name=$1", name)
	return scanCity(row)
}

func (r *cityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *cityRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.City, int, error) {
	var qb strings.Builder
	var args []any
	idx := 1

	countQb := strings.Builder{}
	countQb.WriteString("SELECT count(*) FROM cities")

	qb.WriteString(baseSelectCity())

	if filter != "" {
		whereClause := fmt.Sprintf(" WHERE city_name ILIKE $%d", idx)
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

	qb.WriteString(fmt.Sprintf(" ORDER BY city_name ASC LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cities []*models.City
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, 0, err
		}
		cities = append(cities, city)
	}
	return cities, total, rows.Err()
}

func (r *cityRepo) Update(ctx context.Context, city *models.City, expected int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE cities SET
			city_name=$1, updated_at=NOW(), row_version=row_version+1
		WHERE id=$2 AND row_version=$3
	`, city.CityName, city.ID, expected)
	return r.CheckVersionedWrite(ctx, city.GetID(), tag, err)
}

func (r *cityRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM cities WHERE id=$1 AND row_version=$2`, id, expected)
	return r.CheckVersionedWrite(ctx, id.String(), tag, err)
}

func baseSelectCity() string {
	return `
		SELECT id, city_name, row_version, created_at, updated_at
		FROM cities`
}

func scanCity(row pgx.Row) (*models.City, error) {
	var city models.City
	err := row.Scan(
		&city.ID, &city.CityName,
		&city.RowVersion, &city.CreatedAt, &city.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}
