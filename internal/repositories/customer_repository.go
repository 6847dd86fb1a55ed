package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
)

// CustomerRepository defines the interface for customer data operations.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Search(ctx context.Context, filter string, limit, offset int) ([]*models.Customer, int, error)
	Update(ctx context.Context, customer *models.Customer, expected int64) error
	Delete(ctx context.Context, id uuid.UUID, expected int64) error
	CountByCityID(ctx context.Context, cityID uuid.UUID) (int, error)
	CountBySocialStatusID(ctx context.Context, statusID uuid.UUID) (int, error)
}

type customerRepo struct {
	*BaseVersionedRepo[*models.Customer]
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	r := &customerRepo{db: db}
	selectStmt := baseSelectCustomer() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanCustomer)
	return r
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO customers (
			id, first_name, last_name, middle_name, birth_date,
			email, phone_number, city_id, social_status_id,
			created_at, updated_at, row_version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW(), 1)
	`,
		customer.ID, customer.FirstName, customer.LastName, customer.MiddleName, customer.BirthDate,
		customer.Email, customer.PhoneNumber, customer.CityID, customer.SocialStatusID,
	)
	return err
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *customerRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.Customer, int, error) {
	var qb strings.Builder
	var args []any
	idx := 1

	countQb := strings.Builder{}
	countQb.WriteString("SELECT count(*) FROM customers")

	qb.WriteString(baseSelectCustomer())

	if filter != "" {
		whereClause := fmt.Sprintf(
			" WHERE (first_name ILIKE $%d OR last_name ILIKE $%d OR middle_name ILIKE $%d)",
			idx, idx, idx,
		)
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

	qb.WriteString(fmt.Sprintf(" ORDER BY last_name ASC, first_name ASC LIMIT $%d OFFSET $%d", idx, idx+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		customers = append(customers, customer)
	}
	return customers, total, rows.Err()
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer, expected int64) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE customers SET
			first_name=$1, last_name=$2, middle_name=$3, birth_date=$4,
			email=$5, phone_number=$6, city_id=$7, social_status_id=$8,
			updated_at=NOW(), row_version=row_version+1
		WHERE id=$9 AND row_version=$10
	`,
		customer.FirstName, customer.LastName, customer.MiddleName, customer.BirthDate,
		customer.Email, customer.PhoneNumber, customer.CityID, customer.SocialStatusID,
		customer.ID, expected,
	)
	return r.CheckVersionedWrite(ctx, customer.GetID(), tag, err)
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM customers WHERE id=$1 AND row_version=$2`, id, expected)
	return r.CheckVersionedWrite(ctx, id.String(), tag, err)
}

func (r *customerRepo) CountByCityID(ctx context.Context, cityID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM customers WHERE city_id=$1`, cityID).Scan(&count)
	return count, err
}

func (r *customerRepo) CountBySocialStatusID(ctx context.Context, statusID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM customers WHERE social_status_id=$1`, statusID).Scan(&count)
	return count, err
}

func baseSelectCustomer() string {
	return `
		SELECT id, first_name, last_name, middle_name, birth_date,
		       email, phone_number, city_id, social_status_id,
		       row_version, created_at, updated_at
		FROM customers`
}

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	var customer models.Customer
	err := row.Scan(
		&customer.ID, &customer.FirstName, &customer.LastName, &customer.MiddleName, &customer.BirthDate,
		&customer.Email, &customer.PhoneNumber, &customer.CityID, &customer.SocialStatusID,
		&customer.RowVersion, &customer.CreatedAt, &customer.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}
