package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/utils"
)

/*
BaseVersionedRepo holds the DB connection, a SELECT-by-ID statement,
and a scanner for a single entity type T.  It gives you:

	• GetByID(ctx, id string) (T, error)
	• CheckVersionedWrite(ctx, id, tag, err)

Every write against a versioned row is a single conditional statement
(`... WHERE id=$x AND row_version=$y`); there is no read-then-compare
step that another request could race.
*/
type BaseVersionedRepo[T EntityWithVersion] struct {
	db         DB
	selectByID string
	scan       func(row pgx.Row) (T, error)
}

// NewBaseRepo is called by concrete repositories.
func NewBaseRepo[T EntityWithVersion](
	db DB,
	selectByID string,
	scan func(pgx.Row) (T, error),
) *BaseVersionedRepo[T] {
	return &BaseVersionedRepo[T]{db: db, selectByID: selectByID, scan: scan}
}

// -------------------------- public helpers --------------------------

func (b *BaseVersionedRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	row := b.db.QueryRow(ctx, b.selectByID, id)
	return b.scan(row)
}

// CheckVersionedWrite turns the outcome of a conditional UPDATE/DELETE into
// a domain error. A statement that matched no rows means the row is either
// gone (ErrNotFound) or still present at a different version
// (ErrVersionConflict); a follow-up read tells the two apart.
func (b *BaseVersionedRepo[T]) CheckVersionedWrite(
	ctx context.Context,
	id string,
	tag pgconn.CommandTag,
	err error,
) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	current, getErr := b.GetByID(ctx, id)
	if getErr != nil {
		return getErr
	}

	// zero value of T (nil for pointers)
	var zero T
	if current == zero {
		return utils.ErrNotFound
	}
	return utils.ErrVersionConflict
}
