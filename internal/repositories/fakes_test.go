package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/clienthub/customers-service/internal/models"
)

// The fakes below stand in for the pgx pool so the repositories' SQL
// shaping and outcome handling can be exercised without a database.
// Unused interface methods come from the embedded interface and panic
// when reached, which is the desired behavior in a test.

type dbCall struct {
	sql  string
	args []interface{}
}

type fakeDB struct {
	t *testing.T

	execFn     func(sql string, args ...interface{}) (pgconn.CommandTag, error)
	queryFn    func(sql string, args ...interface{}) (pgx.Rows, error)
	queryRowFn func(sql string, args ...interface{}) pgx.Row
	beginFn    func() (pgx.Tx, error)

	execCalls     []dbCall
	queryCalls    []dbCall
	queryRowCalls []dbCall
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.execCalls = append(f.execCalls, dbCall{normalizeSQL(sql), args})
	if f.execFn == nil {
		f.t.Fatalf("unexpected Exec: %s", normalizeSQL(sql))
	}
	return f.execFn(sql, args...)
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.queryCalls = append(f.queryCalls, dbCall{normalizeSQL(sql), args})
	if f.queryFn == nil {
		f.t.Fatalf("unexpected Query: %s", normalizeSQL(sql))
	}
	return f.queryFn(sql, args...)
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	f.queryRowCalls = append(f.queryRowCalls, dbCall{normalizeSQL(sql), args})
	if f.queryRowFn == nil {
		f.t.Fatalf("unexpected QueryRow: %s", normalizeSQL(sql))
	}
	return f.queryRowFn(sql, args...)
}

func (f *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if f.beginFn == nil {
		f.t.Fatal("unexpected Begin")
	}
	return f.beginFn()
}

type fakeTx struct {
	pgx.Tx

	execFn     func(sql string, args ...interface{}) (pgconn.CommandTag, error)
	queryRowFn func(sql string, args ...interface{}) pgx.Row

	statements []string
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.statements = append(f.statements, normalizeSQL(sql))
	return f.execFn(sql, args...)
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	f.statements = append(f.statements, normalizeSQL(sql))
	return f.queryRowFn(sql, args...)
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

// ---------------------------------------------------------------------------
// row fakes
// ---------------------------------------------------------------------------

type scanFunc func(dest ...interface{}) error

type fakeRow struct{ scan scanFunc }

func (r fakeRow) Scan(dest ...interface{}) error { return r.scan(dest...) }

type fakeRows struct {
	pgx.Rows

	scans []scanFunc
	idx   int
}

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.scans)
}

func (r *fakeRows) Scan(dest ...interface{}) error { return r.scans[r.idx-1](dest...) }

func (r *fakeRows) Close() {}

func (r *fakeRows) Err() error { return nil }

// noRow mimics QueryRow over an empty result set.
func noRow() pgx.Row {
	return fakeRow{scan: func(...interface{}) error { return pgx.ErrNoRows }}
}

func boolRowOf(v bool) pgx.Row {
	return fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*bool)) = v
		return nil
	}}
}

func countRowOf(n int) pgx.Row {
	return fakeRow{scan: func(dest ...interface{}) error {
		*(dest[0].(*int)) = n
		return nil
	}}
}

// cityScan fills dest in the column order of baseSelectCity.
func cityScan(c *models.City) scanFunc {
	return func(dest ...interface{}) error {
		*(dest[0].(*uuid.UUID)) = c.ID
		*(dest[1].(*string)) = c.CityName
		*(dest[2].(*int64)) = c.RowVersion
		*(dest[3].(*time.Time)) = c.CreatedAt
		*(dest[4].(*time.Time)) = c.UpdatedAt
		return nil
	}
}

func cityRowOf(c *models.City) pgx.Row {
	if c == nil {
		return noRow()
	}
	return fakeRow{scan: cityScan(c)}
}

// userScan fills dest in the column order of baseSelectUser.
func userScan(u *models.User) scanFunc {
	return func(dest ...interface{}) error {
		*(dest[0].(*uuid.UUID)) = u.ID
		*(dest[1].(*string)) = u.Username
		*(dest[2].(*string)) = u.PasswordHash
		*(dest[3].(*string)) = u.DisplayName
		*(dest[4].(*string)) = string(u.RoleName)
		*(dest[5].(*int64)) = u.RowVersion
		*(dest[6].(*time.Time)) = u.CreatedAt
		*(dest[7].(*time.Time)) = u.UpdatedAt
		return nil
	}
}

func userRowOf(u *models.User) pgx.Row {
	if u == nil {
		return noRow()
	}
	return fakeRow{scan: userScan(u)}
}

// sessionScan fills dest in the column order of the session SELECT.
func sessionScan(s *models.Session) scanFunc {
	return func(dest ...interface{}) error {
		*(dest[0].(*uuid.UUID)) = s.ID
		*(dest[1].(*uuid.UUID)) = s.UserID
		*(dest[2].(*string)) = s.Token
		*(dest[3].(*time.Time)) = s.ExpiresAt
		*(dest[4].(*time.Time)) = s.CreatedAt
		*(dest[5].(*string)) = s.IPAddress
		return nil
	}
}

func normalizeSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
