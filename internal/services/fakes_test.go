package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/utils"
)

// In-memory repository fakes. Lookups behave like the real repositories
// (nil, nil for a missing row); error fields inject failures where a test
// needs one.

type versionedDelete struct {
	id      uuid.UUID
	version int64
}

// ----------------------------- cities -----------------------------

type fakeCityRepo struct {
	cities  map[uuid.UUID]*models.City
	created []*models.City
	updated []*models.City
	deleted []versionedDelete

	updateErr error
	deleteErr error
}

func newFakeCityRepo(cities ...*models.City) *fakeCityRepo {
	m := make(map[uuid.UUID]*models.City, len(cities))
	for _, c := range cities {
		m[c.ID] = c
	}
	return &fakeCityRepo{cities: m}
}

func (f *fakeCityRepo) Create(ctx context.Context, city *models.City) error {
	f.created = append(f.created, city)
	f.cities[city.ID] = city
	return nil
}

func (f *fakeCityRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	return f.cities[id], nil
}

func (f *fakeCityRepo) GetByCityName(ctx context.Context, name string) (*models.City, error) {
	for _, c := range f.cities {
		if c.CityName == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCityRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.City, int, error) {
	var out []*models.City
	for _, c := range f.cities {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCityRepo) Update(ctx context.Context, city *models.City, expected int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, city)
	return nil
}

func (f *fakeCityRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, versionedDelete{id, expected})
	delete(f.cities, id)
	return nil
}

// ------------------------- social statuses -------------------------

type fakeStatusRepo struct {
	statuses map[uuid.UUID]*models.SocialStatus
	created  []*models.SocialStatus
	updated  []*models.SocialStatus
	deleted  []versionedDelete

	updateErr error
	deleteErr error
}

func newFakeStatusRepo(statuses ...*models.SocialStatus) *fakeStatusRepo {
	m := make(map[uuid.UUID]*models.SocialStatus, len(statuses))
	for _, s := range statuses {
		m[s.ID] = s
	}
	return &fakeStatusRepo{statuses: m}
}

func (f *fakeStatusRepo) Create(ctx context.Context, status *models.SocialStatus) error {
	f.created = append(f.created, status)
	f.statuses[status.ID] = status
	return nil
}

func (f *fakeStatusRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error) {
	return f.statuses[id], nil
}

func (f *fakeStatusRepo) GetBySocialStatusName(ctx context.Context, name string) (*models.SocialStatus, error) {
	for _, s := range f.statuses {
		if s.SocialStatusName == name {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.SocialStatus, int, error) {
	var out []*models.SocialStatus
	for _, s := range f.statuses {
		out = append(out, s)
	}
	return out, len(out), nil
}

func (f *fakeStatusRepo) Update(ctx context.Context, status *models.SocialStatus, expected int64) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, status)
	return nil
}

func (f *fakeStatusRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, versionedDelete{id, expected})
	delete(f.statuses, id)
	return nil
}

// ----------------------------- customers -----------------------------

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
	created   []*models.Customer
	updated   []*models.Customer
	deleted   []versionedDelete

	cityCounts   map[uuid.UUID]int
	statusCounts map[uuid.UUID]int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers:    make(map[uuid.UUID]*models.Customer),
		cityCounts:   make(map[uuid.UUID]int),
		statusCounts: make(map[uuid.UUID]int),
	}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	f.created = append(f.created, customer)
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.Customer, int, error) {
	var out []*models.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *models.Customer, expected int64) error {
	f.updated = append(f.updated, customer)
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID, expected int64) error {
	f.deleted = append(f.deleted, versionedDelete{id, expected})
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) CountByCityID(ctx context.Context, cityID uuid.UUID) (int, error) {
	return f.cityCounts[cityID], nil
}

func (f *fakeCustomerRepo) CountBySocialStatusID(ctx context.Context, statusID uuid.UUID) (int, error) {
	return f.statusCounts[statusID], nil
}

// ------------------------------- users -------------------------------

type fakeUserRepo struct {
	users   map[uuid.UUID]*models.User
	created []*models.User
	updated []*models.User
	deleted []versionedDelete

	getByIDErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*models.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.created = append(f.created, user)
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Search(ctx context.Context, filter string, limit, offset int) ([]*models.User, int, error) {
	var out []*models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User, expected int64) error {
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) DeleteWithSessions(ctx context.Context, id uuid.UUID, expected int64) error {
	f.deleted = append(f.deleted, versionedDelete{id, expected})
	delete(f.users, id)
	return nil
}

// ------------------------------- roles -------------------------------

type fakeRoleRepo struct {
	roles []*models.UserRole
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: []*models.UserRole{
		{Name: models.UserRoleAdministrator, Description: "Full access"},
		{Name: models.UserRoleUser, Description: "Customer data access"},
	}}
}

func (f *fakeRoleRepo) List(ctx context.Context) ([]*models.UserRole, error) {
	return f.roles, nil
}

func (f *fakeRoleRepo) GetByName(ctx context.Context, name models.UserRoleName) (*models.UserRole, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

// ------------------------------ sessions ------------------------------

// memSessionRepo mirrors the real repository's hashing: only the hash is
// kept, and lookups hash the raw token they are given.
type memSessionRepo struct {
	sessions map[string]*models.Session // keyed by token hash

	createErr error
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*models.Session)}
}

func (m *memSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	stored := *session
	stored.Token = utils.HashToken(session.Token)
	m.sessions[stored.Token] = &stored
	return nil
}

func (m *memSessionRepo) GetByToken(ctx context.Context, rawToken string) (*models.Session, error) {
	s, ok := m.sessions[utils.HashToken(rawToken)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessionRepo) Remove(ctx context.Context, id uuid.UUID) error {
	for hash, s := range m.sessions {
		if s.ID == id {
			delete(m.sessions, hash)
		}
	}
	return nil
}

func (m *memSessionRepo) RemoveAllByUserID(ctx context.Context, userID uuid.UUID) error {
	for hash, s := range m.sessions {
		if s.UserID == userID {
			delete(m.sessions, hash)
		}
	}
	return nil
}

func (m *memSessionRepo) CleanupExpired(ctx context.Context) (int64, error) {
	var removed int64
	now := time.Now()
	for hash, s := range m.sessions {
		if now.After(s.ExpiresAt) {
			delete(m.sessions, hash)
			removed++
		}
	}
	return removed, nil
}

func (m *memSessionRepo) countForUser(userID uuid.UUID) int {
	n := 0
	for _, s := range m.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n
}
