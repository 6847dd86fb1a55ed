package graph

import (
	"context"

	"github.com/google/uuid"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
)

// Function-field service fakes. A test sets the functions for the paths it
// exercises; untouched paths return zero values. Delete and sign-out calls
// are recorded so tests can assert a guarded operation never reached the
// service.

type deletedEntity struct {
	id      uuid.UUID
	version int64
}

// ------------------------------- auth -------------------------------

type fakeAuthService struct {
	signInFn  func(ctx context.Context, username, password, ip string) (*models.User, string, string, error)
	refreshFn func(ctx context.Context, token, ip string) (*models.User, string, string, error)
	signOutFn func(ctx context.Context, token string) error
	getUserFn func(ctx context.Context, id uuid.UUID) (*models.User, error)

	signInCalls  int
	signOutCalls []string
}

func (f *fakeAuthService) SignIn(ctx context.Context, username, password, ip string) (*models.User, string, string, error) {
	f.signInCalls++
	return f.signInFn(ctx, username, password, ip)
}

func (f *fakeAuthService) RefreshSession(ctx context.Context, token, ip string) (*models.User, string, string, error) {
	return f.refreshFn(ctx, token, ip)
}

func (f *fakeAuthService) SignOut(ctx context.Context, token string) error {
	f.signOutCalls = append(f.signOutCalls, token)
	if f.signOutFn == nil {
		return nil
	}
	return f.signOutFn(ctx, token)
}

func (f *fakeAuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return f.getUserFn(ctx, id)
}

// ------------------------------- users -------------------------------

type fakeUserService struct {
	createFn    func(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error)
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*models.User, error)
	listFn      func(ctx context.Context, req dtos.ListRequest) ([]*models.User, int, error)
	updateFn    func(ctx context.Context, req dtos.UpdateUserRequest) (*models.User, error)
	deleteFn    func(ctx context.Context, id uuid.UUID, version int64) error
	listRolesFn func(ctx context.Context) ([]*models.UserRole, error)

	listCalls   []dtos.ListRequest
	deleteCalls []deletedEntity
}

func (f *fakeUserService) Create(ctx context.Context, req dtos.CreateUserRequest) (*models.User, error) {
	return f.createFn(ctx, req)
}

func (f *fakeUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserService) List(ctx context.Context, req dtos.ListRequest) ([]*models.User, int, error) {
	f.listCalls = append(f.listCalls, req)
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(ctx, req)
}

func (f *fakeUserService) Update(ctx context.Context, req dtos.UpdateUserRequest) (*models.User, error) {
	return f.updateFn(ctx, req)
}

func (f *fakeUserService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	f.deleteCalls = append(f.deleteCalls, deletedEntity{id, version})
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id, version)
}

func (f *fakeUserService) ListRoles(ctx context.Context) ([]*models.UserRole, error) {
	if f.listRolesFn == nil {
		return nil, nil
	}
	return f.listRolesFn(ctx)
}

// ------------------------------- cities -------------------------------

type fakeCityService struct {
	createFn  func(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.City, error)
	listFn    func(ctx context.Context, req dtos.ListRequest) ([]*models.City, int, error)
	updateFn  func(ctx context.Context, req dtos.UpdateCityRequest) (*models.City, error)
	deleteFn  func(ctx context.Context, id uuid.UUID, version int64) error

	listCalls   []dtos.ListRequest
	deleteCalls []deletedEntity
}

func (f *fakeCityService) Create(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCityService) GetByID(ctx context.Context, id uuid.UUID) (*models.City, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCityService) List(ctx context.Context, req dtos.ListRequest) ([]*models.City, int, error) {
	f.listCalls = append(f.listCalls, req)
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(ctx, req)
}

func (f *fakeCityService) Update(ctx context.Context, req dtos.UpdateCityRequest) (*models.City, error) {
	return f.updateFn(ctx, req)
}

func (f *fakeCityService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	f.deleteCalls = append(f.deleteCalls, deletedEntity{id, version})
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id, version)
}

// --------------------------- social statuses ---------------------------

type fakeStatusService struct {
	createFn  func(ctx context.Context, req dtos.CreateSocialStatusRequest) (*models.SocialStatus, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error)
	listFn    func(ctx context.Context, req dtos.ListRequest) ([]*models.SocialStatus, int, error)
	updateFn  func(ctx context.Context, req dtos.UpdateSocialStatusRequest) (*models.SocialStatus, error)
	deleteFn  func(ctx context.Context, id uuid.UUID, version int64) error

	deleteCalls []deletedEntity
}

func (f *fakeStatusService) Create(ctx context.Context, req dtos.CreateSocialStatusRequest) (*models.SocialStatus, error) {
	return f.createFn(ctx, req)
}

func (f *fakeStatusService) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialStatus, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeStatusService) List(ctx context.Context, req dtos.ListRequest) ([]*models.SocialStatus, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(ctx, req)
}

func (f *fakeStatusService) Update(ctx context.Context, req dtos.UpdateSocialStatusRequest) (*models.SocialStatus, error) {
	return f.updateFn(ctx, req)
}

func (f *fakeStatusService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	f.deleteCalls = append(f.deleteCalls, deletedEntity{id, version})
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id, version)
}

// ------------------------------ customers ------------------------------

type fakeCustomerService struct {
	createFn  func(ctx context.Context, req dtos.CreateCustomerRequest) (*models.Customer, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	listFn    func(ctx context.Context, req dtos.ListRequest) ([]*models.Customer, int, error)
	updateFn  func(ctx context.Context, req dtos.UpdateCustomerRequest) (*models.Customer, error)
	deleteFn  func(ctx context.Context, id uuid.UUID, version int64) error

	listCalls   []dtos.ListRequest
	deleteCalls []deletedEntity
}

func (f *fakeCustomerService) Create(ctx context.Context, req dtos.CreateCustomerRequest) (*models.Customer, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCustomerService) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if f.getByIDFn == nil {
		return nil, nil
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeCustomerService) List(ctx context.Context, req dtos.ListRequest) ([]*models.Customer, int, error) {
	f.listCalls = append(f.listCalls, req)
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(ctx, req)
}

func (f *fakeCustomerService) Update(ctx context.Context, req dtos.UpdateCustomerRequest) (*models.Customer, error) {
	return f.updateFn(ctx, req)
}

func (f *fakeCustomerService) Delete(ctx context.Context, id uuid.UUID, version int64) error {
	f.deleteCalls = append(f.deleteCalls, deletedEntity{id, version})
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id, version)
}

// ---------------------------- model builders ----------------------------

func modelCity(name string) *models.City {
	c := &models.City{ID: uuid.New(), CityName: name}
	c.SetRowVersion(1)
	return c
}

func modelStatus(name string) *models.SocialStatus {
	s := &models.SocialStatus{ID: uuid.New(), SocialStatusName: name}
	s.SetRowVersion(1)
	return s
}

func modelUser(username string, role models.UserRoleName) *models.User {
	u := &models.User{
		ID:          uuid.New(),
		Username:    username,
		DisplayName: username,
		RoleName:    role,
	}
	u.SetRowVersion(1)
	return u
}

func modelCustomer(first, last string) *models.Customer {
	c := &models.Customer{ID: uuid.New(), FirstName: first, LastName: last}
	c.SetRowVersion(1)
	return c
}
