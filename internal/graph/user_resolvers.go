package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/utils"
)

// User management is restricted to administrators.

func (r *Resolver) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdministrator(p.Context); err != nil {
		return nil, err
	}
	id, err := uuidArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	user, err := r.userService.GetByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrNotFound
	}
	return dtos.NewUserFromModel(*user), nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdministrator(p.Context); err != nil {
		return nil, err
	}
	req := listRequestFromArgs(p.Args)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	users, total, err := r.userService.List(p.Context, req)
	if err != nil {
		return nil, err
	}
	page := dtos.UserPage{Items: make([]dtos.User, 0, len(users)), TotalCount: total}
	for _, user := range users {
		page.Items = append(page.Items, dtos.NewUserFromModel(*user))
	}
	return page, nil
}

func (r *Resolver) resolveUserRoles(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdministrator(p.Context); err != nil {
		return nil, err
	}
	roles, err := r.userService.ListRoles(p.Context)
	if err != nil {
		return nil, err
	}
	out := make([]dtos.UserRole, 0, len(roles))
	for _, role := range roles {
		out = append(out, dtos.NewUserRoleFromModel(*role))
	}
	return out, nil
}

func (r *Resolver) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdministrator(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.CreateUserRequest{
		Username:    stringArg(input, "username"),
		Password:    stringArg(input, "password"),
		DisplayName: stringArg(input, "displayName"),
		RoleName:    stringArg(input, "roleName"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := r.userService.Create(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewUserFromModel(*user), nil
}

func (r *Resolver) resolveUpdateUser(p graphql.ResolveParams) (interface{}, error) {
	if _, err := requireAdministrator(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.UpdateUserRequest{
		ID:          stringArg(input, "id"),
		Username:    stringArg(input, "username"),
		Password:    optStringArg(input, "password"),
		DisplayName: stringArg(input, "displayName"),
		RoleName:    stringArg(input, "roleName"),
		Version:     int64Arg(input, "version"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := r.userService.Update(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewUserFromModel(*user), nil
}

func (r *Resolver) resolveDeleteUser(p graphql.ResolveParams) (interface{}, error) {
	adminID, err := requireAdministrator(p.Context)
	if err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.DeleteRequest{
		ID:      stringArg(input, "id"),
		Version: int64Arg(input, "version"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	id, err := uuidArg(input, "id")
	if err != nil {
		return nil, err
	}
	// Compare canonical forms; the input id may differ in case.
	if id.String() == adminID {
		return nil, newRequestError(utils.ErrCodeForbidden, "Cannot delete your own account")
	}
	if err := r.userService.Delete(p.Context, id, req.Version); err != nil {
		return nil, err
	}
	return true, nil
}
