package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/utils"
)

// resolveMe returns the account behind the access token.
func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	userID, _, err := requireUser(p.Context)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	user, err := r.authService.GetUserByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token subject no longer exists, e.g. the account was deleted
		// after the token was issued.
		return nil, utils.ErrUnauthorized
	}
	return dtos.NewUserFromModel(*user), nil
}

// resolveSignIn authenticates by password; no prior session required.
func (r *Resolver) resolveSignIn(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p.Args)
	req := dtos.SignInRequest{
		Username: stringArg(input, "username"),
		Password: stringArg(input, "password"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, accessToken, refreshToken, err := r.authService.SignIn(
		p.Context, req.Username, req.Password, clientIP(p.Context),
	)
	if err != nil {
		return nil, err
	}
	return dtos.AuthPayload{
		User:         dtos.NewUserFromModel(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// resolveRefreshSession authenticates by possession of the refresh token;
// the access token has usually expired by the time a client calls this.
func (r *Resolver) resolveRefreshSession(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p.Args)
	req := dtos.RefreshSessionRequest{RefreshToken: stringArg(input, "refreshToken")}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	user, accessToken, refreshToken, err := r.authService.RefreshSession(
		p.Context, req.RefreshToken, clientIP(p.Context),
	)
	if err != nil {
		return nil, err
	}
	return dtos.AuthPayload{
		User:         dtos.NewUserFromModel(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (r *Resolver) resolveSignOut(p graphql.ResolveParams) (interface{}, error) {
	input := inputArg(p.Args)
	req := dtos.SignOutRequest{RefreshToken: stringArg(input, "refreshToken")}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	if err := r.authService.SignOut(p.Context, req.RefreshToken); err != nil {
		return nil, err
	}
	return true, nil
}
