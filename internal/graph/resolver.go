package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/metrics"
	"github.com/clienthub/customers-service/internal/middleware"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/services"
	"github.com/clienthub/customers-service/internal/utils"
)

// Resolver bundles the services the GraphQL operations delegate to.
type Resolver struct {
	authService         services.AuthService
	userService         services.UserService
	cityService         services.CityService
	socialStatusService services.SocialStatusService
	customerService     services.CustomerService
}

func NewResolver(
	authService services.AuthService,
	userService services.UserService,
	cityService services.CityService,
	socialStatusService services.SocialStatusService,
	customerService services.CustomerService,
) *Resolver {
	return &Resolver{
		authService:         authService,
		userService:         userService,
		cityService:         cityService,
		socialStatusService: socialStatusService,
		customerService:     customerService,
	}
}

// resolve wraps a top-level field resolver with metrics collection and
// domain-error mapping. Field resolvers below the roots stay unwrapped.
func (r *Resolver) resolve(operation string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		start := time.Now()
		result, err := fn(p)
		if err != nil {
			metrics.RecordOperation(operation, time.Since(start), true)
			return nil, mapDomainError(operation, err)
		}
		metrics.RecordOperation(operation, time.Since(start), false)
		return result, nil
	}
}

// ---------------------------------------------------------------------------
// caller identity
// ---------------------------------------------------------------------------

// currentUser reads the identity the auth middleware placed in the context.
func currentUser(ctx context.Context) (id string, role string, ok bool) {
	id, ok = ctx.Value(middleware.ContextKeyUserID).(string)
	role, _ = ctx.Value(middleware.ContextKeyUserRole).(string)
	return id, role, ok && id != ""
}

func requireUser(ctx context.Context) (string, string, error) {
	id, role, ok := currentUser(ctx)
	if !ok {
		return "", "", utils.ErrUnauthorized
	}
	return id, role, nil
}

func requireAdministrator(ctx context.Context) (string, error) {
	id, role, err := requireUser(ctx)
	if err != nil {
		return "", err
	}
	if role != string(models.UserRoleAdministrator) {
		return "", utils.ErrForbidden
	}
	return id, nil
}

// clientIP reads the caller address the GraphQL controller stored for the
// session mutations.
func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(middleware.ContextKeyClientIP).(string)
	return ip
}

// ---------------------------------------------------------------------------
// argument helpers
// ---------------------------------------------------------------------------

// inputArg returns the `input` object of a mutation. Missing or mistyped
// input yields an empty map; the DTO validators then report the absent
// fields.
func inputArg(args map[string]interface{}) map[string]interface{} {
	input, _ := args["input"].(map[string]interface{})
	return input
}

func stringArg(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func optStringArg(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func intArg(m map[string]interface{}, key string) int {
	v, _ := m[key].(int)
	return v
}

func int64Arg(m map[string]interface{}, key string) int64 {
	return int64(intArg(m, key))
}

func timeArg(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key].(time.Time); ok {
		return &v
	}
	return nil
}

// listRequestFromArgs reads the shared filter/limit/offset arguments. The
// schema supplies defaults for limit and offset, so absent means the
// client sent an explicit null.
func listRequestFromArgs(args map[string]interface{}) dtos.ListRequest {
	return dtos.ListRequest{
		Filter: stringArg(args, "filter"),
		Limit:  intArg(args, "limit"),
		Offset: intArg(args, "offset"),
	}
}

func uuidArg(m map[string]interface{}, key string) (uuid.UUID, error) {
	raw := stringArg(m, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, newRequestError(
			utils.ErrCodeValidation, fmt.Sprintf("Argument '%s' must be a UUID", key),
		)
	}
	return id, nil
}
