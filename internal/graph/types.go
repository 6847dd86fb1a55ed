package graph

import (
	"github.com/google/uuid"
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
)

// schemaTypes holds the output object types the roots are built from.
type schemaTypes struct {
	userRole     *graphql.Object
	user         *graphql.Object
	userPage     *graphql.Object
	authPayload  *graphql.Object
	city         *graphql.Object
	cityPage     *graphql.Object
	socialStatus *graphql.Object
	statusPage   *graphql.Object
	customer     *graphql.Object
	customerPage *graphql.Object
}

// newSchemaTypes builds the object types. Every field carries an explicit
// resolver over its DTO so the GraphQL names stay decoupled from the JSON
// tags.
func newSchemaTypes(r *Resolver) *schemaTypes {
	t := &schemaTypes{}

	t.userRole = graphql.NewObject(graphql.ObjectConfig{
		Name:        "UserRole",
		Description: "A seeded role reference row.",
		Fields: graphql.Fields{
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(roleSource(p).Name), nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return roleSource(p).Description, nil
				},
			},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name:        "User",
		Description: "A service account. The password hash never leaves the server.",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p).ID, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p).Username, nil
				},
			},
			"displayName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p).DisplayName, nil
				},
			},
			"roleName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return string(userSource(p).RoleName), nil
				},
			},
			"version": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userSource(p).Version, nil
				},
			},
		},
	})

	t.userPage = pageType("UserPage", t.user, func(p graphql.ResolveParams) (interface{}, error) {
		page, _ := p.Source.(dtos.UserPage)
		return page.Items, nil
	}, func(p graphql.ResolveParams) (interface{}, error) {
		page, _ := p.Source.(dtos.UserPage)
		return page.TotalCount, nil
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name:        "AuthPayload",
		Description: "The signed access token and refresh token issued with the user.",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: graphql.NewNonNull(t.user),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return authSource(p).User, nil
				},
			},
			"accessToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return authSource(p).AccessToken, nil
				},
			},
			"refreshToken": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return authSource(p).RefreshToken, nil
				},
			},
		},
	})

	t.city = graphql.NewObject(graphql.ObjectConfig{
		Name: "City",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return citySource(p).ID, nil
				},
			},
			"cityName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return citySource(p).CityName, nil
				},
			},
			"version": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return citySource(p).Version, nil
				},
			},
		},
	})

	t.cityPage = pageType("CityPage", t.city, func(p graphql.ResolveParams) (interface{}, error) {
		page, _ := p.Source.(dtos.CityPage)
		return page.Items, nil
	}, func(p graphql.ResolveParams) (interface{}, error) {
		page, _ := p.Source.(dtos.CityPage)
		return page.TotalCount, nil
	})

	t.socialStatus = graphql.NewObject(graphql.ObjectConfig{
		Name: "SocialStatus",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return statusSource(p).ID, nil
				},
			},
			"socialStatusName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return statusSource(p).SocialStatusName, nil
				},
			},
			"version": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return statusSource(p).Version, nil
				},
			},
		},
	})

	t.statusPage = pageType("SocialStatusPage", t.socialStatus,
		func(p graphql.ResolveParams) (interface{}, error) {
			page, _ := p.Source.(dtos.SocialStatusPage)
			return page.Items, nil
		}, func(p graphql.ResolveParams) (interface{}, error) {
			page, _ := p.Source.(dtos.SocialStatusPage)
			return page.TotalCount, nil
		})

	t.customer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).ID, nil
				},
			},
			"firstName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).FirstName, nil
				},
			},
			"lastName": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).LastName, nil
				},
			},
			"middleName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).MiddleName, nil
				},
			},
			"birthDate": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).BirthDate, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).Email, nil
				},
			},
			"phoneNumber": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).PhoneNumber, nil
				},
			},
			"cityId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).CityID, nil
				},
			},
			"socialStatusId": &graphql.Field{
				Type: graphql.ID,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).SocialStatusID, nil
				},
			},
			"city": &graphql.Field{
				Type:        t.city,
				Description: "The referenced city, resolved on demand.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c := customerSource(p)
					if c.CityID == nil {
						return nil, nil
					}
					id, err := uuid.Parse(*c.CityID)
					if err != nil {
						return nil, nil
					}
					city, err := r.cityService.GetByID(p.Context, id)
					if err != nil || city == nil {
						return nil, err
					}
					return dtos.NewCityFromModel(*city), nil
				},
			},
			"socialStatus": &graphql.Field{
				Type:        t.socialStatus,
				Description: "The referenced social status, resolved on demand.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c := customerSource(p)
					if c.SocialStatusID == nil {
						return nil, nil
					}
					id, err := uuid.Parse(*c.SocialStatusID)
					if err != nil {
						return nil, nil
					}
					status, err := r.socialStatusService.GetByID(p.Context, id)
					if err != nil || status == nil {
						return nil, err
					}
					return dtos.NewSocialStatusFromModel(*status), nil
				},
			},
			"version": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerSource(p).Version, nil
				},
			},
		},
	})

	t.customerPage = pageType("CustomerPage", t.customer,
		func(p graphql.ResolveParams) (interface{}, error) {
			page, _ := p.Source.(dtos.CustomerPage)
			return page.Items, nil
		}, func(p graphql.ResolveParams) (interface{}, error) {
			page, _ := p.Source.(dtos.CustomerPage)
			return page.TotalCount, nil
		})

	return t
}

// pageType builds an items-plus-total page wrapper around an item type.
func pageType(
	name string,
	item *graphql.Object,
	items graphql.FieldResolveFn,
	total graphql.FieldResolveFn,
) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"items": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(item))),
				Resolve: items,
			},
			"totalCount": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: total,
			},
		},
	})
}

// ---------------------------------------------------------------------------
// source casts
// ---------------------------------------------------------------------------

func userSource(p graphql.ResolveParams) dtos.User {
	u, _ := p.Source.(dtos.User)
	return u
}

func roleSource(p graphql.ResolveParams) dtos.UserRole {
	r, _ := p.Source.(dtos.UserRole)
	return r
}

func authSource(p graphql.ResolveParams) dtos.AuthPayload {
	a, _ := p.Source.(dtos.AuthPayload)
	return a
}

func citySource(p graphql.ResolveParams) dtos.City {
	c, _ := p.Source.(dtos.City)
	return c
}

func statusSource(p graphql.ResolveParams) dtos.SocialStatus {
	s, _ := p.Source.(dtos.SocialStatus)
	return s
}

func customerSource(p graphql.ResolveParams) dtos.Customer {
	c, _ := p.Source.(dtos.Customer)
	return c
}
