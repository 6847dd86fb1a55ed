package graph

import "github.com/graphql-go/graphql"

const defaultPageSize = 20

// NewSchema builds the executable schema around the resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	types := newSchemaTypes(r)
	inputs := newSchemaInputs()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryRoot(r, types),
		Mutation: mutationRoot(r, types, inputs),
	})
}

func listArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"filter": &graphql.ArgumentConfig{
			Type:        graphql.String,
			Description: "Case-insensitive substring match on the entity's text columns.",
		},
		"limit":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: defaultPageSize},
		"offset": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
	}
}

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func inputArgOf(input *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
}

func queryRoot(r *Resolver, t *schemaTypes) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:        t.user,
				Description: "The authenticated user.",
				Resolve:     r.resolve("me", r.resolveMe),
			},
			"user": &graphql.Field{
				Type:    t.user,
				Args:    idArg(),
				Resolve: r.resolve("user", r.resolveUser),
			},
			"users": &graphql.Field{
				Type:    t.userPage,
				Args:    listArgs(),
				Resolve: r.resolve("users", r.resolveUsers),
			},
			"userRoles": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(t.userRole)),
				Resolve: r.resolve("userRoles", r.resolveUserRoles),
			},
			"city": &graphql.Field{
				Type:    t.city,
				Args:    idArg(),
				Resolve: r.resolve("city", r.resolveCity),
			},
			"cities": &graphql.Field{
				Type:    t.cityPage,
				Args:    listArgs(),
				Resolve: r.resolve("cities", r.resolveCities),
			},
			"socialStatus": &graphql.Field{
				Type:    t.socialStatus,
				Args:    idArg(),
				Resolve: r.resolve("socialStatus", r.resolveSocialStatus),
			},
			"socialStatuses": &graphql.Field{
				Type:    t.statusPage,
				Args:    listArgs(),
				Resolve: r.resolve("socialStatuses", r.resolveSocialStatuses),
			},
			"customer": &graphql.Field{
				Type:    t.customer,
				Args:    idArg(),
				Resolve: r.resolve("customer", r.resolveCustomer),
			},
			"customers": &graphql.Field{
				Type:    t.customerPage,
				Args:    listArgs(),
				Resolve: r.resolve("customers", r.resolveCustomers),
			},
		},
	})
}

func mutationRoot(r *Resolver, t *schemaTypes, in *schemaInputs) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signIn": &graphql.Field{
				Type:        t.authPayload,
				Description: "Exchanges credentials for an access token and a refresh token.",
				Args:        inputArgOf(in.signIn),
				Resolve:     r.resolve("signIn", r.resolveSignIn),
			},
			"refreshSession": &graphql.Field{
				Type:        t.authPayload,
				Description: "Rotates the refresh token and issues a fresh access token.",
				Args:        inputArgOf(in.refreshSession),
				Resolve:     r.resolve("refreshSession", r.resolveRefreshSession),
			},
			"signOut": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    inputArgOf(in.signOut),
				Resolve: r.resolve("signOut", r.resolveSignOut),
			},

			"createUser": &graphql.Field{
				Type:    t.user,
				Args:    inputArgOf(in.createUser),
				Resolve: r.resolve("createUser", r.resolveCreateUser),
			},
			"updateUser": &graphql.Field{
				Type:    t.user,
				Args:    inputArgOf(in.updateUser),
				Resolve: r.resolve("updateUser", r.resolveUpdateUser),
			},
			"deleteUser": &graphql.Field{
				Type:        graphql.Boolean,
				Description: "Deletes the user and every session it owns in one transaction.",
				Args:        inputArgOf(in.deleteEntity),
				Resolve:     r.resolve("deleteUser", r.resolveDeleteUser),
			},

			"createCity": &graphql.Field{
				Type:    t.city,
				Args:    inputArgOf(in.createCity),
				Resolve: r.resolve("createCity", r.resolveCreateCity),
			},
			"updateCity": &graphql.Field{
				Type:    t.city,
				Args:    inputArgOf(in.updateCity),
				Resolve: r.resolve("updateCity", r.resolveUpdateCity),
			},
			"deleteCity": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    inputArgOf(in.deleteEntity),
				Resolve: r.resolve("deleteCity", r.resolveDeleteCity),
			},

			"createSocialStatus": &graphql.Field{
				Type:    t.socialStatus,
				Args:    inputArgOf(in.createSocialStatus),
				Resolve: r.resolve("createSocialStatus", r.resolveCreateSocialStatus),
			},
			"updateSocialStatus": &graphql.Field{
				Type:    t.socialStatus,
				Args:    inputArgOf(in.updateSocialStatus),
				Resolve: r.resolve("updateSocialStatus", r.resolveUpdateSocialStatus),
			},
			"deleteSocialStatus": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    inputArgOf(in.deleteEntity),
				Resolve: r.resolve("deleteSocialStatus", r.resolveDeleteSocialStatus),
			},

			"createCustomer": &graphql.Field{
				Type:    t.customer,
				Args:    inputArgOf(in.createCustomer),
				Resolve: r.resolve("createCustomer", r.resolveCreateCustomer),
			},
			"updateCustomer": &graphql.Field{
				Type:    t.customer,
				Args:    inputArgOf(in.updateCustomer),
				Resolve: r.resolve("updateCustomer", r.resolveUpdateCustomer),
			},
			"deleteCustomer": &graphql.Field{
				Type:    graphql.Boolean,
				Args:    inputArgOf(in.deleteEntity),
				Resolve: r.resolve("deleteCustomer", r.resolveDeleteCustomer),
			},
		},
	})
}
