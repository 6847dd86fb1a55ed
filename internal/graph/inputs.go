package graph

import "github.com/graphql-go/graphql"

// schemaInputs holds the mutation input object types.
type schemaInputs struct {
	signIn             *graphql.InputObject
	refreshSession     *graphql.InputObject
	signOut            *graphql.InputObject
	createUser         *graphql.InputObject
	updateUser         *graphql.InputObject
	createCity         *graphql.InputObject
	updateCity         *graphql.InputObject
	createSocialStatus *graphql.InputObject
	updateSocialStatus *graphql.InputObject
	createCustomer     *graphql.InputObject
	updateCustomer     *graphql.InputObject
	deleteEntity       *graphql.InputObject
}

func newSchemaInputs() *schemaInputs {
	in := &schemaInputs{}

	in.signIn = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignInInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.refreshSession = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "RefreshSessionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"refreshToken": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.signOut = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "SignOutInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"refreshToken": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.createUser = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"username":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"displayName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"roleName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.updateUser = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateUserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password": &graphql.InputObjectFieldConfig{
				Type:        graphql.String,
				Description: "Omit to keep the current password.",
			},
			"displayName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"roleName":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"version":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	in.createCity = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCityInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"cityName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.updateCity = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateCityInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"cityName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"version":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	in.createSocialStatus = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateSocialStatusInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"socialStatusName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	in.updateSocialStatus = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UpdateSocialStatusInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":               &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"socialStatusName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"version":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	customerFields := func() graphql.InputObjectConfigFieldMap {
		return graphql.InputObjectConfigFieldMap{
			"firstName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"lastName":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"middleName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"birthDate": &graphql.InputObjectFieldConfig{
				Type:        graphql.DateTime,
				Description: "RFC 3339 timestamp.",
			},
			"email":          &graphql.InputObjectFieldConfig{Type: graphql.String},
			"phoneNumber":    &graphql.InputObjectFieldConfig{Type: graphql.String},
			"cityId":         &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"socialStatusId": &graphql.InputObjectFieldConfig{Type: graphql.ID},
		}
	}

	in.createCustomer = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "CreateCustomerInput",
		Fields: customerFields(),
	})

	updateCustomerFields := customerFields()
	updateCustomerFields["id"] = &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)}
	updateCustomerFields["version"] = &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)}
	in.updateCustomer = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   "UpdateCustomerInput",
		Fields: updateCustomerFields,
	})

	in.deleteEntity = graphql.NewInputObject(graphql.InputObjectConfig{
		Name:        "DeleteInput",
		Description: "Identifies the row and the version the caller read.",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"version": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	return in
}
