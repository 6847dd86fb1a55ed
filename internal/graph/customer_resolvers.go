package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/utils"
)

func (r *Resolver) resolveCustomer(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	id, err := uuidArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	customer, err := r.customerService.GetByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, utils.ErrNotFound
	}
	return dtos.NewCustomerFromModel(*customer), nil
}

func (r *Resolver) resolveCustomers(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	req := listRequestFromArgs(p.Args)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	customers, total, err := r.customerService.List(p.Context, req)
	if err != nil {
		return nil, err
	}
	page := dtos.CustomerPage{
		Items:      make([]dtos.Customer, 0, len(customers)),
		TotalCount: total,
	}
	for _, customer := range customers {
		page.Items = append(page.Items, dtos.NewCustomerFromModel(*customer))
	}
	return page, nil
}

func (r *Resolver) resolveCreateCustomer(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.CreateCustomerRequest{
		FirstName:      stringArg(input, "firstName"),
		LastName:       stringArg(input, "lastName"),
		MiddleName:     optStringArg(input, "middleName"),
		BirthDate:      timeArg(input, "birthDate"),
		Email:          optStringArg(input, "email"),
		PhoneNumber:    optStringArg(input, "phoneNumber"),
		CityID:         optStringArg(input, "cityId"),
		SocialStatusID: optStringArg(input, "socialStatusId"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	customer, err := r.customerService.Create(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewCustomerFromModel(*customer), nil
}

func (r *Resolver) resolveUpdateCustomer(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.UpdateCustomerRequest{
		ID:             stringArg(input, "id"),
		FirstName:      stringArg(input, "firstName"),
		LastName:       stringArg(input, "lastName"),
		MiddleName:     optStringArg(input, "middleName"),
		BirthDate:      timeArg(input, "birthDate"),
		Email:          optStringArg(input, "email"),
		PhoneNumber:    optStringArg(input, "phoneNumber"),
		CityID:         optStringArg(input, "cityId"),
		SocialStatusID: optStringArg(input, "socialStatusId"),
		Version:        int64Arg(input, "version"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	customer, err := r.customerService.Update(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewCustomerFromModel(*customer), nil
}

func (r *Resolver) resolveDeleteCustomer(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
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
	if err := r.customerService.Delete(p.Context, id, req.Version); err != nil {
		return nil, err
	}
	return true, nil
}
