package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/utils"
)

func (r *Resolver) resolveCity(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	id, err := uuidArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	city, err := r.cityService.GetByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, utils.ErrNotFound
	}
	return dtos.NewCityFromModel(*city), nil
}

func (r *Resolver) resolveCities(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	req := listRequestFromArgs(p.Args)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	cities, total, err := r.cityService.List(p.Context, req)
	if err != nil {
		return nil, err
	}
	page := dtos.CityPage{Items: make([]dtos.City, 0, len(cities)), TotalCount: total}
	for _, city := range cities {
		page.Items = append(page.Items, dtos.NewCityFromModel(*city))
	}
	return page, nil
}

func (r *Resolver) resolveCreateCity(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.CreateCityRequest{CityName: stringArg(input, "cityName")}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	city, err := r.cityService.Create(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewCityFromModel(*city), nil
}

func (r *Resolver) resolveUpdateCity(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.UpdateCityRequest{
		ID:       stringArg(input, "id"),
		CityName: stringArg(input, "cityName"),
		Version:  int64Arg(input, "version"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	city, err := r.cityService.Update(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewCityFromModel(*city), nil
}

func (r *Resolver) resolveDeleteCity(p graphql.ResolveParams) (interface{}, error) {
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
	if err := r.cityService.Delete(p.Context, id, req.Version); err != nil {
		return nil, err
	}
	return true, nil
}
