package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/utils"
)

func (r *Resolver) resolveSocialStatus(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	id, err := uuidArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	status, err := r.socialStatusService.GetByID(p.Context, id)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, utils.ErrNotFound
	}
	return dtos.NewSocialStatusFromModel(*status), nil
}

func (r *Resolver) resolveSocialStatuses(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	req := listRequestFromArgs(p.Args)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	statuses, total, err := r.socialStatusService.List(p.Context, req)
	if err != nil {
		return nil, err
	}
	page := dtos.SocialStatusPage{
		Items:      make([]dtos.SocialStatus, 0, len(statuses)),
		TotalCount: total,
	}
	for _, status := range statuses {
		page.Items = append(page.Items, dtos.NewSocialStatusFromModel(*status))
	}
	return page, nil
}

func (r *Resolver) resolveCreateSocialStatus(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.CreateSocialStatusRequest{
		SocialStatusName: stringArg(input, "socialStatusName"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	status, err := r.socialStatusService.Create(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewSocialStatusFromModel(*status), nil
}

func (r *Resolver) resolveUpdateSocialStatus(p graphql.ResolveParams) (interface{}, error) {
	if _, _, err := requireUser(p.Context); err != nil {
		return nil, err
	}
	input := inputArg(p.Args)
	req := dtos.UpdateSocialStatusRequest{
		ID:               stringArg(input, "id"),
		SocialStatusName: stringArg(input, "socialStatusName"),
		Version:          int64Arg(input, "version"),
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	status, err := r.socialStatusService.Update(p.Context, req)
	if err != nil {
		return nil, err
	}
	return dtos.NewSocialStatusFromModel(*status), nil
}

func (r *Resolver) resolveDeleteSocialStatus(p graphql.ResolveParams) (interface{}, error) {
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
	if err := r.socialStatusService.Delete(p.Context, id, req.Version); err != nil {
		return nil, err
	}
	return true, nil
}
