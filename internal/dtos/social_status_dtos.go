package dtos

import (
	"github.com/clienthub/customers-service/internal/models"
)

type SocialStatus struct {
	ID               string `json:"id"`
	SocialStatusName string `json:"social_status_name"`
	Version          int64  `json:"version"`
}

func NewSocialStatusFromModel(status models.SocialStatus) SocialStatus {
	return SocialStatus{
		ID:               status.ID.String(),
		SocialStatusName: status.SocialStatusName,
		Version:          status.RowVersion,
	}
}

type SocialStatusPage struct {
	Items      []SocialStatus `json:"items"`
	TotalCount int            `json:"total_count"`
}

// ----------------------
// Requests
// ----------------------

type CreateSocialStatusRequest struct {
	SocialStatusName string `json:"social_status_name" validate:"required,min=1,max=100"`
}

type UpdateSocialStatusRequest struct {
	ID               string `json:"id" validate:"required,uuid"`
	SocialStatusName string `json:"social_status_name" validate:"required,min=1,max=100"`
	Version          int64  `json:"version" validate:"required,min=1"`
}
