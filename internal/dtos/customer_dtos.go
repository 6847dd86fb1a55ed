package dtos

import (
	"time"

	"github.com/clienthub/customers-service/internal/models"
)

type Customer struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	MiddleName     *string    `json:"middle_name,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Email          *string    `json:"email,omitempty"`
	PhoneNumber    *string    `json:"phone_number,omitempty"`
	CityID         *string    `json:"city_id,omitempty"`
	SocialStatusID *string    `json:"social_status_id,omitempty"`
	Version        int64      `json:"version"`
}

func NewCustomerFromModel(customer models.Customer) Customer {
	dto := Customer{
		ID:          customer.ID.String(),
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		MiddleName:  customer.MiddleName,
		BirthDate:   customer.BirthDate,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Version:     customer.RowVersion,
	}
	if customer.CityID != nil {
		cityID := customer.CityID.String()
		dto.CityID = &cityID
	}
	if customer.SocialStatusID != nil {
		statusID := customer.SocialStatusID.String()
		dto.SocialStatusID = &statusID
	}
	return dto
}

type CustomerPage struct {
	Items      []Customer `json:"items"`
	TotalCount int        `json:"total_count"`
}

// ----------------------
// Requests
// ----------------------

type CreateCustomerRequest struct {
	FirstName      string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string     `json:"last_name" validate:"required,min=1,max=100"`
	MiddleName     *string    `json:"middle_name,omitempty" validate:"omitempty,min=1,max=100"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string    `json:"phone_number,omitempty" validate:"omitempty,min=3,max=30"`
	CityID         *string    `json:"city_id,omitempty" validate:"omitempty,uuid"`
	SocialStatusID *string    `json:"social_status_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateCustomerRequest struct {
	ID             string     `json:"id" validate:"required,uuid"`
	FirstName      string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName       string     `json:"last_name" validate:"required,min=1,max=100"`
	MiddleName     *string    `json:"middle_name,omitempty" validate:"omitempty,min=1,max=100"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber    *string    `json:"phone_number,omitempty" validate:"omitempty,min=3,max=30"`
	CityID         *string    `json:"city_id,omitempty" validate:"omitempty,uuid"`
	SocialStatusID *string    `json:"social_status_id,omitempty" validate:"omitempty,uuid"`
	Version        int64      `json:"version" validate:"required,min=1"`
}
