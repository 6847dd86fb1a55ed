package dtos

import (
	"github.com/clienthub/customers-service/internal/models"
)

type City struct {
	ID       string `json:"id"`
	CityName string `json:"city_name"`
	Version  int64  `json:"version"`
}

func NewCityFromModel(city models.City) City {
	return City{
		ID:       city.ID.String(),
		CityName: city.CityName,
		Version:  city.RowVersion,
	}
}

type CityPage struct {
	Items      []City `json:"items"`
	TotalCount int    `json:"total_count"`
}

// ----------------------
// Requests
// ----------------------

type CreateCityRequest struct {
	CityName string `json:"city_name" validate:"required,min=1,max=100"`
}

type UpdateCityRequest struct {
	ID       string `json:"id" validate:"required,uuid"`
	CityName string `json:"city_name" validate:"required,min=1,max=100"`
	Version  int64  `json:"version" validate:"required,min=1"`
}
