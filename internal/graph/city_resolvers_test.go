package graph

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/clienthub/customers-service/internal/dtos"
	"github.com/clienthub/customers-service/internal/models"
	"github.com/clienthub/customers-service/internal/utils"
)

func TestCityQuery(t *testing.T) {
	f := newFixture()
	city := modelCity("Springfield")
	city.SetRowVersion(4)
	f.cities.getByIDFn = func(ctx context.Context, id uuid.UUID) (*models.City, error) {
		require.Equal(t, city.ID, id)
		return city, nil
	}

	res := f.execute(t, userContext(),
		fmt.Sprintf(`{ city(id: %q) { id cityName version } }`, city.ID))

	data := dataMap(t, res, "city")
	require.Equal(t, city.ID.String(), data["id"])
	require.Equal(t, "Springfield", data["cityName"])
	require.Equal(t, 4, data["version"])
}

func TestCityQueryNotFound(t *testing.T) {
	f := newFixture()

	res := f.execute(t, userContext(),
		fmt.Sprintf(`{ city(id: %q) { id } }`, uuid.New()))
	require.Equal(t, "not_found", errCode(t, res))
}

func TestCityQueryMalformedID(t *testing.T) {
	f := newFixture()

	res := f.execute(t, userContext(), `{ city(id: "not-a-uuid") { id } }`)
	require.Equal(t, "validation_error", errCode(t, res))
}

func TestCitiesQueryReturnsPage(t *testing.T) {
	f := newFixture()
	f.cities.listFn = func(ctx context.Context, req dtos.ListRequest) ([]*models.City, int, error) {
		return []*models.City{modelCity("Springfield"), modelCity("Fairview")}, 7, nil
	}

	res := f.execute(t, userContext(), `{ cities { items { cityName } totalCount } }`)

	data := dataMap(t, res, "cities")
	require.Equal(t, 7, data["totalCount"])
	items, _ := data["items"].([]interface{})
	require.Len(t, items, 2)
}

func TestCreateCity(t *testing.T) {
	f := newFixture()
	var captured dtos.CreateCityRequest
	f.cities.createFn = func(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error) {
		captured = req
		return modelCity(req.CityName), nil
	}

	res := f.execute(t, userContext(),
		`mutation { createCity(input: {cityName: "Springfield"}) { cityName version } }`)

	data := dataMap(t, res, "createCity")
	require.Equal(t, "Springfield", data["cityName"])
	require.Equal(t, 1, data["version"])
	require.Equal(t, "Springfield", captured.CityName)
}

func TestCreateCityBlankNameRejected(t *testing.T) {
	f := newFixture()

	res := f.execute(t, userContext(),
		`mutation { createCity(input: {cityName: ""}) { id } }`)
	require.Equal(t, "validation_error", errCode(t, res))
}

func TestCreateCityDuplicateName(t *testing.T) {
	f := newFixture()
	f.cities.createFn = func(ctx context.Context, req dtos.CreateCityRequest) (*models.City, error) {
		return nil, utils.ErrCityNameExists
	}

	res := f.execute(t, userContext(),
		`mutation { createCity(input: {cityName: "Springfield"}) { id } }`)
	require.Equal(t, "city_name_not_unique", errCode(t, res))
}

func TestUpdateCityStaleVersion(t *testing.T) {
	f := newFixture()
	f.cities.updateFn = func(ctx context.Context, req dtos.UpdateCityRequest) (*models.City, error) {
		return nil, utils.ErrVersionConflict
	}

	res := f.execute(t, userContext(), fmt.Sprintf(
		`mutation { updateCity(input: {id: %q, cityName: "Fairview", version: 2}) { id } }`,
		uuid.New()))
	require.Equal(t, "version_conflict", errCode(t, res))
}

func TestDeleteCityPassesVersion(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	res := f.execute(t, userContext(), fmt.Sprintf(
		`mutation { deleteCity(input: {id: %q, version: 3}) }`, id))

	require.True(t, dataBool(t, res, "deleteCity"))
	require.Equal(t, []deletedEntity{{id, 3}}, f.cities.deleteCalls)
}

func TestDeleteCityStillReferenced(t *testing.T) {
	f := newFixture()
	f.cities.deleteFn = func(ctx context.Context, id uuid.UUID, version int64) error {
		return utils.ErrCityInUse
	}

	res := f.execute(t, userContext(), fmt.Sprintf(
		`mutation { deleteCity(input: {id: %q, version: 1}) }`, uuid.New()))
	require.Equal(t, "city_in_use", errCode(t, res))
}
