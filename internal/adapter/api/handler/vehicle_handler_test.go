package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestCriteriaFromQuery(t *testing.T) {
	c := contextWithQuery("q=corolla&min_price=100000&max_price=500000&province=Gauteng&body_types=Sedan,SUV&fuel_types=Petrol&min_year=2018&transmission=Manual&min_engine=1.5")

	criteria := criteriaFromQuery(c)

	assert.Equal(t, "corolla", criteria.Query)
	require.NotNil(t, criteria.MinPrice)
	assert.Equal(t, float64(100000), *criteria.MinPrice)
	require.NotNil(t, criteria.MaxPrice)
	assert.Equal(t, float64(500000), *criteria.MaxPrice)
	assert.Equal(t, "Gauteng", criteria.Province)
	assert.Equal(t, []string{"Sedan", "SUV"}, criteria.BodyTypes)
	assert.Equal(t, []string{"Petrol"}, criteria.FuelTypes)
	require.NotNil(t, criteria.MinYear)
	assert.Equal(t, 2018, *criteria.MinYear)
	assert.Nil(t, criteria.MaxYear)
	assert.Equal(t, "Manual", criteria.Transmission)
	require.NotNil(t, criteria.EngineCapacityMin)
	assert.Equal(t, 1.5, *criteria.EngineCapacityMin)
}

func TestCriteriaFromQueryEmpty(t *testing.T) {
	c := contextWithQuery("")

	criteria := criteriaFromQuery(c)

	assert.True(t, criteria.IsZero())
}

func TestCriteriaFromQueryFormattedPrices(t *testing.T) {
	c := contextWithQuery("min_price=R%20100,000&max_price=R%20500,000.50")

	criteria := criteriaFromQuery(c)

	require.NotNil(t, criteria.MinPrice)
	assert.Equal(t, float64(100000), *criteria.MinPrice)
	require.NotNil(t, criteria.MaxPrice)
	assert.Equal(t, 500000.50, *criteria.MaxPrice)
}

func TestCriteriaFromQueryMalformedNumbers(t *testing.T) {
	c := contextWithQuery("min_price=abc&max_year=soon&min_engine=big")

	criteria := criteriaFromQuery(c)

	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.MaxYear)
	assert.Nil(t, criteria.EngineCapacityMin)
}

func TestCriteriaFromQueryListsTrimWhitespace(t *testing.T) {
	c := contextWithQuery("body_types=Sedan,%20SUV%20,,Hatchback")

	criteria := criteriaFromQuery(c)

	assert.Equal(t, []string{"Sedan", "SUV", "Hatchback"}, criteria.BodyTypes)
}
