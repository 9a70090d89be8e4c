package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vroomza/internal/domain/entity"
)

func ids(vehicles []*entity.Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.ID
	}
	return out
}

func TestApplyEmptyCriteriaReturnsInputUnchanged(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{})

	assert.Equal(t, len(input), len(result))
	assert.Equal(t, ids(input), ids(result))
}

func TestApplyPreservesRelativeOrder(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{FuelTypes: []string{"Petrol"}})

	assert.Equal(t, []string{"1", "2", "5", "6", "7", "8", "9"}, ids(result))
}

func TestApplyAddingConstraintsNeverAddsMatches(t *testing.T) {
	input := sampleVehicles()

	byProvince := Apply(input, Criteria{Province: "Gauteng"})
	byBoth := Apply(input, Criteria{Province: "Gauteng", FuelTypes: []string{"Diesel"}})

	assert.LessOrEqual(t, len(byBoth), len(byProvince))
	for _, v := range byBoth {
		assert.Contains(t, ids(byProvince), v.ID)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	input := sampleVehicles()
	criteria := Criteria{Province: "Western Cape", MaxPrice: floatPtr(600000)}

	once := Apply(input, criteria)
	twice := Apply(once, criteria)

	assert.Equal(t, ids(once), ids(twice))
}

func TestQueryMatchesSubstringCaseInsensitive(t *testing.T) {
	input := sampleVehicles()

	for _, query := range []string{"toyota", "TOY", "Yota"} {
		result := Apply(input, Criteria{Query: query})
		assert.Equal(t, []string{"1", "9"}, ids(result), "query %q", query)
	}
}

func TestQueryMatchesAcrossMakeModelVariant(t *testing.T) {
	input := sampleVehicles()

	assert.Equal(t, []string{"2"}, ids(Apply(input, Criteria{Query: "gti"})))
	assert.Equal(t, []string{"4"}, ids(Apply(input, Criteria{Query: "wildtrak"})))
	assert.Empty(t, Apply(input, Criteria{Query: "lamborghini"}))
}

func TestPriceBoundsAreInclusive(t *testing.T) {
	vehicles := []*entity.Vehicle{{ID: "a", Price: 25000}}

	assert.Len(t, Apply(vehicles, Criteria{MinPrice: floatPtr(25000)}), 1)
	assert.Len(t, Apply(vehicles, Criteria{MaxPrice: floatPtr(25000)}), 1)
	assert.Empty(t, Apply(vehicles, Criteria{MaxPrice: floatPtr(24999)}))
	assert.Empty(t, Apply(vehicles, Criteria{MinPrice: floatPtr(25001)}))
}

func TestYearBoundsAreInclusive(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{MinYear: intPtr(2022), MaxYear: intPtr(2022)})

	assert.Equal(t, []string{"1", "5", "7"}, ids(result))
}

func TestMalformedMileageParsesToZero(t *testing.T) {
	vehicles := []*entity.Vehicle{{ID: "a", Mileage: "N/A"}}

	// 0 fails the lower bound instead of raising.
	assert.Empty(t, Apply(vehicles, Criteria{MinMileage: intPtr(1)}))
	assert.Len(t, Apply(vehicles, Criteria{MaxMileage: intPtr(10)}), 1)
}

func TestMileageBoundsStripFormatting(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{MaxMileage: intPtr(15000)})

	assert.Equal(t, []string{"1", "5", "7"}, ids(result))
}

func TestBodyTypeMembership(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{BodyTypes: []string{"Sedan", "SUV"}})

	assert.Equal(t, []string{"1", "3", "5", "6", "8"}, ids(result))

	// Empty set admits every body type.
	assert.Len(t, Apply(input, Criteria{BodyTypes: []string{}}), len(input))
}

func TestFuelTypeMembership(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{FuelTypes: []string{"Diesel"}})

	assert.Equal(t, []string{"3", "4"}, ids(result))
}

func TestTransmissionExactMatch(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{Transmission: "Manual"})

	assert.Equal(t, []string{"9"}, ids(result))
}

func TestMissingEngineCapacityFailsMinimumBound(t *testing.T) {
	vehicles := []*entity.Vehicle{{ID: "a", EngineCapacity: ""}}

	assert.Empty(t, Apply(vehicles, Criteria{EngineCapacityMin: floatPtr(1.0)}))
	assert.Len(t, Apply(vehicles, Criteria{EngineCapacityMax: floatPtr(8.0)}), 1)
}

func TestEngineCapacityStripsUnitSuffix(t *testing.T) {
	input := sampleVehicles()

	result := Apply(input, Criteria{EngineCapacityMin: floatPtr(2.5)})

	assert.Equal(t, []string{"3"}, ids(result))
}

func TestWesternCapeUnderPriceCap(t *testing.T) {
	input := sampleVehicles()

	// At 500k only the Corolla (389,900) clears the cap; the Audi A3
	// (549,900) and the AE86 (850,000) are both priced out.
	result := Apply(input, Criteria{Province: "Western Cape", MaxPrice: floatPtr(500000)})
	assert.Equal(t, []string{"1"}, ids(result))

	// Raising the cap to 600k brings the A3 in; the AE86 stays out.
	result = Apply(input, Criteria{Province: "Western Cape", MaxPrice: floatPtr(600000)})
	assert.Equal(t, []string{"1", "7"}, ids(result))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := sampleVehicles()
	before := ids(input)

	Apply(input, Criteria{Province: "Gauteng"})

	assert.Equal(t, before, ids(input))
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.True(t, Criteria{BodyTypes: []string{}}.IsZero())
	assert.False(t, Criteria{Query: "golf"}.IsZero())
	assert.False(t, Criteria{MinPrice: floatPtr(0)}.IsZero())
}
