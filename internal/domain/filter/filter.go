package filter

import (
	"strings"

	"vroomza/internal/domain/entity"
)

// Apply returns the vehicles satisfying every active predicate in c,
// preserving the relative order of the input. It is a pure function: a
// single linear pass, no I/O, no mutation of the input slice.
func Apply(vehicles []*entity.Vehicle, c Criteria) []*entity.Vehicle {
	matched := make([]*entity.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if Matches(v, c) {
			matched = append(matched, v)
		}
	}
	return matched
}

// Matches evaluates all active predicates against a single vehicle,
// rejecting on the first failure.
func Matches(v *entity.Vehicle, c Criteria) bool {
	if c.Query != "" {
		text := strings.ToLower(v.Make + " " + v.Model + " " + v.Variant)
		if !strings.Contains(text, strings.ToLower(c.Query)) {
			return false
		}
	}

	if c.MinPrice != nil && v.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && v.Price > *c.MaxPrice {
		return false
	}

	if c.Province != "" && v.Province != c.Province {
		return false
	}

	if len(c.BodyTypes) > 0 && !containsString(c.BodyTypes, v.BodyType) {
		return false
	}

	if c.MinYear != nil && v.Year < *c.MinYear {
		return false
	}
	if c.MaxYear != nil && v.Year > *c.MaxYear {
		return false
	}

	if c.MinMileage != nil || c.MaxMileage != nil {
		mileage := ParseMileage(v.Mileage)
		if c.MinMileage != nil && mileage < *c.MinMileage {
			return false
		}
		if c.MaxMileage != nil && mileage > *c.MaxMileage {
			return false
		}
	}

	if len(c.FuelTypes) > 0 && !containsString(c.FuelTypes, v.Fuel) {
		return false
	}

	if c.Transmission != "" && v.Transmission != c.Transmission {
		return false
	}

	if c.EngineCapacityMin != nil || c.EngineCapacityMax != nil {
		liters := ParseEngineLiters(v.EngineCapacity)
		if c.EngineCapacityMin != nil && liters < *c.EngineCapacityMin {
			return false
		}
		if c.EngineCapacityMax != nil && liters > *c.EngineCapacityMax {
			return false
		}
	}

	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
