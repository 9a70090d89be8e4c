package filter

// Criteria is the full set of optional listing filters a caller may
// supply. Nil pointers and empty strings/slices impose no constraint;
// all supplied predicates are combined with a logical AND.
type Criteria struct {
	// Query is matched case-insensitively as a substring of
	// "make model variant".
	Query string

	MinPrice *float64
	MaxPrice *float64

	Province string

	// BodyTypes and FuelTypes are membership filters; an empty slice
	// admits every value.
	BodyTypes []string
	FuelTypes []string

	MinYear *int
	MaxYear *int

	MinMileage *int
	MaxMileage *int

	Transmission string

	EngineCapacityMin *float64
	EngineCapacityMax *float64
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" &&
		c.MinPrice == nil && c.MaxPrice == nil &&
		c.Province == "" &&
		len(c.BodyTypes) == 0 && len(c.FuelTypes) == 0 &&
		c.MinYear == nil && c.MaxYear == nil &&
		c.MinMileage == nil && c.MaxMileage == nil &&
		c.Transmission == "" &&
		c.EngineCapacityMin == nil && c.EngineCapacityMax == nil
}
