package filter

import (
	"vroomza/internal/domain/entity"
)

// sampleVehicles mirrors the marketplace's demo dataset: nine listings
// spread across provinces, body types and price bands.
func sampleVehicles() []*entity.Vehicle {
	return []*entity.Vehicle{
		{
			ID: "1", Make: "Toyota", Model: "Corolla", Variant: "1.8 XR CVT",
			Year: 2022, Price: 389900, Mileage: "15,000",
			City: "Cape Town", Province: "Western Cape",
			BodyType: "Sedan", Fuel: "Petrol", EngineCapacity: "1.8L", Transmission: "Automatic",
		},
		{
			ID: "2", Make: "Volkswagen", Model: "Golf", Variant: "GTI",
			Year: 2021, Price: 459900, Mileage: "25,000",
			City: "Johannesburg", Province: "Gauteng",
			BodyType: "Hatchback", Fuel: "Petrol", EngineCapacity: "2.0L", Transmission: "Automatic",
		},
		{
			ID: "3", Make: "BMW", Model: "X5", Variant: "xDrive30d",
			Year: 2020, Price: 899900, Mileage: "45,000",
			City: "Durban", Province: "KwaZulu-Natal",
			BodyType: "SUV", Fuel: "Diesel", EngineCapacity: "3.0L", Transmission: "Automatic",
		},
		{
			ID: "4", Make: "Ford", Model: "Ranger", Variant: "2.0 Bi-Turbo Wildtrak",
			Year: 2021, Price: 629900, Mileage: "35,000",
			City: "Pretoria", Province: "Gauteng",
			BodyType: "Double Cab", Fuel: "Diesel", EngineCapacity: "2.0L", Transmission: "Automatic",
		},
		{
			ID: "5", Make: "Mercedes-Benz", Model: "C-Class", Variant: "C200 AMG Line",
			Year: 2022, Price: 759900, Mileage: "10,000",
			City: "Bloemfontein", Province: "Free State",
			BodyType: "Sedan", Fuel: "Petrol", EngineCapacity: "2.0L", Transmission: "Automatic",
		},
		{
			ID: "6", Make: "Honda", Model: "Civic", Variant: "1.5T Executive",
			Year: 2021, Price: 429900, Mileage: "20,000",
			City: "Port Elizabeth", Province: "Eastern Cape",
			BodyType: "Sedan", Fuel: "Petrol", EngineCapacity: "1.5L", Transmission: "Automatic",
		},
		{
			ID: "7", Make: "Audi", Model: "A3", Variant: "Sportback 35 TFSI S line",
			Year: 2022, Price: 549900, Mileage: "5,000",
			City: "Cape Town", Province: "Western Cape",
			BodyType: "Hatchback", Fuel: "Petrol", EngineCapacity: "1.4L", Transmission: "Automatic",
		},
		{
			ID: "8", Make: "Hyundai", Model: "Tucson", Variant: "2.0 Elite",
			Year: 2021, Price: 479900, Mileage: "30,000",
			City: "Johannesburg", Province: "Gauteng",
			BodyType: "SUV", Fuel: "Petrol", EngineCapacity: "2.0L", Transmission: "Automatic",
		},
		{
			ID: "9", Make: "Toyota", Model: "AE86", Variant: "Trueno Apex",
			Year: 1986, Price: 850000, Mileage: "86,000",
			City: "Franschhoek", Province: "Western Cape",
			BodyType: "Coupe", Fuel: "Petrol", EngineCapacity: "1.6L", Transmission: "Manual",
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
