package entity

import (
	"time"
)

type SavedVehicle struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	VehicleID string    `json:"vehicle_id" firestore:"vehicleId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type SavedVehicleWithDetails struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	VehicleID string    `json:"vehicle_id"`
	Vehicle   *Vehicle  `json:"vehicle"`
	CreatedAt time.Time `json:"created_at"`
}
