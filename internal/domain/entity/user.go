package entity

import (
	"time"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	FirstName string `json:"first_name" firestore:"firstName"`
	LastName  string `json:"last_name" firestore:"lastName"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`

	Suburb   string `json:"suburb,omitempty" firestore:"suburb,omitempty"`
	City     string `json:"city,omitempty" firestore:"city,omitempty"`
	Province string `json:"province,omitempty" firestore:"province,omitempty"`

	ProfilePic string `json:"profile_pic,omitempty" firestore:"profilePic,omitempty"`

	// Provider is the login method: email, google, facebook or apple.
	Provider string `json:"provider" firestore:"provider"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// FullName joins first and last name the way listings snapshot it.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// ProfileComplete reports whether the user can publish a listing.
func (u *User) ProfileComplete() bool {
	return u.FirstName != "" && u.LastName != "" && u.Phone != "" &&
		u.Suburb != "" && u.City != "" && u.Province != ""
}
