package models

import "time"

// Employee is a schedulable resource. Only the fields the availability
// service reads are modeled here; profile data lives with the HR features.
type Employee struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	RoleIDs   []string  `bson:"role_ids" json:"role_ids"` // Roles the employee can be booked under
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
