package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleInstructor UserRole = "instructor"
	RoleStudent    UserRole = "student"
)

// Valid reports whether the role is one the platform knows about.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	PhotoURL string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Password string             `json:"-" bson:"password,omitempty"`
	Role     UserRole           `json:"role" bson:"role"`
	Updated  time.Time          `json:"updated,omitempty" bson:"updated,omitempty"`
}
