package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class documents are read-only from this API: they are seeded out of band
// and only listed here, sorted by enrollment count.
type Class struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Image           string             `json:"image,omitempty" bson:"image,omitempty"`
	Instructor      string             `json:"instructor" bson:"instructor"`
	InstructorEmail string             `json:"instructorEmail,omitempty" bson:"instructorEmail,omitempty"`
	Price           float64            `json:"price" bson:"price"`
	Seats           int                `json:"seats,omitempty" bson:"seats,omitempty"`
	Students        int                `json:"students" bson:"students"`
}
