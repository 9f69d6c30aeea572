package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoolFlag is a boolean that also accepts the legacy "true"/"false" string
// form still sent by older clients for the enrollment payment flag. It is
// stored and emitted as a real boolean.
type BoolFlag bool

func (b *BoolFlag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case bool:
		*b = BoolFlag(val)
	case string:
		switch val {
		case "true":
			*b = true
		case "false":
			*b = false
		default:
			return fmt.Errorf("invalid boolean flag %q", val)
		}
	default:
		return fmt.Errorf("invalid boolean flag %v", v)
	}
	return nil
}

func (b BoolFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Enrollment links a user (by email) to a class they selected. It is created
// unpaid and flips to paid exactly once, when payment is confirmed.
type Enrollment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ClassID       primitive.ObjectID `json:"classId" bson:"classId"`
	ClassName     string             `json:"className" bson:"className"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Instructor    string             `json:"instructor,omitempty" bson:"instructor,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	Email         string             `json:"email" bson:"email"`
	Paid          BoolFlag           `json:"payment" bson:"paid"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
}
