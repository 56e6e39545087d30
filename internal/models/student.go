package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	RollNumber    string             `bson:"rollNumber" json:"rollNumber"`
	Class         string             `bson:"class" json:"class"`
	Section       string             `bson:"section" json:"section"`
	DOB           *time.Time         `bson:"dob,omitempty" json:"dob,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	ParentContact string             `bson:"parentContact,omitempty" json:"parentContact,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
