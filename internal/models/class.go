package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Class struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClassName string             `bson:"className" json:"className"`
	Sections  []string           `bson:"sections" json:"sections"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
