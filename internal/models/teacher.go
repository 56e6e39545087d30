package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role separates the two kinds of staff accounts.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeacher
}

// ClassAssignment ties a teacher to one class/section pair.
type ClassAssignment struct {
	ClassName string `bson:"className" json:"className"`
	Section   string `bson:"section" json:"section"`
}

// Teacher is a staff account. Email carries a unique index; passwords
// and sessions live with the external identity provider, not here.
type Teacher struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name" json:"name"`
	Role            Role               `bson:"role" json:"role"`
	AssignedClasses []ClassAssignment  `bson:"assignedClasses" json:"assignedClasses"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
