package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DNI           string             `bson:"dni" json:"dni"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Age           int                `bson:"age" json:"age"`
	Gender        string             `bson:"gender" json:"gender"`
	Classroom     string             `bson:"classroom" json:"classroom"`
	Address       *string            `bson:"address,omitempty" json:"address,omitempty"`
	GuardianName  *string            `bson:"guardian_name,omitempty" json:"guardian_name,omitempty"`
	GuardianPhone *string            `bson:"guardian_phone,omitempty" json:"guardian_phone,omitempty"`
	PhotoURL      *string            `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
}
