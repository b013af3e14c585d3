package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam references its owning student by the hex form of the student's id.
// The reference is non-owning: deleting the student leaves the exam behind.
type Exam struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id"`
	Subject   string             `bson:"subject" json:"subject"`
	Score     float64            `bson:"score" json:"score"`
	ExamDate  time.Time          `bson:"exam_date" json:"exam_date"`
}
