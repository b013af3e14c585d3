package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ztrack_backend/internal/model"
)

type ExamRepository interface {
	Insert(ctx context.Context, exam *model.Exam) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Exam, error)
	FindByStudentID(ctx context.Context, studentID string) ([]model.Exam, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type examRepository struct {
	coll *mongo.Collection
}

func NewExamRepository(db *mongo.Database) ExamRepository {
	return &examRepository{coll: db.Collection("exams")}
}

func (r *examRepository) Insert(ctx context.Context, exam *model.Exam) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, exam)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *examRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Exam, error) {
	var exam model.Exam
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&exam)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &exam, nil
}

// FindByStudentID matches the stored string reference; there is no index on
// student_id, so this is a collection scan by design of the data model.
func (r *examRepository) FindByStudentID(ctx context.Context, studentID string) ([]model.Exam, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	exams := make([]model.Exam, 0)
	if err := cursor.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *examRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
