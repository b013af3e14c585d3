package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ztrack_backend/internal/model"
)

// StudentRepository wraps the students collection. Lookups that miss return
// (nil, nil) so callers can distinguish "no record" from a store failure.
// Identifier well-formedness is the caller's responsibility; every by-id
// method receives an already-parsed ObjectID.
type StudentRepository interface {
	Insert(ctx context.Context, student *model.Student) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error)
	FindByDNI(ctx context.Context, dni string) (*model.Student, error)
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindAll(ctx context.Context, limit int64) ([]model.Student, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type studentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) StudentRepository {
	return &studentRepository{coll: db.Collection("students")}
}

func (r *studentRepository) Insert(ctx context.Context, student *model.Student) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *studentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Student, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *studentRepository) FindByDNI(ctx context.Context, dni string) (*model.Student, error) {
	return r.findOne(ctx, bson.M{"dni": dni})
}

func (r *studentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *studentRepository) findOne(ctx context.Context, filter bson.M) (*model.Student, error) {
	var student model.Student
	err := r.coll.FindOne(ctx, filter).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepository) FindAll(ctx context.Context, limit int64) ([]model.Student, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	students := make([]model.Student, 0)
	if err := cursor.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *studentRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
