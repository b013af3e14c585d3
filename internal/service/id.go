package service

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ztrack_backend/internal/apperror"
)

// parseObjectID checks an id handle before any store round-trip. A malformed
// handle never reaches the repository.
func parseObjectID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperror.InvalidID(what)
	}
	return oid, nil
}
