package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodID identifies a food. Its text form is the 24 character hex encoding of
// the underlying ObjectID.
type FoodID struct {
	oid primitive.ObjectID
}

// ParseFoodID validates s and returns the identifier it encodes.
func ParseFoodID(s string) (FoodID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return FoodID{}, &InvalidIdentifierError{Value: s}
	}
	return FoodID{oid: oid}, nil
}

// NewFoodID wraps an ObjectID assigned by storage.
func NewFoodID(oid primitive.ObjectID) FoodID {
	return FoodID{oid: oid}
}

// ObjectID returns the storage-native form.
func (id FoodID) ObjectID() primitive.ObjectID {
	return id.oid
}

func (id FoodID) String() string {
	return id.oid.Hex()
}

// IsZero reports whether the id was never assigned.
func (id FoodID) IsZero() bool {
	return id.oid.IsZero()
}
