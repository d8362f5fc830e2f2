package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a food document as stored in the collection.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Category    string             `bson:"category"`
	Picture     string             `bson:"picture"`
	Ingredients []string           `bson:"ingredients"`
}

// FoodInput is the body accepted by create and update. Pointer fields let
// the validator tell a missing field or a null ingredient apart from an
// empty one.
type FoodInput struct {
	Name        *string   `json:"name" validate:"required,min=1"`
	Category    *string   `json:"category" validate:"required,min=1"`
	Picture     *string   `json:"picture" validate:"required"`
	Ingredients []*string `json:"ingredients" validate:"required,dive,required"`
}

// FoodResponse is the external representation of a food.
type FoodResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Picture     string   `json:"picture"`
	Ingredients []string `json:"ingredients"`
}

// FoodID returns the opaque identifier of a stored food.
func (f Food) FoodID() FoodID {
	return FoodID{oid: f.ID}
}

// Food converts a validated input into a storage-ready document with no id.
func (in FoodInput) Food() Food {
	food := Food{Ingredients: make([]string, 0, len(in.Ingredients))}
	for _, ingredient := range in.Ingredients {
		if ingredient != nil {
			food.Ingredients = append(food.Ingredients, *ingredient)
		}
	}
	if in.Name != nil {
		food.Name = *in.Name
	}
	if in.Category != nil {
		food.Category = *in.Category
	}
	if in.Picture != nil {
		food.Picture = *in.Picture
	}
	return food
}

// ToExternal renders a stored food for the wire.
func ToExternal(food Food) FoodResponse {
	ingredients := food.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}
	return FoodResponse{
		ID:          food.FoodID().String(),
		Name:        food.Name,
		Category:    food.Category,
		Picture:     food.Picture,
		Ingredients: ingredients,
	}
}

// ToExternalList renders every food in order. The result is never nil so it
// encodes as [] rather than null.
func ToExternalList(foods []Food) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for _, food := range foods {
		out = append(out, ToExternal(food))
	}
	return out
}
