package database

import (
	"context"
	"regexp"

	"github.com/SouvikBuilds/Bengali-Food/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodStore is the persistence contract the HTTP handlers depend on. Each
// method issues a single operation against the collection.
type FoodStore interface {
	List(ctx context.Context) ([]models.Food, error)
	Create(ctx context.Context, food models.Food) (models.Food, error)
	Get(ctx context.Context, id models.FoodID) (models.Food, error)
	// Update replaces every field except the id and reports how many
	// documents were modified.
	Update(ctx context.Context, id models.FoodID, food models.Food) (int64, error)
	Delete(ctx context.Context, id models.FoodID) (int64, error)
	Search(ctx context.Context, query string) ([]models.Food, error)
}

// MongoFoodStore is a FoodStore backed by a MongoDB collection.
type MongoFoodStore struct {
	collection *mongo.Collection
}

var _ FoodStore = (*MongoFoodStore)(nil)

func NewMongoFoodStore(collection *mongo.Collection) *MongoFoodStore {
	return &MongoFoodStore{collection: collection}
}

func (s *MongoFoodStore) List(ctx context.Context) ([]models.Food, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoFoodStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	food.ID = primitive.NilObjectID
	result, err := s.collection.InsertOne(ctx, food)
	if err != nil {
		return models.Food{}, errors.Wrap(err, "inserting food")
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Food{}, errors.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return s.Get(ctx, models.NewFoodID(oid))
}

func (s *MongoFoodStore) Get(ctx context.Context, id models.FoodID) (models.Food, error) {
	var food models.Food
	err := s.collection.FindOne(ctx, idFilter(id)).Decode(&food)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Food{}, models.ErrNotFound
	}
	if err != nil {
		return models.Food{}, errors.Wrapf(err, "finding food %s", id)
	}
	return food, nil
}

func (s *MongoFoodStore) Update(ctx context.Context, id models.FoodID, food models.Food) (int64, error) {
	update := bson.M{"$set": bson.M{
		"name":        food.Name,
		"category":    food.Category,
		"picture":     food.Picture,
		"ingredients": food.Ingredients,
	}}
	result, err := s.collection.UpdateOne(ctx, idFilter(id), update)
	if err != nil {
		return 0, errors.Wrapf(err, "updating food %s", id)
	}
	return result.ModifiedCount, nil
}

func (s *MongoFoodStore) Delete(ctx context.Context, id models.FoodID) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return 0, errors.Wrapf(err, "deleting food %s", id)
	}
	return result.DeletedCount, nil
}

func (s *MongoFoodStore) Search(ctx context.Context, query string) ([]models.Food, error) {
	return s.find(ctx, SearchFilter(query))
}

func (s *MongoFoodStore) find(ctx context.Context, filter interface{}) ([]models.Food, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "finding foods")
	}
	defer cursor.Close(ctx)

	foods := []models.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, errors.Wrap(err, "decoding foods")
	}
	return foods, nil
}

func idFilter(id models.FoodID) bson.M {
	return bson.M{"_id": id.ObjectID()}
}

// SearchFilter matches foods whose name contains query in any letter case.
// The query is quoted so it is matched literally.
func SearchFilter(query string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: regexp.QuoteMeta(query),
		Options: "i",
	}}
}
