package mock

import (
	"context"

	database "github.com/SouvikBuilds/Bengali-Food/config"
	"github.com/SouvikBuilds/Bengali-Food/models"
)

var _ database.FoodStore = &FoodStore{}

// FoodStore is a FoodStore whose behavior is supplied per test. Calling a
// method whose func is nil panics, which makes unexpected storage calls fail
// loudly.
type FoodStore struct {
	ListF   func(context.Context) ([]models.Food, error)
	CreateF func(context.Context, models.Food) (models.Food, error)
	GetF    func(context.Context, models.FoodID) (models.Food, error)
	UpdateF func(context.Context, models.FoodID, models.Food) (int64, error)
	DeleteF func(context.Context, models.FoodID) (int64, error)
	SearchF func(context.Context, string) ([]models.Food, error)
}

func (s *FoodStore) List(ctx context.Context) ([]models.Food, error) {
	return s.ListF(ctx)
}

func (s *FoodStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	return s.CreateF(ctx, food)
}

func (s *FoodStore) Get(ctx context.Context, id models.FoodID) (models.Food, error) {
	return s.GetF(ctx, id)
}

func (s *FoodStore) Update(ctx context.Context, id models.FoodID, food models.Food) (int64, error) {
	return s.UpdateF(ctx, id, food)
}

func (s *FoodStore) Delete(ctx context.Context, id models.FoodID) (int64, error) {
	return s.DeleteF(ctx, id)
}

func (s *FoodStore) Search(ctx context.Context, query string) ([]models.Food, error) {
	return s.SearchF(ctx, query)
}
