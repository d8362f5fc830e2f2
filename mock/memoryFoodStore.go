package mock

import (
	"context"
	"reflect"
	"strings"
	"sync"

	database "github.com/SouvikBuilds/Bengali-Food/config"
	"github.com/SouvikBuilds/Bengali-Food/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ database.FoodStore = &MemoryFoodStore{}

// MemoryFoodStore keeps foods in insertion order and mirrors the collection's
// observable behavior, including modified counts on update.
type MemoryFoodStore struct {
	mu    sync.Mutex
	foods []models.Food
}

func NewMemoryFoodStore(foods ...models.Food) *MemoryFoodStore {
	s := &MemoryFoodStore{}
	for _, f := range foods {
		if f.ID.IsZero() {
			f.ID = primitive.NewObjectID()
		}
		s.foods = append(s.foods, clone(f))
	}
	return s
}

func (s *MemoryFoodStore) List(ctx context.Context) ([]models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Food, 0, len(s.foods))
	for _, f := range s.foods {
		out = append(out, clone(f))
	}
	return out, nil
}

func (s *MemoryFoodStore) Create(ctx context.Context, food models.Food) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	food = clone(food)
	food.ID = primitive.NewObjectID()
	s.foods = append(s.foods, food)
	return clone(food), nil
}

func (s *MemoryFoodStore) Get(ctx context.Context, id models.FoodID) (models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Food{}, models.ErrNotFound
	}
	return clone(s.foods[i]), nil
}

func (s *MemoryFoodStore) Update(ctx context.Context, id models.FoodID, food models.Food) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return 0, nil
	}
	food = clone(food)
	food.ID = s.foods[i].ID
	if reflect.DeepEqual(s.foods[i], food) {
		return 0, nil
	}
	s.foods[i] = food
	return 1, nil
}

func (s *MemoryFoodStore) Delete(ctx context.Context, id models.FoodID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return 0, nil
	}
	s.foods = append(s.foods[:i], s.foods[i+1:]...)
	return 1, nil
}

func (s *MemoryFoodStore) Search(ctx context.Context, query string) ([]models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(query)
	out := []models.Food{}
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), query) {
			out = append(out, clone(f))
		}
	}
	return out, nil
}

func (s *MemoryFoodStore) index(id models.FoodID) int {
	for i, f := range s.foods {
		if f.ID == id.ObjectID() {
			return i
		}
	}
	return -1
}

func clone(f models.Food) models.Food {
	ingredients := make([]string, len(f.Ingredients))
	copy(ingredients, f.Ingredients)
	f.Ingredients = ingredients
	return f
}
