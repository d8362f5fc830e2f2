package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SouvikBuilds/Bengali-Food/mock"
	"github.com/SouvikBuilds/Bengali-Food/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var (
	ilish = models.Food{
		ID:          primitive.NewObjectID(),
		Name:        "Shorshe Ilish",
		Category:    "Fish",
		Picture:     "url1",
		Ingredients: []string{"ilish", "mustard"},
	}
	curry = models.Food{
		ID:          primitive.NewObjectID(),
		Name:        "Chicken Curry",
		Category:    "Meat",
		Picture:     "url2",
		Ingredients: []string{"chicken"},
	}
)

func do(handler http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestWelcome(t *testing.T) {
	w := do(Welcome, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Welcome In Bengali Food World"}`, w.Body.String())
}

func TestGetFoods(t *testing.T) {
	c := NewFoodController(mock.NewMemoryFoodStore(ilish, curry), nil)

	w := do(c.GetFoods, http.MethodGet, "/foods", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.FoodResponse
	decode(t, w, &got)
	assert.Equal(t, []models.FoodResponse{models.ToExternal(ilish), models.ToExternal(curry)}, got)
}

func TestGetFoods_Empty(t *testing.T) {
	c := NewFoodController(mock.NewMemoryFoodStore(), nil)

	w := do(c.GetFoods, http.MethodGet, "/foods", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateFood(t *testing.T) {
	store := mock.NewMemoryFoodStore(curry)
	c := NewFoodController(store, nil)

	w := do(c.CreateFood, http.MethodPost, "/foods",
		`{"name":"Shorshe Ilish","category":"Fish","picture":"url1","ingredients":["ilish","mustard"]}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.FoodResponse
	decode(t, w, &got)
	assert.NotEmpty(t, got.ID)
	assert.NotEqual(t, curry.ID.Hex(), got.ID)
	assert.Equal(t, "Shorshe Ilish", got.Name)
	assert.Equal(t, "Fish", got.Category)
	assert.Equal(t, "url1", got.Picture)
	assert.Equal(t, []string{"ilish", "mustard"}, got.Ingredients)

	foods, err := store.List(context.Background())
	require.NoError(t, err)
	matches := 0
	for _, f := range foods {
		if models.ToExternal(f).ID == got.ID {
			assert.Equal(t, got, models.ToExternal(f))
			matches++
		}
	}
	assert.Equal(t, 1, matches)
}

func TestCreateFood_ValidationError(t *testing.T) {
	c := NewFoodController(&mock.FoodStore{}, nil)

	w := do(c.CreateFood, http.MethodPost, "/foods", `{"name":"Rosogolla"}`, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var got errorResponse
	decode(t, w, &got)
	var fields []string
	for _, f := range got.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"category", "picture", "ingredients"}, fields)
}

func TestUpdateFood(t *testing.T) {
	store := mock.NewMemoryFoodStore(ilish, curry)
	c := NewFoodController(store, nil)
	vars := map[string]string{"id": ilish.ID.Hex()}

	w := do(c.UpdateFood, http.MethodPut, "/foods/"+ilish.ID.Hex(),
		`{"name":"Bhapa Ilish","category":"Fish","picture":"url3","ingredients":["ilish"]}`, vars)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.FoodResponse
	decode(t, w, &got)
	assert.Equal(t, models.FoodResponse{
		ID:          ilish.ID.Hex(),
		Name:        "Bhapa Ilish",
		Category:    "Fish",
		Picture:     "url3",
		Ingredients: []string{"ilish"},
	}, got)

	other, err := store.Get(context.Background(), curry.FoodID())
	require.NoError(t, err)
	assert.Equal(t, curry, other)
}

func TestUpdateFood_UnchangedIsNotFound(t *testing.T) {
	c := NewFoodController(mock.NewMemoryFoodStore(ilish), nil)
	vars := map[string]string{"id": ilish.ID.Hex()}

	w := do(c.UpdateFood, http.MethodPut, "/foods/"+ilish.ID.Hex(),
		`{"name":"Shorshe Ilish","category":"Fish","picture":"url1","ingredients":["ilish","mustard"]}`, vars)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFood_Missing(t *testing.T) {
	c := NewFoodController(mock.NewMemoryFoodStore(ilish), nil)
	id := primitive.NewObjectID().Hex()

	w := do(c.UpdateFood, http.MethodPut, "/foods/"+id,
		`{"name":"Doi Maach","category":"Fish","picture":"","ingredients":[]}`, map[string]string{"id": id})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateFood_InvalidBody(t *testing.T) {
	c := NewFoodController(&mock.FoodStore{}, nil)
	vars := map[string]string{"id": ilish.ID.Hex()}

	w := do(c.UpdateFood, http.MethodPut, "/foods/"+ilish.ID.Hex(), `{"name": ["x"]}`, vars)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// A zero value mock.FoodStore panics on any call, so these prove that a
// malformed id is rejected before storage is touched.
func TestInvalidIdentifier(t *testing.T) {
	c := NewFoodController(&mock.FoodStore{}, nil)
	body := `{"name":"Luchi","category":"Bread","picture":"","ingredients":[]}`

	for _, id := range []string{"abc", "64b7f0c2e1a4b2c3d4e5f6zz", ""} {
		vars := map[string]string{"id": id}

		w := do(c.UpdateFood, http.MethodPut, "/foods/x", body, vars)
		assert.Equal(t, http.StatusBadRequest, w.Code, "update %q", id)

		w = do(c.DeleteFood, http.MethodDelete, "/foods/x", "", vars)
		assert.Equal(t, http.StatusBadRequest, w.Code, "delete %q", id)
	}
}

func TestDeleteFood(t *testing.T) {
	c := NewFoodController(mock.NewMemoryFoodStore(ilish), nil)
	vars := map[string]string{"id": ilish.ID.Hex()}

	w := do(c.DeleteFood, http.MethodDelete, "/foods/"+ilish.ID.Hex(), "", vars)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Food Deleted Successfully"}`, w.Body.String())

	w = do(c.DeleteFood, http.MethodDelete, "/foods/"+ilish.ID.Hex(), "", vars)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Food Not Found"}`, w.Body.String())
}

func TestDeleteFood_MissingIsOKWithOneStorageCall(t *testing.T) {
	var calls []models.FoodID
	c := NewFoodController(&mock.FoodStore{
		DeleteF: func(_ context.Context, id models.FoodID) (int64, error) {
			calls = append(calls, id)
			return 0, nil
		},
	}, nil)
	id := primitive.NewObjectID().Hex()

	w := do(c.DeleteFood, http.MethodDelete, "/foods/"+id, "", map[string]string{"id": id})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Food Not Found"}`, w.Body.String())
	require.Len(t, calls, 1)
	assert.Equal(t, id, calls[0].String())
}

func TestSearchFoods(t *testing.T) {
	store := mock.NewMemoryFoodStore(
		curry,
		models.Food{Name: "CURRY", Ingredients: []string{}},
		models.Food{Name: "Chingri curry", Ingredients: []string{}},
		models.Food{Name: "Biryani", Ingredients: []string{}},
	)
	c := NewFoodController(store, nil)

	w := do(c.SearchFoods, http.MethodGet, "/foods/search?query=curry", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.FoodResponse
	decode(t, w, &got)
	var names []string
	for _, f := range got {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Chicken Curry", "CURRY", "Chingri curry"}, names)

	w = do(c.SearchFoods, http.MethodGet, "/foods/search?query=payesh", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearchFoods_MissingQuery(t *testing.T) {
	c := NewFoodController(&mock.FoodStore{}, nil)

	w := do(c.SearchFoods, http.MethodGet, "/foods/search", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestStorageFailure(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	boom := errors.New("connection refused")
	c := NewFoodController(&mock.FoodStore{
		ListF: func(context.Context) ([]models.Food, error) { return nil, boom },
		DeleteF: func(context.Context, models.FoodID) (int64, error) {
			return 0, boom
		},
	}, zap.New(core))

	w := do(c.GetFoods, http.MethodGet, "/foods", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = do(c.DeleteFood, http.MethodDelete, "/foods/"+ilish.ID.Hex(), "", map[string]string{"id": ilish.ID.Hex()})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.Equal(t, 2, logs.FilterMessage("Storage operation failed").Len())
}
