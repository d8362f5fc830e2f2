package controller

import (
	"net/http"

	database "github.com/SouvikBuilds/Bengali-Food/config"
	"github.com/SouvikBuilds/Bengali-Food/models"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	msgFoodDeleted  = "Food Deleted Successfully"
	msgFoodNotFound = "Food Not Found"
)

// FoodController serves the /foods routes. Each handler issues exactly one
// store operation, plus a read-back for create and update.
type FoodController struct {
	Store  database.FoodStore
	Logger *zap.Logger
}

func NewFoodController(store database.FoodStore, logger *zap.Logger) *FoodController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FoodController{Store: store, Logger: logger}
}

// GetFoods returns every food in the collection.
func (c *FoodController) GetFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := c.Store.List(r.Context())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ToExternalList(foods))
}

// CreateFood inserts a food and returns it with its assigned id.
func (c *FoodController) CreateFood(w http.ResponseWriter, r *http.Request) {
	food, err := models.ParseFood(r.Body)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	created, err := c.Store.Create(r.Context(), food)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ToExternal(created))
}

// UpdateFood replaces every field of a food except its id. An update that
// leaves the document unchanged is reported as not found.
func (c *FoodController) UpdateFood(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseFoodID(mux.Vars(r)["id"])
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	food, err := models.ParseFood(r.Body)
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	modified, err := c.Store.Update(r.Context(), id, food)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if modified != 1 {
		c.writeError(w, r, models.ErrNotFound)
		return
	}

	updated, err := c.Store.Get(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ToExternal(updated))
}

// DeleteFood removes a food. A missing food is reported in the body with a
// 200 status.
func (c *FoodController) DeleteFood(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseFoodID(mux.Vars(r)["id"])
	if err != nil {
		c.writeError(w, r, err)
		return
	}

	deleted, err := c.Store.Delete(r.Context(), id)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if deleted == 1 {
		writeJSON(w, http.StatusOK, messageResponse{Message: msgFoodDeleted})
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgFoodNotFound})
}

// SearchFoods returns foods whose name contains the query parameter,
// ignoring case.
func (c *FoodController) SearchFoods(w http.ResponseWriter, r *http.Request) {
	values, ok := r.URL.Query()["query"]
	if !ok || len(values) == 0 {
		c.writeError(w, r, &models.ValidationError{
			Fields: []models.FieldError{{Field: "query", Message: "field required"}},
		})
		return
	}

	foods, err := c.Store.Search(r.Context(), values[0])
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.ToExternalList(foods))
}
