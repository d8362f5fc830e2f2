package routes

import (
	"net/http"

	controllers "github.com/SouvikBuilds/Bengali-Food/controllers"
	"github.com/gorilla/mux"
)

// PublicRoutes registers routes that do not touch the collection.
func PublicRoutes(router *mux.Router) {
	router.HandleFunc("/", controllers.Welcome).Methods(http.MethodGet)
}

// FoodRoutes registers the /foods routes. The search route is registered
// before the {id} routes so "search" is never read as an id.
func FoodRoutes(router *mux.Router, foods *controllers.FoodController) {
	router.HandleFunc("/foods", foods.GetFoods).Methods(http.MethodGet)
	router.HandleFunc("/foods", foods.CreateFood).Methods(http.MethodPost)
	router.HandleFunc("/foods/search", foods.SearchFoods).Methods(http.MethodGet)
	router.HandleFunc("/foods/{id}", foods.UpdateFood).Methods(http.MethodPut)
	router.HandleFunc("/foods/{id}", foods.DeleteFood).Methods(http.MethodDelete)
}
