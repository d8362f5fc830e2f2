package controller

import "net/http"

const welcomeMessage = "Welcome In Bengali Food World"

// Welcome answers the root route.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: welcomeMessage})
}
