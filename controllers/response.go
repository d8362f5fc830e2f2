package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SouvikBuilds/Bengali-Food/models"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string              `json:"detail"`
	Fields []models.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates err into a status and body. Anything that is not a
// request error is a storage failure; it is logged and reported as a 500.
func (c *FoodController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, models.ErrInvalidIdentifier):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Food not found"})
	default:
		c.Logger.Error("Storage operation failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}
