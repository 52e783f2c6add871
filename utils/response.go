package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Circulx/Fathom-Legal-sub001/errs"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Development toggles verbose error bodies. Set once at startup from config.
var Development bool

// RespondError maps a taxonomy error to its HTTP status. Unclassified errors
// become a generic 500; the underlying detail is only exposed in development.
func RespondError(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		if !Development {
			RespondWithError(w, status, "internal server error")
			return
		}
	}
	RespondWithError(w, status, err.Error())
}
