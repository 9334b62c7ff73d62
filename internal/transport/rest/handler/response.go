package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/katiamach/alaska-weather-api/internal/logger"
	"github.com/katiamach/alaska-weather-api/internal/model"
)

type weatherResponse struct {
	Success   bool             `json:"success"`
	Data      []*model.Weather `json:"data"`
	UpdatedAt time.Time        `json:"updated_at"`
	Count     int              `json:"count"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	respondRaw(w, code, body)
}

// RespondRaw sends an already encoded JSON body.
func respondRaw(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, msg string, err error) {
	respErr := errorResponse{
		Error: msg,
	}
	if err != nil {
		respErr.Details = err.Error()
	}

	respond(w, code, respErr)
}
