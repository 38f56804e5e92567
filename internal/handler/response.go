package handler

import (
	"encoding/json"
	"net/http"

	"github.com/forgo/carte/api/internal/model"
)

// DataResponse wraps a successful single-record response
type DataResponse struct {
	Data interface{} `json:"data"`
}

// CollectionResponse wraps a collection response with its size
type CollectionResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// DeleteResponse confirms a deletion and carries the removed snapshot
type DeleteResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteCollection writes a collection response
func WriteCollection(w http.ResponseWriter, status int, data interface{}, count int) {
	WriteJSON(w, status, CollectionResponse{Data: data, Count: count})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
