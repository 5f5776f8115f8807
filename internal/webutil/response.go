// internal/webutil/response.go
package webutil

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"go_french_gapfill/internal/model"
)

// HandleError interprets an error and writes the matching JSON error
// response. It is the single exit point for error responses.
func HandleError(w http.ResponseWriter, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		switch {
		case errors.Is(err, model.ErrNotFound):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."},
			}
		case errors.Is(err, model.ErrInvalidInput):
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "INVALID_INPUT", Message: "The request was malformed."},
			}
		default:
			log.Printf("Unhandled error: %+v", err)
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal server error occurred."},
			}
		}
	}

	RespondWithJSON(w, statusCode, errResp)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling JSON response: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to encode response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
