package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"hospital-dashboard/internal/delivery/dto"
	"hospital-dashboard/internal/infrastructure/simulation"
	"hospital-dashboard/internal/usecase"
	"hospital-dashboard/pkg/response"
	"hospital-dashboard/pkg/validator"
)

// writeError maps a usecase error to its HTTP status. failure is the message
// used for unexpected errors.
func writeError(w http.ResponseWriter, err error, failure string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, simulation.ErrSimulatedFailure):
		response.ServiceUnavailable(w, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Unauthorized(w, "Invalid credentials")
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, "")
	default:
		response.InternalServerError(w, failure)
	}
}

// decodeBody reads a JSON body into dst and writes a 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// parseListQuery reads page and limit from the query string.
func parseListQuery(w http.ResponseWriter, q url.Values, v *validator.CustomValidator) (*dto.ListQuery, bool) {
	var lq dto.ListQuery
	for key, dst := range map[string]*int{"page": &lq.Page, "limit": &lq.Limit} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "Invalid "+key)
			return nil, false
		}
		*dst = n
	}

	if err := v.Validate(&lq); err != nil {
		response.ValidationError(w, v.FormatValidationErrors(err))
		return nil, false
	}
	return &lq, true
}
