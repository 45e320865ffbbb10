package httpapi

import (
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"fpltransfer/internal/usecase"
)

const (
	apiVersion  = "2.0"
	errorDomain = "fpl-transfer-optimizer"
)

type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, responseEnvelope{
		APIVersion: apiVersion,
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	mapped := mapError(err)
	writeJSON(w, mapped.HTTPStatus, responseEnvelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    mapped.HTTPStatus,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []errorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeInternalError(w http.ResponseWriter) {
	const msg = "internal server error"

	writeJSON(w, http.StatusInternalServerError, responseEnvelope{
		APIVersion: apiVersion,
		Error: &errorBody{
			Code:    http.StatusInternalServerError,
			Message: msg,
			Status:  "INTERNAL",
			Errors: []errorItem{
				{
					Domain:  errorDomain,
					Reason:  "internalError",
					Message: msg,
				},
			},
		},
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}
	case errors.Is(err, usecase.ErrSquadIncomplete):
		return mappedError{http.StatusUnprocessableEntity, "squadIncomplete", "FAILED_PRECONDITION"}
	case errors.Is(err, usecase.ErrNoPlayerData):
		return mappedError{http.StatusConflict, "noPlayerData", "FAILED_PRECONDITION"}
	case errors.Is(err, usecase.ErrNoFinishedGameweeks):
		return mappedError{http.StatusBadGateway, "noFinishedGameweeks", "UNAVAILABLE"}
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return mappedError{http.StatusBadGateway, "upstreamUnavailable", "UNAVAILABLE"}
	default:
		return mappedError{http.StatusInternalServerError, "internalError", "INTERNAL"}
	}
}
