package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/swiss-tournament/brackets"
	"github.com/Dosada05/swiss-tournament/services"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, env jsonResponse) {
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.String("path", r.URL.Path), slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func messageResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	errorResponse(w, r, status, jsonResponse{"error": message})
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error", slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	messageResponse(w, r, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	messageResponse(w, r, http.StatusBadRequest, err.Error())
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	messageResponse(w, r, http.StatusConflict, message)
}

func unavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.WarnContext(r.Context(), "store unavailable", slog.String("path", r.URL.Path), slog.Any("error", err))
	messageResponse(w, r, http.StatusServiceUnavailable, "the tournament store is unavailable, try again later")
}

// mapServiceErrorToHTTP turns service-layer errors into HTTP responses.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var oddErr *brackets.OddPlayerCountError

	switch {
	case errors.Is(err, services.ErrStoreUnavailable):
		unavailableResponse(w, r, err)

	case errors.As(err, &oddErr):
		errorResponse(w, r, http.StatusConflict, jsonResponse{
			"error":        oddErr.Error(),
			"player_count": oddErr.Count,
		})

	case errors.Is(err, services.ErrConstraintViolation):
		conflictResponse(w, r, err.Error())

	case errors.Is(err, services.ErrValidationFailed):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrExportDisabled):
		messageResponse(w, r, http.StatusNotImplemented, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
