package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/shareit-dev/shareit/shared/api"
	"github.com/shareit-dev/shareit/shared/domain"
	"github.com/shareit-dev/shareit/shared/errors"
	"github.com/shareit-dev/shareit/shared/logger"
)

// WriteErrorAndStatusCode answers with {"error": ...} and the status carried by err, 500 by default.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		// driver and wrapping details stay in the log
		message = errors.ServerMessage(err)
	}
	writeJSONStatus(w, status, api.ErrorResponse{Error: message})
}

// WriteJSON answers 200 with v encoded as JSON.
func WriteJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
	w.Write([]byte("\n"))
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := ValidateStruct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// ParseIntParam parses an integer parameter and returns a 400 on failure.
func ParseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, errors.BadRequest("invalid %s: must be an integer", paramName)
	}
	return val, nil
}

// QueryInt reads an optional integer query parameter.
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.BadRequest("invalid %s: must be an integer", name)
	}
	return val, nil
}

// QueryBool reads a required boolean query parameter.
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, errors.BadRequest("missing required parameter %s", name)
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.BadRequest("invalid %s: must be true or false", name)
	}
	return val, nil
}

// ParsePage reads from/size; from must be >= 0, size > 0, and size is capped at maxSize.
func ParsePage(r *http.Request, defaultSize, maxSize int) (domain.Page, error) {
	from, err := QueryInt(r, "from", 0)
	if err != nil {
		return domain.Page{}, err
	}
	size, err := QueryInt(r, "size", defaultSize)
	if err != nil {
		return domain.Page{}, err
	}
	if from < 0 {
		return domain.Page{}, errors.BadRequest("from must not be negative")
	}
	if size <= 0 {
		return domain.Page{}, errors.BadRequest("size must be positive")
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	return domain.Page{From: from, Size: size}, nil
}
