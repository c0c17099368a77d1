package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jeffoo713/lightBnB/internal/dberr"
	"github.com/jeffoo713/lightBnB/internal/user"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, map[string]string{"error": msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// writeStoreError maps a store error to a status code. Internal failures are
// logged and reported without detail.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, user.ErrInvalidCredentials) {
		apiError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	code := http.StatusInternalServerError
	switch dberr.KindOf(err) {
	case dberr.KindNotFound:
		code = http.StatusNotFound
	case dberr.KindInvalid:
		code = http.StatusBadRequest
	case dberr.KindConstraint:
		code = http.StatusConflict
	case dberr.KindUnavailable:
		code = http.StatusServiceUnavailable
	}

	if code >= 500 {
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		apiError(w, http.StatusText(code), code)
		return
	}
	apiError(w, err.Error(), code)
}

// decodeBody decodes a JSON request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

// queryInt64 parses an optional integer query parameter. It returns nil when
// the parameter is absent.
func queryInt64(r *http.Request, name string) (*int64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.New(name + " must be an integer")
	}
	return &v, nil
}

// queryFloat parses an optional decimal query parameter.
func queryFloat(r *http.Request, name string) (*float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New(name + " must be a number")
	}
	return &v, nil
}
