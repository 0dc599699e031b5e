package validators

import (
	"net/http"
	"strconv"

	pkgerrors "github.com/jcastellanos/habitframe-backend/pkg/errors"
	"github.com/google/uuid"
)

// QueryUUID parses a required uuid query parameter.
func QueryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, name+" query parameter is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a valid uuid")
	}
	return id, nil
}

// QueryInt parses an optional integer query parameter, returning fallback
// when absent.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be an integer")
	}
	return value, nil
}

// QueryBool parses an optional boolean query parameter, false when absent.
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeValidation, err, name+" must be a boolean")
	}
	return value, nil
}
