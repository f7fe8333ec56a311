package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	mzerr "github.com/matzehuels/mazegen/pkg/errors"
	"github.com/matzehuels/mazegen/pkg/store"
)

type errorBody struct {
	Code      mzerr.Code `json:"code"`
	Message   string     `json:"message"`
	RequestID string     `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// writeError classifies err and writes it as JSON. Unclassified errors are
// reported as INTERNAL_ERROR without their text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = classify(err)
	code := mzerr.GetCode(err)
	msg := mzerr.UserMessage(err)
	if code == mzerr.ErrCodeInternal {
		msg = "internal error"
	}
	writeJSON(w, mzerr.HTTPStatus(code), errorBody{
		Code:      code,
		Message:   msg,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func classify(err error) error {
	var e *mzerr.Error
	switch {
	case errors.As(err, &e):
		return err
	case errors.Is(err, store.ErrNotFound):
		return mzerr.Wrap(mzerr.ErrCodeNotFound, err, "maze not found")
	case errors.Is(err, context.DeadlineExceeded):
		return mzerr.Wrap(mzerr.ErrCodeTimeout, err, "request timed out")
	}
	return mzerr.FromMaze(err)
}

func errNotFound(format string, args ...any) error {
	return mzerr.New(mzerr.ErrCodeNotFound, format, args...)
}
