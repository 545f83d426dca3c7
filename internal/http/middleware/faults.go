package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/product-catalog/internal/apperr"
)

const unexpectedErrorMessage = "An unexpected error occurred."

// HandlerFunc is an HTTP handler that reports failures by returning them.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// FaultTranslator turns errors and panics escaping a handler into the
// {StatusCode, Message} JSON envelope. Application errors answer 400 with
// their own message and log at Warn; everything else answers a generic 500
// and logs at Error.
type FaultTranslator struct {
	log zerolog.Logger
}

func NewFaultTranslator(log zerolog.Logger) *FaultTranslator {
	return &FaultTranslator{log: log.With().Str("component", "faults").Logger()}
}

// Handle adapts h to http.HandlerFunc, translating any error it returns.
func (f *FaultTranslator) Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			f.translate(w, r, err, nil)
		}
	}
}

// Recover is a middleware that translates panics raised further down the chain.
func (f *FaultTranslator) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}
			f.translate(w, r, err, debug.Stack())
		}()

		next.ServeHTTP(w, r)
	})
}

func (f *FaultTranslator) translate(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	status := http.StatusInternalServerError
	message := unexpectedErrorMessage
	level := zerolog.ErrorLevel
	if appErr, ok := apperr.AsApplication(err); ok {
		status = http.StatusBadRequest
		message = appErr.Message
		level = zerolog.WarnLevel
	}

	ev := f.log.WithLevel(level).
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Int("status", status)
	if stack != nil {
		ev = ev.Bytes("stack", stack)
	}
	ev.Msg(message)

	body, _ := json.Marshal(apperr.Response{StatusCode: status, Message: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
