package main

import (
	"net/http"

	"github.com/grigorv/snackshop/internal/ctxstore"
)

// Failures carry a bare status and no body: the client learns nothing beyond
// the status code, and server errors are only visible in the logs.

func (app *application) reportServerError(r *http.Request, err error) {
	tid, _ := ctxstore.From[string](r.Context(), _traceIDKey)
	app.logger.Error(err.Error(),
		"method", r.Method,
		"url", r.URL.String(),
		_traceIDKey.String(), tid,
	)
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.reportServerError(r, err)
	w.WriteHeader(http.StatusInternalServerError)
}

func (app *application) notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

func (app *application) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func (app *application) badRequest(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusBadRequest)
}

func (app *application) forbidden(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusForbidden)
}
