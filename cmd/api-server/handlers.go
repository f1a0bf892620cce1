package main

import (
	"net/http"

	"github.com/grigorv/snackshop/internal/response"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}

// ok is the body of every successful mutation.
func (app *application) ok(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"ok": true}); err != nil {
		app.serverError(w, r, err)
	}
}
