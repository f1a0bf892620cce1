package main

import (
	"errors"
	"net/http"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/model"
	"github.com/grigorv/snackshop/internal/response"
)

func (app *application) handleLogin(w http.ResponseWriter, r *http.Request) {
	u := requestURL(r)

	err := app.account.Login(r.Context(), clientKey(r), stringArg(u, "login"), stringArg(u, "password"))
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.ok(w, r)
}

func (app *application) handleLogout(w http.ResponseWriter, r *http.Request) {
	app.account.Logout(clientKey(r))

	app.ok(w, r)
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	u := requestURL(r)

	err := app.account.Register(r.Context(), clientKey(r), stringArg(u, "login"), stringArg(u, "password"))
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.ok(w, r)
}

func (app *application) handleProfile(w http.ResponseWriter, r *http.Request) {
	u := requestURL(r)

	updates := database.UpdateProfileDTO{
		FirstName: optionalStringArg(u, "firstname"),
		LastName:  optionalStringArg(u, "lastname"),
		Email:     optionalStringArg(u, "email"),
		BirthDate: optionalStringArg(u, "birthdate"),
	}

	profile, err := app.account.Profile(r.Context(), clientKey(r), updates)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, profile); err != nil {
		app.serverError(w, r, err)
	}
}
