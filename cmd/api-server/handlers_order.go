package main

import (
	"errors"
	"net/http"

	"github.com/grigorv/snackshop/internal/model"
	"github.com/grigorv/snackshop/internal/response"
)

func (app *application) handleCart(w http.ResponseWriter, r *http.Request) {
	lines, err := app.order.Cart(r.Context(), clientKey(r))
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"products": lines}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleAddItem(w http.ResponseWriter, r *http.Request) {
	u := requestURL(r)

	product, err := idArg(u, "id")
	if err != nil {
		app.badRequest(w, r)
		return
	}

	count, err := intArg(u, "count")
	if err != nil {
		app.badRequest(w, r)
		return
	}

	if err := app.order.AddItem(r.Context(), clientKey(r), product, count); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.ok(w, r)
}

func (app *application) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	u := requestURL(r)

	product, err := idArg(u, "id")
	if err != nil {
		app.badRequest(w, r)
		return
	}

	if err := app.order.RemoveItem(r.Context(), clientKey(r), product); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.ok(w, r)
}

func (app *application) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	if err := app.order.Place(r.Context(), clientKey(r)); err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			app.forbidden(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	app.ok(w, r)
}
