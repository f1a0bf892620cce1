package main

import (
	"errors"
	"net/http"

	"github.com/grigorv/snackshop/internal/model"
	"github.com/grigorv/snackshop/internal/response"
)

func (app *application) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := app.catalog.List(r.Context())
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"products": products}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := productIDFromRequest(r)
	if err != nil {
		// a non-numeric id can never name a product
		app.notFound(w, r)
		return
	}

	product, err := app.catalog.Detail(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.notFound(w, r)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, product); err != nil {
		app.serverError(w, r, err)
	}
}
