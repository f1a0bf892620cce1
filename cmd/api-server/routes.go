package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.parseTarget)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/status", app.handleStatus)

	mux.Get("/account", app.handleProfile)
	mux.Get("/account/login", app.handleLogin)
	mux.Get("/account/logout", app.handleLogout)
	mux.Get("/account/register", app.handleRegister)

	mux.Get("/order", app.handleCart)
	mux.Get("/order/add", app.handleAddItem)
	mux.Get("/order/place", app.handlePlaceOrder)
	mux.Get("/order/remove", app.handleRemoveItem)

	mux.Get("/products", app.handleListProducts)
	mux.Get("/products/{productId}", app.handleProductDetail)

	app.logger.Debug("routes configured", "routes", chiRoutesToStrings(mux.Routes()))

	return mux
}

func chiRoutesToStrings(routes []chi.Route) []string {
	parsedRoutes := make([]string, 0, len(routes))
	for _, route := range routes {
		parsedRoutes = append(parsedRoutes, route.Pattern)
	}
	return parsedRoutes
}
