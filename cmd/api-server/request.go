package main

import (
	"net/http"
	"strconv"

	"github.com/grigorv/snackshop/internal/ctxstore"
	"github.com/grigorv/snackshop/internal/model"
	"github.com/grigorv/snackshop/internal/urlpath"

	"github.com/tomasen/realip"
)

// clientKey identifies the caller for session purposes.
func clientKey(r *http.Request) string {
	return realip.FromRequest(r)
}

func requestURL(r *http.Request) *urlpath.URL {
	return ctxstore.MustFrom[*urlpath.URL](r.Context(), _urlKey)
}

// stringArg returns the named argument's value, or "" when absent; absent and
// empty credentials match no user, which is what the account routes want.
func stringArg(u *urlpath.URL, name string) string {
	value, _ := u.ArgValue(name)
	return value
}

// optionalStringArg distinguishes an absent argument from an empty one.
func optionalStringArg(u *urlpath.URL, name string) *string {
	value, ok := u.ArgValue(name)
	if !ok {
		return nil
	}
	return &value
}

func idArg(u *urlpath.URL, name string) (model.ID, error) {
	value, _ := u.ArgValue(name)
	id, err := strconv.ParseUint(value, 10, 64)
	return model.ID(id), err
}

func intArg(u *urlpath.URL, name string) (int, error) {
	value, _ := u.ArgValue(name)
	return strconv.Atoi(value)
}

func productIDFromRequest(r *http.Request) (model.ID, error) {
	segment, _ := requestURL(r).Segment(1)
	id, err := strconv.ParseUint(segment, 10, 64)
	return model.ID(id), err
}
