// Package service holds the application logic between the HTTP handlers and
// the data access layer.
package service

import (
	"context"
	"time"

	"github.com/grigorv/snackshop/internal/database"
	"github.com/grigorv/snackshop/internal/model"
)

// SessionRegistry associates a client key with an authenticated user.
// Implemented by session.Registry.
type SessionRegistry interface {
	Lookup(clientKey string) (model.ID, bool)
	Establish(clientKey string, user model.ID)
	Revoke(clientKey string)
}

type UserStore interface {
	GetByLogin(ctx context.Context, login string) (model.User, error)
	Insert(ctx context.Context, dto database.InsertUserDTO) (model.ID, error)
	UpdateProfile(ctx context.Context, id model.ID, dto database.UpdateProfileDTO) error
	GetProfile(ctx context.Context, id model.ID) (model.Profile, error)
}

type OrderStore interface {
	ResolveOpen(ctx context.Context, user model.ID) (model.ID, error)
	Place(ctx context.Context, user, order model.ID, placedAt time.Time) error
}

type OrderLineStore interface {
	FindByOrder(ctx context.Context, order model.ID) ([]model.OrderLine, error)
	Upsert(ctx context.Context, order, product model.ID, quantity int) error
	Delete(ctx context.Context, order, product model.ID) error
}

type ProductStore interface {
	FindAll(ctx context.Context) ([]model.ProductSummary, error)
	Get(ctx context.Context, id model.ID) (model.Product, error)
}
