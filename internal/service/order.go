package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/grigorv/snackshop/internal/model"

	"golang.org/x/exp/slices"
)

type Order struct {
	logger   *slog.Logger
	sessions SessionRegistry
	orders   OrderStore
	lines    OrderLineStore

	now func() time.Time
}

func NewOrder(logger *slog.Logger, sessions SessionRegistry, orders OrderStore, lines OrderLineStore) *Order {
	return &Order{
		logger:   logger.With("service", "order"),
		sessions: sessions,
		orders:   orders,
		lines:    lines,
		now:      time.Now,
	}
}

func (s *Order) resolve(ctx context.Context, clientKey string) (model.ID, model.ID, error) {
	user, ok := s.sessions.Lookup(clientKey)
	if !ok {
		return 0, 0, model.NewError("order", model.ErrUnauthorized)
	}

	order, err := s.orders.ResolveOpen(ctx, user)
	if err != nil {
		return 0, 0, err
	}

	return user, order, nil
}

// Cart returns the line items of the caller's open order, sorted by product id.
func (s *Order) Cart(ctx context.Context, clientKey string) ([]model.OrderLine, error) {
	_, order, err := s.resolve(ctx, clientKey)
	if err != nil {
		return nil, err
	}

	lines, err := s.lines.FindByOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(lines, func(a, b model.OrderLine) int {
		return int(a.Product) - int(b.Product)
	})

	return lines, nil
}

// AddItem sets the quantity for the product in the caller's open order. A
// repeated add overwrites the quantity rather than adding to it. Neither the
// product id nor the quantity is validated.
func (s *Order) AddItem(ctx context.Context, clientKey string, product model.ID, quantity int) error {
	_, order, err := s.resolve(ctx, clientKey)
	if err != nil {
		return err
	}

	return s.lines.Upsert(ctx, order, product, quantity)
}

// RemoveItem deletes the product's line from the caller's open order.
// Removing an absent line succeeds.
func (s *Order) RemoveItem(ctx context.Context, clientKey string, product model.ID) error {
	_, order, err := s.resolve(ctx, clientKey)
	if err != nil {
		return err
	}

	return s.lines.Delete(ctx, order, product)
}

// Place stamps the caller's open order with the current time. With nothing
// open this creates a fresh empty order and immediately places it; the next
// cart access then starts a new order.
func (s *Order) Place(ctx context.Context, clientKey string) error {
	user, order, err := s.resolve(ctx, clientKey)
	if err != nil {
		return err
	}

	if err := s.orders.Place(ctx, user, order, s.now()); err != nil {
		return err
	}

	s.logger.Debug("order placed", "userId", user, "orderId", order)

	return nil
}
