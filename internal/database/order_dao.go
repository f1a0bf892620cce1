package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/grigorv/snackshop/internal/model"
)

type OrderDAO struct {
	Logger *slog.Logger
	*DB
}

func NewOrderDAO(logger *slog.Logger, db *DB) *OrderDAO {
	return &OrderDAO{
		Logger: logger.With("dao", "order"),
		DB:     db,
	}
}

func (dao *OrderDAO) getOpen(ctx context.Context, user model.ID) (model.ID, error) {
	query, args, err := dao.Builder.
		Select("id").
		From("orders").
		Where(squirrel.Eq{"user_id": user}).
		Where(squirrel.Eq{"placed_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, err
	}

	dao.Logger.Debug("build query", "sql", query, "args", args)

	var id model.ID
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&id); err != nil {
		if IsNoRows(err) {
			return 0, model.NewError("order", model.ErrNotFound)
		}

		return 0, err
	}

	return id, nil
}

// ResolveOpen returns the id of the user's open order, creating one if none
// exists. The insert relies on the partial unique index on
// orders(user_id) WHERE placed_at IS NULL, so two concurrent resolutions for
// one user converge on a single open order.
func (dao *OrderDAO) ResolveOpen(ctx context.Context, user model.ID) (model.ID, error) {
	logger := dao.Logger.With("query", "resolveOpen")

	id, err := dao.getOpen(ctx, user)
	if err == nil {
		return id, nil
	}
	if !IsNotFound(err) {
		logger.Warn("failed query execute", "error", err)
		return 0, err
	}

	query, args, err := dao.Builder.
		Insert("orders").
		Columns("user_id").
		Values(user).
		Suffix("ON CONFLICT (user_id) WHERE placed_at IS NULL DO NOTHING").
		ToSql()
	if err != nil {
		return 0, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err := dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)
		return 0, err
	}

	id, err = dao.getOpen(ctx, user)
	if err != nil {
		logger.Warn("failed query execute", "error", err)
		return 0, err
	}

	logger.Debug("success query execute", "orderId", id)

	return id, nil
}

// Place stamps the order with the placement time, closing it as a cart.
func (dao *OrderDAO) Place(ctx context.Context, user, order model.ID, placedAt time.Time) error {
	logger := dao.Logger.With("query", "place")

	query, args, err := dao.Builder.
		Update("orders").
		Set("placed_at", placedAt.Truncate(time.Second)).
		Where(squirrel.Eq{"id": order}).
		Where(squirrel.Eq{"user_id": user}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "orderId", order)

	return nil
}
