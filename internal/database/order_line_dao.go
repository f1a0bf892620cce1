package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/grigorv/snackshop/internal/model"
)

type OrderLineDAO struct {
	Logger *slog.Logger
	*DB
}

func NewOrderLineDAO(logger *slog.Logger, db *DB) *OrderLineDAO {
	return &OrderLineDAO{
		Logger: logger.With("dao", "orderLine"),
		DB:     db,
	}
}

func (dao *OrderLineDAO) FindByOrder(ctx context.Context, order model.ID) ([]model.OrderLine, error) {
	logger := dao.Logger.With("query", "findByOrder")

	query, args, err := dao.Builder.
		Select("order_id", "product_id", "quantity").
		From("order_lines").
		Where(squirrel.Eq{"order_id": order}).
		ToSql()
	if err != nil {
		return []model.OrderLine{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	lines := make([]model.OrderLine, 0)
	if err := dao.SelectContext(ctx, &lines, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.OrderLine{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.OrderLine{}, err
	}

	logger.Debug("success query execute", "countLines", len(lines))

	return lines, nil
}

// Upsert sets the quantity for (order, product), overwriting any previous
// quantity rather than adding to it.
func (dao *OrderLineDAO) Upsert(ctx context.Context, order, product model.ID, quantity int) error {
	logger := dao.Logger.With("query", "upsert")

	query, args, err := dao.Builder.
		Insert("order_lines").
		Columns("order_id", "product_id", "quantity").
		Values(order, product, quantity).
		Suffix("ON CONFLICT (order_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity").
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "orderId", order, "productId", product)

	return nil
}

// Delete removes the line for (order, product). Deleting an absent line is
// not an error.
func (dao *OrderLineDAO) Delete(ctx context.Context, order, product model.ID) error {
	logger := dao.Logger.With("query", "delete")

	query, args, err := dao.Builder.
		Delete("order_lines").
		Where(squirrel.Eq{"order_id": order}).
		Where(squirrel.Eq{"product_id": product}).
		ToSql()
	if err != nil {
		return err
	}

	logger.Debug("build query", "sql", query, "args", args)

	if _, err = dao.ExecContext(ctx, query, args...); err != nil {
		logger.Warn("failed query execute", "error", err)

		return err
	}

	logger.Debug("success query execute", "orderId", order, "productId", product)

	return nil
}
