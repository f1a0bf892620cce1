package database

import (
	"context"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/grigorv/snackshop/internal/model"
)

type ProductDAO struct {
	Logger *slog.Logger
	*DB
}

func NewProductDAO(logger *slog.Logger, db *DB) *ProductDAO {
	return &ProductDAO{
		Logger: logger.With("dao", "product"),
		DB:     db,
	}
}

func (dao *ProductDAO) FindAll(ctx context.Context) ([]model.ProductSummary, error) {
	logger := dao.Logger.With("query", "findAll")

	query, args, err := dao.Builder.
		Select("id", "name", "price", "image_url").
		From("products").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return []model.ProductSummary{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	products := make([]model.ProductSummary, 0)
	if err := dao.SelectContext(ctx, &products, query, args...); err != nil {
		if IsNoRows(err) {
			return []model.ProductSummary{}, nil
		}

		logger.Warn("failed query execute", "error", err)

		return []model.ProductSummary{}, err
	}

	logger.Debug("success query execute", "countProducts", len(products))

	return products, nil
}

func (dao *ProductDAO) Get(ctx context.Context, id model.ID) (model.Product, error) {
	logger := dao.Logger.With("query", "get")

	query, args, err := dao.Builder.
		Select("*").
		From("products").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Product{}, err
	}

	logger.Debug("build query", "sql", query, "args", args)

	var product model.Product
	row := dao.QueryRowxContext(ctx, query, args...)
	if err := row.StructScan(&product); err != nil {
		if IsNoRows(err) {
			return model.Product{}, model.NewError("product", model.ErrNotFound)
		}

		logger.Warn("failed query execute", "error", err)

		return model.Product{}, err
	}

	return product, nil
}
