package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type listQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildCustomerListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "customers.buildCustomerListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("customers c").PlaceholderFormat(sq.Dollar)

	if key, ok := filters["key"].(string); ok {
		query = query.Where(sq.Eq{"c.customer_key": key})
	}

	if name, ok := filters["name"].(string); ok {
		query = query.Where(sq.ILike{"c.name": "%" + name + "%"})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT c.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"c.id",
			"c.customer_key",
			"c.name",
			"c.note",
			"c.created_at",
		).
		OrderBy("c.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}

func buildDeviceListQuery(
	ctx context.Context,
	page, size int,
	filters map[string]any,
) (listQuery, error) {
	const op = "devices.buildDeviceListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().From("devices d").PlaceholderFormat(sq.Dollar)

	if code, ok := filters["code"].(string); ok {
		query = query.Where(sq.Eq{"d.device_code": code})
	}

	if model, ok := filters["model"].(string); ok {
		query = query.Where(sq.ILike{"d.model": "%" + model + "%"})
	}

	countSql, countArgs, err := query.Columns("COUNT(DISTINCT d.id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"d.id",
			"d.device_code",
			"d.model",
			"d.created_at",
		).
		OrderBy("d.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return listQuery{}, err
	}

	return listQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
