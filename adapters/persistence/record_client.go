package persistence

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/record"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresRecordClient struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRecordClient(db *pgxpool.Pool, logger logger.Logger) record.Client {
	return &postgresRecordClient{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (c *postgresRecordClient) Select(ctx context.Context, table string, q record.Query) ([]record.Row, error) {
	builder := psql.Select("*").From(table)
	if q.Filter != nil {
		builder = builder.Where(sq.Eq{q.Filter.Column: q.Filter.Value})
	}
	if q.Limit > 0 {
		builder = builder.Limit(q.Limit)
	}
	return c.query(ctx, "select from "+table, builder)
}

func (c *postgresRecordClient) Insert(ctx context.Context, table string, row record.Row) ([]record.Row, error) {
	builder := psql.Insert(table).
		SetMap(map[string]any(row)).
		Suffix("RETURNING *")
	return c.query(ctx, "insert into "+table, builder)
}

func (c *postgresRecordClient) Update(ctx context.Context, table, id string, row record.Row) ([]record.Row, error) {
	if !isRecordID(id) {
		return []record.Row{}, nil
	}
	if len(row) == 0 {
		// Nothing to set: report the current row so callers still see a match.
		return c.Select(ctx, table, record.Where(record.ColumnID, id).First())
	}
	builder := psql.Update(table).
		SetMap(map[string]any(row)).
		Where(sq.Eq{record.ColumnID: id}).
		Suffix("RETURNING *")
	return c.query(ctx, "update "+table, builder)
}

func (c *postgresRecordClient) Delete(ctx context.Context, table, id string) ([]record.Row, error) {
	if !isRecordID(id) {
		return []record.Row{}, nil
	}
	builder := psql.Delete(table).
		Where(sq.Eq{record.ColumnID: id}).
		Suffix("RETURNING *")
	return c.query(ctx, "delete from "+table, builder)
}

func (c *postgresRecordClient) query(ctx context.Context, op string, builder sq.Sqlizer) ([]record.Row, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal(fmt.Sprintf("failed to build %s query", op), err)
	}

	rows, err := c.db.Query(ctx, sql, args...)
	if err != nil {
		c.logger.Debug("Store query failed", zap.String("op", op), zap.Error(err))
		return nil, apperror.NewUpstream(fmt.Sprintf("failed to %s", op), err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, apperror.NewUpstream(fmt.Sprintf("failed to read %s rows", op), err)
	}

	out := make([]record.Row, 0, len(maps))
	for _, m := range maps {
		out = append(out, normalizeRow(m))
	}
	return out, nil
}

// isRecordID reports whether id can match a row at all. Ids are uuid
// columns, so anything else is answered as "zero rows affected" instead of
// a driver error.
func isRecordID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// normalizeRow converts driver-native values into JSON-friendly ones.
func normalizeRow(m map[string]any) record.Row {
	row := make(record.Row, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case [16]byte:
			row[k] = uuid.UUID(val).String()
		default:
			row[k] = val
		}
	}
	return row
}
