package gateway

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/greenmarket/agridash/internal/domain"
	"github.com/greenmarket/agridash/internal/pkg/constants"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresGateway runs queries over a direct relational connection. The
// pool is created lazily on first use and reused for the process
// lifetime.
type PostgresGateway struct {
	dsn      string
	schema   string
	identity string
	pool     *pgxpool.Pool
}

func NewPostgresGateway(dsn, schema, identity string) *PostgresGateway {
	return &PostgresGateway{dsn: dsn, schema: schema, identity: identity}
}

func (g *PostgresGateway) Config() Config {
	return Config{Schema: g.schema, Identity: g.identity}
}

func (g *PostgresGateway) getPool(ctx context.Context) (*pgxpool.Pool, error) {
	if g.pool != nil {
		return g.pool, nil
	}

	pool, err := pgxpool.New(ctx, g.dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: pgxpool.New: %s", constants.ErrBackendUnavailable, err)
	}

	g.pool = pool
	return g.pool, nil
}

// Close releases the connection pool.
func (g *PostgresGateway) Close() {
	if g.pool != nil {
		g.pool.Close()
	}
}

// rewritePlaceholders converts the builders' '?' templates to the $n form
// pgx expects.
func rewritePlaceholders(sqlText string) (string, error) {
	return sq.Dollar.ReplacePlaceholders(sqlText)
}

func (g *PostgresGateway) Query(ctx context.Context, sqlText string, args ...interface{}) (*domain.ResultTable, error) {
	pool, err := g.getPool(ctx)
	if err != nil {
		return nil, err
	}

	bound, err := rewritePlaceholders(sqlText)
	if err != nil {
		return nil, fmt.Errorf("replace placeholders: %w", err)
	}

	rows, err := pool.Query(ctx, bound, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrQueryFailed, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, string(f.Name))
	}

	table := &domain.ResultTable{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%w: read row: %s", constants.ErrQueryFailed, err)
		}

		row := make(domain.ResultRow, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrQueryFailed, err)
	}

	return table, nil
}
