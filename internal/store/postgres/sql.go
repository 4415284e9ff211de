package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cellkit/internal/store"
)

// RunSQL runs a read query inside a READ ONLY transaction, which also
// rejects data-modifying CTEs.
func (c *Client) RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	if err := store.CheckReadOnly(query); err != nil {
		return nil, err
	}

	results := make([]map[string]any, 0)
	err := pgx.BeginTxFunc(ctx, c.pool, pgx.TxOptions{AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, store.PositionalArgs(params)...)
		if err != nil {
			return fmt.Errorf("running sql: %w", err)
		}
		defer rows.Close()

		fieldDescriptions := rows.FieldDescriptions()
		for rows.Next() {
			values, err := rows.Values()
			if err != nil {
				return fmt.Errorf("getting row values: %w", err)
			}

			row := make(map[string]any, len(fieldDescriptions))
			for i, fd := range fieldDescriptions {
				row[fd.Name] = values[i]
			}
			results = append(results, row)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating sql rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
