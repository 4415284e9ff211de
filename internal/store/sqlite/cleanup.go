package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// RemoveStaleDocuments deletes documents of source whose file is no longer
// among currentSourceFiles. An empty list clears the whole source.
func (c *Client) RemoveStaleDocuments(ctx context.Context, source string, currentSourceFiles []string) (int64, error) {
	query := "DELETE FROM documents WHERE source = ?"
	args := []any{source}

	if len(currentSourceFiles) > 0 {
		placeholders := make([]string, len(currentSourceFiles))
		for i, f := range currentSourceFiles {
			placeholders[i] = "?"
			args = append(args, f)
		}
		query += fmt.Sprintf(" AND source_file NOT IN (%s)", strings.Join(placeholders, ", "))
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("removing stale documents: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return affected, nil
}

func (c *Client) GetSourceHashes(ctx context.Context, source string) (map[string]string, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT source_file, source_hash FROM documents WHERE source = ?", source)
	if err != nil {
		return nil, fmt.Errorf("query source hashes: %w", err)
	}
	defer rows.Close()

	hashes := make(map[string]string)
	for rows.Next() {
		var sourceFile, sourceHash string
		if err := rows.Scan(&sourceFile, &sourceHash); err != nil {
			return nil, fmt.Errorf("scanning source hash: %w", err)
		}
		hashes[sourceFile] = sourceHash
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating source hashes: %w", err)
	}
	return hashes, nil
}
