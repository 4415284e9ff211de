package postgres

import (
	"context"
	"fmt"
)

// RemoveStaleDocuments deletes documents of source whose file is no longer
// among currentSourceFiles. An empty list clears the whole source.
func (c *Client) RemoveStaleDocuments(ctx context.Context, source string, currentSourceFiles []string) (int64, error) {
	if currentSourceFiles == nil {
		currentSourceFiles = []string{}
	}

	query := `
DELETE FROM documents
WHERE source = $1
  AND NOT (source_file = ANY($2))
`

	tag, err := c.pool.Exec(ctx, query, source, currentSourceFiles)
	if err != nil {
		return 0, fmt.Errorf("removing stale documents: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (c *Client) GetSourceHashes(ctx context.Context, source string) (map[string]string, error) {
	rows, err := c.pool.Query(ctx,
		"SELECT source_file, source_hash FROM documents WHERE source = $1", source)
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
