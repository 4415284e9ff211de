package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cellkit/internal/store"
)

func (c *Client) UpsertDocument(ctx context.Context, d store.DocumentInput) error {
	return pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		query := `
INSERT INTO documents (name, source, source_file, source_hash, markup, component_count, last_ingested)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (source, source_file) DO UPDATE SET
    name = EXCLUDED.name,
    source_hash = EXCLUDED.source_hash,
    markup = EXCLUDED.markup,
    component_count = EXCLUDED.component_count,
    last_ingested = now()
RETURNING id
`
		var id int64
		err := tx.QueryRow(ctx, query,
			d.Name, d.Source, d.SourceFile, d.SourceHash, d.Markup, d.ComponentCount,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("upserting document: %w", err)
		}

		batch := &pgx.Batch{}
		batch.Queue("DELETE FROM issues WHERE document_id = $1", id)
		for i, rec := range d.Issues {
			batch.Queue(`
INSERT INTO issues (document_id, position, kind, subject, subject_name, description)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, i, rec.Kind, rec.Subject, rec.SubjectName, rec.Description)
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("replacing issues: %w", err)
		}
		return nil
	})
}

func (c *Client) GetDocument(ctx context.Context, name, source string) (*store.Document, error) {
	query := `
SELECT d.name, d.source, d.source_file, d.source_hash, d.markup, d.component_count,
       (SELECT COUNT(*) FROM issues i WHERE i.document_id = d.id)::int,
       d.last_ingested
FROM documents d
WHERE d.name = $1
  AND ($2::text = '' OR d.source = $2)
ORDER BY d.last_ingested DESC, d.id DESC
LIMIT 1
`

	var d store.Document
	err := c.pool.QueryRow(ctx, query, name, source).Scan(
		&d.Name,
		&d.Source,
		&d.SourceFile,
		&d.SourceHash,
		&d.Markup,
		&d.ComponentCount,
		&d.IssueCount,
		&d.LastIngested,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return &d, nil
}

func (c *Client) ListDocuments(ctx context.Context, source string) ([]store.DocumentSummary, error) {
	query := `
SELECT d.name, d.source, d.source_file, d.component_count,
       (SELECT COUNT(*) FROM issues i WHERE i.document_id = d.id)::int
FROM documents d
WHERE ($1::text = '' OR d.source = $1)
ORDER BY d.source, d.name, d.source_file
`

	rows, err := c.pool.Query(ctx, query, source)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.DocumentSummary, error) {
		var s store.DocumentSummary
		err := row.Scan(&s.Name, &s.Source, &s.SourceFile, &s.ComponentCount, &s.IssueCount)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning documents: %w", err)
	}
	return docs, nil
}

func (c *Client) ListIssues(ctx context.Context, name, source string) ([]store.IssueRecord, error) {
	doc, err := c.GetDocument(ctx, name, source)
	if err != nil {
		return nil, err
	}

	query := `
SELECT i.kind, i.subject, i.subject_name, i.description
FROM issues i
JOIN documents d ON d.id = i.document_id
WHERE d.source = $1 AND d.source_file = $2
ORDER BY i.position
`

	rows, err := c.pool.Query(ctx, query, doc.Source, doc.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	issues, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.IssueRecord, error) {
		var rec store.IssueRecord
		err := row.Scan(&rec.Kind, &rec.Subject, &rec.SubjectName, &rec.Description)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning issues: %w", err)
	}
	return issues, nil
}
