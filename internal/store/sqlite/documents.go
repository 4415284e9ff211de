package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cellkit/internal/store"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

func (c *Client) UpsertDocument(ctx context.Context, d store.DocumentInput) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT INTO documents (name, source, source_file, source_hash, markup, component_count, last_ingested)
	VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (source, source_file) DO UPDATE SET
		name = excluded.name,
		source_hash = excluded.source_hash,
		markup = excluded.markup,
		component_count = excluded.component_count,
		last_ingested = datetime('now')
	RETURNING id
	`

	var id int64
	err = tx.QueryRowContext(ctx, query,
		d.Name,
		d.Source,
		d.SourceFile,
		d.SourceHash,
		d.Markup,
		d.ComponentCount,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM issues WHERE document_id = ?", id); err != nil {
		return fmt.Errorf("clearing issues: %w", err)
	}

	for i, rec := range d.Issues {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO issues (document_id, position, kind, subject, subject_name, description)
		VALUES (?, ?, ?, ?, ?, ?)
		`, id, i, rec.Kind, rec.Subject, rec.SubjectName, rec.Description)
		if err != nil {
			return fmt.Errorf("inserting issue %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing document: %w", err)
	}
	return nil
}

func (c *Client) GetDocument(ctx context.Context, name, source string) (*store.Document, error) {
	query := `
	SELECT d.name, d.source, d.source_file, d.source_hash, d.markup, d.component_count,
	       (SELECT COUNT(*) FROM issues i WHERE i.document_id = d.id),
	       d.last_ingested
	FROM documents d
	WHERE d.name = ?
	  AND (? = '' OR d.source = ?)
	ORDER BY d.last_ingested DESC, d.id DESC
	LIMIT 1
	`

	var d store.Document
	var ingested sql.NullString
	err := c.db.QueryRowContext(ctx, query, name, source, source).Scan(
		&d.Name,
		&d.Source,
		&d.SourceFile,
		&d.SourceHash,
		&d.Markup,
		&d.ComponentCount,
		&d.IssueCount,
		&ingested,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	if ingested.Valid {
		t, err := time.ParseInLocation(sqliteTimeLayout, ingested.String, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing last_ingested: %w", err)
		}
		d.LastIngested = t
	}
	return &d, nil
}

func (c *Client) ListDocuments(ctx context.Context, source string) ([]store.DocumentSummary, error) {
	query := `
	SELECT d.name, d.source, d.source_file, d.component_count,
	       (SELECT COUNT(*) FROM issues i WHERE i.document_id = d.id)
	FROM documents d
	WHERE (? = '' OR d.source = ?)
	ORDER BY d.source, d.name, d.source_file
	`

	rows, err := c.db.QueryContext(ctx, query, source, source)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []store.DocumentSummary
	for rows.Next() {
		var s store.DocumentSummary
		if err := rows.Scan(&s.Name, &s.Source, &s.SourceFile, &s.ComponentCount, &s.IssueCount); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
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
	WHERE d.source = ? AND d.source_file = ?
	ORDER BY i.position
	`

	rows, err := c.db.QueryContext(ctx, query, doc.Source, doc.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	issues := make([]store.IssueRecord, 0, doc.IssueCount)
	for rows.Next() {
		var rec store.IssueRecord
		if err := rows.Scan(&rec.Kind, &rec.Subject, &rec.SubjectName, &rec.Description); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issues = append(issues, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}
