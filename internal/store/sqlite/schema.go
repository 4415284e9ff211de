package sqlite

import (
	"context"
	"fmt"
	"strings"
)

const ddl = `
CREATE TABLE IF NOT EXISTS documents (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	name            TEXT NOT NULL,
	source          TEXT NOT NULL,
	source_file     TEXT NOT NULL,
	source_hash     TEXT NOT NULL DEFAULT '',
	markup          TEXT NOT NULL DEFAULT '',
	component_count INTEGER NOT NULL DEFAULT 0,
	last_ingested   TEXT DEFAULT (datetime('now')),
	CONSTRAINT uq_document_file UNIQUE (source, source_file)
);

CREATE TABLE IF NOT EXISTS issues (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id  INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position     INTEGER NOT NULL,
	kind         TEXT NOT NULL,
	subject      TEXT NOT NULL DEFAULT 'none',
	subject_name TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_documents_source ON documents (source);
CREATE INDEX IF NOT EXISTS idx_documents_name_source ON documents (name, source);
CREATE INDEX IF NOT EXISTS idx_issues_document ON issues (document_id, position);
CREATE INDEX IF NOT EXISTS idx_issues_kind ON issues (kind);
`

func (c *Client) EnsureSchema(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

// splitStatements breaks a DDL script on lines ending in ';', dropping
// "--" comment lines.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.Lines(script) {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}
	return statements
}
