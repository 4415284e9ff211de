package postgres

import (
	"context"
	"fmt"
)

const ddl = `
CREATE TABLE IF NOT EXISTS documents (
    id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    name            TEXT NOT NULL,
    source          TEXT NOT NULL,
    source_file     TEXT NOT NULL,
    source_hash     TEXT NOT NULL DEFAULT '',
    markup          TEXT NOT NULL DEFAULT '',
    component_count INTEGER NOT NULL DEFAULT 0,
    last_ingested   TIMESTAMPTZ DEFAULT now(),
    CONSTRAINT uq_document_file UNIQUE (source, source_file)
);

CREATE TABLE IF NOT EXISTS issues (
    id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    document_id  BIGINT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
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

// EnsureSchema runs the whole script in one Exec, which PostgreSQL applies
// as a single implicit transaction.
func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("executing DDL: %w", err)
	}
	return nil
}
