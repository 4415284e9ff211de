package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"cellkit/internal/store"
)

// Runs only against a disposable database named by CELLKIT_TEST_POSTGRES_DSN.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	dsn := os.Getenv("CELLKIT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("CELLKIT_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	c, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(ctx) })

	require.NoError(t, c.EnsureSchema(ctx))
	_, err = c.pool.Exec(ctx, "TRUNCATE documents, issues")
	require.NoError(t, err)
	return c
}

func TestDocumentRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.UpsertDocument(ctx, store.DocumentInput{
		Name:       "hh",
		Source:     "models",
		SourceFile: "hh.yaml",
		SourceHash: "abc",
		Markup:     "<model/>",
		Issues: []store.IssueRecord{
			{Kind: "reset", Subject: "component", SubjectName: "membrane", Description: "first"},
		},
	}))

	doc, err := c.GetDocument(ctx, "hh", "")
	require.NoError(t, err)
	require.Equal(t, 1, doc.IssueCount)

	issues, err := c.ListIssues(ctx, "hh", "models")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	require.Equal(t, "membrane", issues[0].SubjectName)

	removed, err := c.RemoveStaleDocuments(ctx, "models", nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	_, err = c.GetDocument(ctx, "hh", "")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRunSQLReadOnly(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.UpsertDocument(ctx, store.DocumentInput{
		Name: "hh", Source: "models", SourceFile: "hh.yaml",
	}))

	_, err := c.RunSQL(ctx, "WITH gone AS (DELETE FROM documents RETURNING id) SELECT * FROM gone", nil)
	require.Error(t, err)

	rows, err := c.RunSQL(ctx, "SELECT name FROM documents WHERE source = $1", map[string]any{"1": "models"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "hh", rows[0]["name"])
}
