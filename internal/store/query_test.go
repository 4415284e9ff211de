package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckReadOnly(t *testing.T) {
	allowed := []string{
		"SELECT * FROM documents",
		"  select name from documents;",
		"WITH x AS (SELECT 1) SELECT * FROM x",
		"SELECT\n*\nFROM documents",
		"\twith x as (select 1)\tselect * from x",
	}
	for _, q := range allowed {
		require.NoError(t, CheckReadOnly(q), q)
	}

	rejected := []string{
		"",
		"   ;",
		"SELECTED",
		"DELETE FROM documents",
		"UPDATE documents SET name = 'x'",
		"SELECT 1; DROP TABLE documents",
		"PRAGMA table_info(documents)",
	}
	for _, q := range rejected {
		require.ErrorIs(t, CheckReadOnly(q), ErrWriteQuery, q)
	}
}

func TestPositionalArgs(t *testing.T) {
	require.Empty(t, PositionalArgs(nil))
	require.Equal(t, []any{"a", 2}, PositionalArgs(map[string]any{"1": "a", "2": 2}))
	require.Equal(t, []any{"a"}, PositionalArgs(map[string]any{"1": "a", "3": "c"}))
}
