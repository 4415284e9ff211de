package store

import "context"

// Store persists rendered documents and the issues found in them.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// UpsertDocument writes the document and replaces its issues in one
	// transaction.
	UpsertDocument(ctx context.Context, d DocumentInput) error
	RemoveStaleDocuments(ctx context.Context, source string, currentSourceFiles []string) (int64, error)
	GetSourceHashes(ctx context.Context, source string) (map[string]string, error)

	GetDocument(ctx context.Context, name, source string) (*Document, error)
	ListDocuments(ctx context.Context, source string) ([]DocumentSummary, error)
	ListIssues(ctx context.Context, name, source string) ([]IssueRecord, error)

	RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
