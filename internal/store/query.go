package store

import (
	"errors"
	"strconv"
	"strings"
)

// ErrWriteQuery is returned by RunSQL for statements that are not reads.
var ErrWriteQuery = errors.New("only SELECT and WITH queries are allowed")

// CheckReadOnly rejects queries that do not start with SELECT or WITH, or
// that chain further statements after a semicolon. It is an early filter
// only.
func CheckReadOnly(query string) error {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	if strings.Contains(q, ";") {
		return ErrWriteQuery
	}

	fields := strings.Fields(q)
	if len(fields) == 0 {
		return ErrWriteQuery
	}
	// WITH may still prefix a write; the backends run RunSQL read-only.
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH":
		return nil
	default:
		return ErrWriteQuery
	}
}

// PositionalArgs orders params keyed "1", "2", ... into a slice, stopping
// at the first missing key.
func PositionalArgs(params map[string]any) []any {
	args := make([]any, 0, len(params))
	for i := 1; i <= len(params); i++ {
		val, ok := params[strconv.Itoa(i)]
		if !ok {
			break
		}
		args = append(args, val)
	}
	return args
}
