package store

import (
	"errors"
	"time"

	"cellkit/internal/issue"
)

// ErrNotFound is returned when a document lookup matches nothing.
var ErrNotFound = errors.New("document not found")

type DocumentInput struct {
	Name           string
	Source         string
	SourceFile     string
	SourceHash     string
	Markup         string
	ComponentCount int
	Issues         []IssueRecord
}

type Document struct {
	Name           string
	Source         string
	SourceFile     string
	SourceHash     string
	Markup         string
	ComponentCount int
	IssueCount     int
	LastIngested   time.Time
}

type DocumentSummary struct {
	Name           string
	Source         string
	SourceFile     string
	ComponentCount int
	IssueCount     int
}

// IssueRecord is the persisted form of a validation issue.
type IssueRecord struct {
	Kind        string `json:"kind"`
	Subject     string `json:"subject"`
	SubjectName string `json:"subject_name,omitempty"`
	Description string `json:"description"`
}

func NewIssueRecord(i *issue.Issue) IssueRecord {
	return IssueRecord{
		Kind:        i.Kind().String(),
		Subject:     i.Subject().String(),
		SubjectName: i.SubjectName(),
		Description: i.Description(),
	}
}

func NewIssueRecords(issues []*issue.Issue) []IssueRecord {
	records := make([]IssueRecord, 0, len(issues))
	for _, i := range issues {
		records = append(records, NewIssueRecord(i))
	}
	return records
}
