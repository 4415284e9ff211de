package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"cellkit/internal/logger"
	"cellkit/internal/parser"
	"cellkit/internal/printer"
	"cellkit/internal/store"
	"cellkit/internal/validate"
)

var errNoStore = errors.New("no document store configured")

type DocumentContentInput struct {
	Content string `json:"content" jsonschema:"YAML model description"`
}

type DocumentRefInput struct {
	Name   string `json:"name" jsonschema:"model name"`
	Source string `json:"source,omitempty" jsonschema:"restrict to a configured source"`
}

type ListDocumentsInput struct {
	Source string `json:"source,omitempty" jsonschema:"source filter"`
}

type PrintDocumentOutput struct {
	Name   string `json:"name"`
	Markup string `json:"markup"`
}

type ValidateDocumentOutput struct {
	Name   string              `json:"name"`
	Valid  bool                `json:"valid"`
	Issues []store.IssueRecord `json:"issues"`
}

type DocumentOutput struct {
	Name           string `json:"name"`
	Source         string `json:"source"`
	SourceFile     string `json:"source_file"`
	SourceHash     string `json:"source_hash"`
	Markup         string `json:"markup"`
	ComponentCount int    `json:"component_count"`
	IssueCount     int    `json:"issue_count"`
	LastIngested   string `json:"last_ingested,omitempty"`
}

type DocumentSummaryOutput struct {
	Name           string `json:"name"`
	Source         string `json:"source"`
	SourceFile     string `json:"source_file"`
	ComponentCount int    `json:"component_count"`
	IssueCount     int    `json:"issue_count"`
}

type ListDocumentsOutput struct {
	Documents []DocumentSummaryOutput `json:"documents"`
}

type ListIssuesOutput struct {
	Issues []store.IssueRecord `json:"issues"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "print_document",
		Description: "Render a YAML model description as canonical CellML markup",
	}, logged(s, "print_document", s.handlePrintDocument))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "validate_document",
		Description: "Validate a YAML model description and list its issues",
	}, logged(s, "validate_document", s.handleValidateDocument))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_document",
		Description: "Retrieve an ingested document and its markup",
	}, logged(s, "get_document", s.handleGetDocument))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_documents",
		Description: "List ingested documents with optional source filter",
	}, logged(s, "list_documents", s.handleListDocuments))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_issues",
		Description: "List the validation issues recorded for an ingested document",
	}, logged(s, "list_issues", s.handleListIssues))
}

// logged runs h with a context logger tagged with the tool name and records
// failed calls.
func logged[In, Out any](
	s *Server,
	tool string,
	h func(context.Context, *sdk.CallToolRequest, In) (*sdk.CallToolResult, Out, error),
) func(context.Context, *sdk.CallToolRequest, In) (*sdk.CallToolResult, Out, error) {
	return func(ctx context.Context, req *sdk.CallToolRequest, input In) (*sdk.CallToolResult, Out, error) {
		ctx = logger.ToContext(ctx, s.log.With("tool", tool))
		logger.DebugKV(ctx, "tool called")

		result, output, err := h(ctx, req, input)
		if err != nil {
			logger.ErrorKV(ctx, "tool failed", "error", err)
		}
		return result, output, err
	}
}

func (s *Server) handlePrintDocument(ctx context.Context, req *sdk.CallToolRequest, input DocumentContentInput) (*sdk.CallToolResult, PrintDocumentOutput, error) {
	doc, err := parser.Parse([]byte(input.Content))
	if err != nil {
		return nil, PrintDocumentOutput{}, err
	}
	return nil, PrintDocumentOutput{
		Name:   doc.Model.Name(),
		Markup: printer.PrintModel(doc.Model),
	}, nil
}

func (s *Server) handleValidateDocument(ctx context.Context, req *sdk.CallToolRequest, input DocumentContentInput) (*sdk.CallToolResult, ValidateDocumentOutput, error) {
	doc, err := parser.Parse([]byte(input.Content))
	if err != nil {
		return nil, ValidateDocumentOutput{}, err
	}
	report, err := validate.Run(ctx, doc.Model)
	if err != nil {
		return nil, ValidateDocumentOutput{}, err
	}
	return nil, ValidateDocumentOutput{
		Name:   doc.Model.Name(),
		Valid:  report.Empty(),
		Issues: store.NewIssueRecords(report.Issues),
	}, nil
}

func (s *Server) handleGetDocument(ctx context.Context, req *sdk.CallToolRequest, input DocumentRefInput) (*sdk.CallToolResult, DocumentOutput, error) {
	if input.Name == "" {
		return nil, DocumentOutput{}, fmt.Errorf("name is required")
	}
	if s.db == nil {
		return nil, DocumentOutput{}, errNoStore
	}
	doc, err := s.db.GetDocument(ctx, input.Name, input.Source)
	if err != nil {
		return nil, DocumentOutput{}, err
	}
	return nil, documentOutputFromStore(doc), nil
}

func (s *Server) handleListDocuments(ctx context.Context, req *sdk.CallToolRequest, input ListDocumentsInput) (*sdk.CallToolResult, ListDocumentsOutput, error) {
	if s.db == nil {
		return nil, ListDocumentsOutput{}, errNoStore
	}
	items, err := s.db.ListDocuments(ctx, input.Source)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := make([]DocumentSummaryOutput, 0, len(items))
	for _, item := range items {
		output = append(output, DocumentSummaryOutput(item))
	}
	return nil, ListDocumentsOutput{Documents: output}, nil
}

func (s *Server) handleListIssues(ctx context.Context, req *sdk.CallToolRequest, input DocumentRefInput) (*sdk.CallToolResult, ListIssuesOutput, error) {
	if input.Name == "" {
		return nil, ListIssuesOutput{}, fmt.Errorf("name is required")
	}
	if s.db == nil {
		return nil, ListIssuesOutput{}, errNoStore
	}
	issues, err := s.db.ListIssues(ctx, input.Name, input.Source)
	if err != nil {
		return nil, ListIssuesOutput{}, err
	}
	if issues == nil {
		issues = []store.IssueRecord{}
	}
	return nil, ListIssuesOutput{Issues: issues}, nil
}

func documentOutputFromStore(doc *store.Document) DocumentOutput {
	if doc == nil {
		return DocumentOutput{}
	}
	out := DocumentOutput{
		Name:           doc.Name,
		Source:         doc.Source,
		SourceFile:     doc.SourceFile,
		SourceHash:     doc.SourceHash,
		Markup:         doc.Markup,
		ComponentCount: doc.ComponentCount,
		IssueCount:     doc.IssueCount,
	}
	if !doc.LastIngested.IsZero() {
		out.LastIngested = doc.LastIngested.UTC().Format(time.RFC3339)
	}
	return out
}
