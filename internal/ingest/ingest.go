package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cellkit/internal/archive"
	"cellkit/internal/config"
	"cellkit/internal/logger"
	"cellkit/internal/parser"
	"cellkit/internal/printer"
	"cellkit/internal/store"
	"cellkit/internal/validate"
)

type Result struct {
	DocumentsUpserted int
	DocumentsRemoved  int
	ObjectsArchived   int
	IssuesFound       int
	FilesSkipped      int
	Errors            []error
}

type Options struct {
	// Full re-ingests every file, ignoring stored hashes.
	Full bool
	// Archive, when set, receives the markup of every upserted document.
	Archive archive.Archive
}

func Run(ctx context.Context, cfg *config.ProjectConfig, db store.Store, options Options) (*Result, error) {
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	result := &Result{}
	sourceFiles := make(map[string][]string)
	storedFiles := make(map[string]map[string]string)

	for _, source := range cfg.Sources {
		ctx := logger.WithKV(ctx, "source", source.Name)

		existingHashes, err := db.GetSourceHashes(ctx, source.Name)
		if err != nil {
			return nil, fmt.Errorf("get source hashes for %s: %w", source.Name, err)
		}
		storedFiles[source.Name] = existingHashes

		files, err := walkModelFiles(source.Paths, cfg.Exclude)
		if err != nil {
			return nil, fmt.Errorf("walking files for source %s: %w", source.Name, err)
		}

		// Files whose content no longer yields a document are left out, so
		// their old rows and objects are removed below.
		current := make([]string, 0, len(files))
		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			hash, err := computeHash(path)
			if err != nil {
				result.addError(ctx, path, fmt.Errorf("hashing %s: %w", path, err))
				current = append(current, path)
				continue
			}
			if !options.Full {
				if existing, ok := existingHashes[path]; ok && existing == hash {
					logger.DebugKV(ctx, "unchanged, skipping", "file", path)
					result.FilesSkipped++
					current = append(current, path)
					continue
				}
			}

			input, err := buildDocument(ctx, source.Name, path, hash)
			if errors.Is(err, parser.ErrEmptyDocument) {
				result.FilesSkipped++
				continue
			}
			if err != nil {
				result.addError(ctx, path, err)
				continue
			}
			current = append(current, path)

			// The hash is only stored once the object is archived, so a
			// failed upload is retried on the next incremental run.
			if options.Archive != nil {
				key := archive.Key(source.Name, path)
				if err := options.Archive.Put(ctx, key, []byte(input.Markup)); err != nil {
					result.addError(ctx, path, fmt.Errorf("archiving %s: %w", path, err))
					continue
				}
				result.ObjectsArchived++
			}

			if err := db.UpsertDocument(ctx, *input); err != nil {
				result.addError(ctx, path, fmt.Errorf("upserting %s: %w", path, err))
				continue
			}
			result.DocumentsUpserted++
			result.IssuesFound += len(input.Issues)
		}
		sourceFiles[source.Name] = current
	}

	for _, source := range cfg.Sources {
		ctx := logger.WithKV(ctx, "source", source.Name)

		deleted, err := db.RemoveStaleDocuments(ctx, source.Name, sourceFiles[source.Name])
		if err != nil {
			result.addError(ctx, "", fmt.Errorf("removing stale documents for %s: %w", source.Name, err))
			continue
		}
		result.DocumentsRemoved += int(deleted)

		if options.Archive != nil {
			for _, stale := range staleFiles(storedFiles[source.Name], sourceFiles[source.Name]) {
				if err := options.Archive.Delete(ctx, archive.Key(source.Name, stale)); err != nil {
					result.addError(ctx, stale, fmt.Errorf("unarchiving %s: %w", stale, err))
				}
			}
		}
	}

	logger.InfoKV(ctx, "ingest finished",
		"upserted", result.DocumentsUpserted,
		"removed", result.DocumentsRemoved,
		"archived", result.ObjectsArchived,
		"skipped", result.FilesSkipped,
		"issues", result.IssuesFound,
		"errors", len(result.Errors),
	)
	return result, nil
}

func (r *Result) addError(ctx context.Context, path string, err error) {
	logger.ErrorKV(ctx, "ingest failed", "file", path, "error", err)
	r.Errors = append(r.Errors, err)
}

// buildDocument parses, validates and renders one file.
func buildDocument(ctx context.Context, source, path, hash string) (*store.DocumentInput, error) {
	doc, err := parser.ParseFile(path)
	if err != nil {
		if errors.Is(err, parser.ErrEmptyDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	report, err := validate.Run(ctx, doc.Model)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !report.Empty() {
		logger.WarnKV(ctx, "document has issues", "file", path, "count", len(report.Issues))
	}

	return &store.DocumentInput{
		Name:           doc.Model.Name(),
		Source:         source,
		SourceFile:     path,
		SourceHash:     hash,
		Markup:         printer.PrintModel(doc.Model),
		ComponentCount: doc.Model.ComponentCount(),
		Issues:         store.NewIssueRecords(report.Issues),
	}, nil
}

// staleFiles returns the stored files that are no longer present, sorted.
func staleFiles(stored map[string]string, current []string) []string {
	present := make(map[string]struct{}, len(current))
	for _, f := range current {
		present[f] = struct{}{}
	}
	var stale []string
	for f := range stored {
		if _, ok := present[f]; !ok {
			stale = append(stale, f)
		}
	}
	slices.Sort(stale)
	return stale
}

func walkModelFiles(roots []string, excludes []string) ([]string, error) {
	excluded := make([]string, 0, len(excludes))
	for _, path := range excludes {
		if path == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(path))
	}

	var files []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if isExcluded(path, excluded) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isModelFile(d.Name()) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isModelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func isExcluded(path string, excludes []string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range excludes {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}

func computeHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
