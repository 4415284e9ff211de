// Package archive publishes rendered model markup to an object store so it
// can be served or diffed outside the catalog database.
package archive

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"cellkit/internal/config"
)

// ContentType is attached to every archived object.
const ContentType = "application/cellml+xml"

type Driver string

const (
	DriverFS Driver = "fs"
	DriverS3 Driver = "s3"
)

// Archive stores one markup object per source file.
type Archive interface {
	Put(ctx context.Context, key string, markup []byte) error
	Delete(ctx context.Context, key string) error
	Driver() Driver
}

var ErrUnknownDriver = errors.New("unknown archive driver")

// Open builds the archive described by cfg. A nil cfg means archiving is
// disabled and yields a nil Archive.
func Open(ctx context.Context, cfg *config.ArchiveConfig) (Archive, error) {
	if cfg == nil {
		return nil, nil
	}
	switch Driver(cfg.Driver) {
	case DriverFS:
		a, err := NewFS(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return a, nil
	case DriverS3:
		a, err := NewS3(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			Prefix:    cfg.Prefix,
			PathStyle: cfg.PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Key maps a source file to its object key: the source name followed by the
// file path with ".cellml" appended. The original extension stays, so a.yaml
// and a.yml never share an object.
func Key(source, sourceFile string) string {
	p := filepath.ToSlash(sourceFile)
	return path.Join(source, strings.TrimLeft(path.Clean("/"+p), "/")) + ".cellml"
}
