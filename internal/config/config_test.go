package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := LoadProjectConfig(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)
		require.Equal(t, "test-project", cfg.Project)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, BackendSQLite, cfg.Backend())
		require.Len(t, cfg.Sources, 2)
		require.Equal(t, []string{"./models/drafts/"}, cfg.Exclude)
		require.NotNil(t, cfg.Archive)
		require.Equal(t, "s3", cfg.Archive.Driver)
		require.Equal(t, "cellkit-models", cfg.Archive.Bucket)
		require.True(t, cfg.Archive.PathStyle)
	})

	t.Run("postgres dsn", func(t *testing.T) {
		path := writeTempConfig(t, "project: test\nversion: 1\ndatabase:\n  dsn: postgres://u:p@localhost/cellkit\nsources:\n  - name: models\n    paths: [./models]\n")
		cfg, err := LoadProjectConfig(path)
		require.NoError(t, err)
		require.Equal(t, BackendPostgres, cfg.Backend())
	})

	failures := map[string]string{
		"missing project name":   "version: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\n",
		"unsupported version":    "project: test\nversion: 2\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\n",
		"missing dsn":            "project: test\nversion: 1\nsources:\n  - name: models\n    paths: [./models]\n",
		"unknown dsn scheme":     "project: test\nversion: 1\ndatabase:\n  dsn: mysql://x\nsources:\n  - name: models\n    paths: [./models]\n",
		"no sources":             "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\n",
		"source missing name":    "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - paths: [./models]\n",
		"source missing paths":   "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n",
		"duplicate source names": "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./a]\n  - name: Models\n    paths: [./b]\n",
		"invalid yaml":           "project: [\n",
		"unknown log level":      "project: test\nversion: 1\nlog_level: loud\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\n",
		"archive unknown driver": "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\narchive:\n  driver: ftp\n",
		"archive fs missing dir": "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\narchive:\n  driver: fs\n",
		"archive s3 no bucket":   "project: test\nversion: 1\ndatabase:\n  dsn: sqlite://x.db\nsources:\n  - name: models\n    paths: [./models]\narchive:\n  driver: s3\n",
	}
	for name, contents := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProjectConfig(writeTempConfig(t, contents))
			require.Error(t, err)
		})
	}

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
