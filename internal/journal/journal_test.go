// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	first := Entry{
		From:        "markdown",
		To:          "html",
		ResultMode:  "stdout",
		ExitCode:    0,
		Duration:    120 * time.Millisecond,
		CommandLine: "pandoc --from=markdown --to=html /tmp/in",
	}
	second := Entry{
		From:        "markdown",
		To:          "docx",
		ResultMode:  "file",
		ExitCode:    1,
		Duration:    40 * time.Millisecond,
		CommandLine: "pandoc --from=markdown --output=/tmp/in.docx /tmp/in",
		Error:       "conversion failed with exit code 1",
	}
	require.NoError(t, j.Record(first))
	require.NoError(t, j.Record(second))

	entries, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "docx", entries[0].To)
	assert.Equal(t, 1, entries[0].ExitCode)
	assert.Equal(t, "file", entries[0].ResultMode)
	assert.Equal(t, second.Error, entries[0].Error)
	assert.Equal(t, "html", entries[1].To)
	assert.Equal(t, first.CommandLine, entries[1].CommandLine)
	assert.Equal(t, first.Duration, entries[1].Duration)
	assert.False(t, entries[1].CreatedAt.IsZero())
}

func TestRecentLimit(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(Entry{To: "html", ResultMode: "stdout", CommandLine: "x"}))
	}

	entries, err := j.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "journal.db")
	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	// Reopening an existing database must not fail on the schema.
	j, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())
}

func TestRecentEmpty(t *testing.T) {
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer j.Close()

	entries, err := j.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
