// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages the temporary files of a converter instance:
// one unique primary file per instance, derived artifacts sharing its path
// as a prefix, and best-effort glob cleanup at teardown.
package workspace

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/convert-engine/pkg/types"
)

const filePrefix = "convert-engine-"

// Workspace owns a unique primary temp file under a writable directory.
// Each conversion overwrites the primary's content, so one workspace serves
// at most one conversion at a time.
type Workspace struct {
	dir     string
	primary string
}

// New resolves the working directory (empty means the platform temp
// directory), verifies it exists and is writable, and reserves a unique
// primary path. The primary file itself is created lazily by Persist.
func New(dir string) (*Workspace, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, &types.ConfigurationError{Reason: "work directory " + dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &types.ConfigurationError{Reason: "work directory " + dir + " is not a directory"}
	}
	if err := probeWritable(dir); err != nil {
		return nil, &types.ConfigurationError{Reason: "work directory " + dir + " is not writable", Err: err}
	}

	suffix := make([]byte, 8)
	if _, err := rand.Read(suffix); err != nil {
		return nil, &types.ConfigurationError{Reason: "generating temp-file suffix", Err: err}
	}

	return &Workspace{
		dir:     dir,
		primary: filepath.Join(dir, filePrefix+hex.EncodeToString(suffix)),
	}, nil
}

// probeWritable creates and removes a throwaway file in dir.
func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

// Dir returns the working directory.
func (w *Workspace) Dir() string { return w.dir }

// Primary returns the primary temp-file path.
func (w *Workspace) Primary() string { return w.primary }

// Derived returns the path of an artifact with the given extension (no
// leading dot), sharing the primary path as a prefix.
func (w *Workspace) Derived(ext string) string {
	return w.primary + "." + ext
}

// Persist writes content to the primary file, truncating any prior content,
// and returns its path.
func (w *Workspace) Persist(content []byte) (string, error) {
	if err := os.WriteFile(w.primary, content, 0o644); err != nil {
		return "", fmt.Errorf("writing input to %s: %w", w.primary, err)
	}
	return w.primary, nil
}

// Cleanup removes the primary file and every artifact sharing its path as a
// prefix. Individual deletion failures are ignored: a missing or already
// removed file is not an error, and Cleanup is safe to call repeatedly.
func (w *Workspace) Cleanup() {
	matches, err := filepath.Glob(w.primary + "*")
	if err != nil {
		return
	}
	for _, m := range matches {
		_ = os.Remove(m)
	}
}
