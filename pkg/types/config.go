// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types of convert-engine:
// configuration, result modes, and the error taxonomy surfaced to callers.
package types

import "time"

// Config holds the settings for constructing a Converter. All fields are
// optional; zero values select the built-in defaults.
type Config struct {
	// ExecutablePath is the path to the external converter binary. Empty
	// means resolve the default tool name from PATH.
	ExecutablePath string `json:"executable_path" yaml:"executable_path"`

	// WorkDir is the directory for temporary artifacts. Empty means the
	// platform temp directory.
	WorkDir string `json:"work_dir" yaml:"work_dir"`

	// Timeout bounds each conversion. Zero means unbounded execution.
	// When set, the process receives a graceful termination signal at
	// Timeout and a forceful kill 2*Timeout later.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// TablesPath points at a YAML file overriding the built-in format and
	// output-rule tables. Empty means use the built-in tables.
	TablesPath string `json:"tables_path" yaml:"tables_path"`

	// JournalPath points at the SQLite conversion journal. Empty disables
	// journaling.
	JournalPath string `json:"journal_path" yaml:"journal_path"`
}
