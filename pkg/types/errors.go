// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// ConfigurationError reports an unusable converter setup: a missing or
// unwritable work directory, or an unresolved executable. It is fatal to
// instance creation.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Err)
	}
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvalidFormat reports a format token absent from the input or output
// registry. It is raised before any file I/O or process execution.
type InvalidFormat struct {
	Token     string
	Direction string // "input" or "output"
}

func (e *InvalidFormat) Error() string {
	return fmt.Sprintf("invalid %s format %q", e.Direction, e.Token)
}

// ConversionFailed reports a non-zero exit from the external tool. The
// command line carries file paths, never input content.
type ConversionFailed struct {
	ExitCode    int
	CommandLine string
	Stderr      string
}

func (e *ConversionFailed) Error() string {
	msg := fmt.Sprintf("conversion failed with exit code %d: %s", e.ExitCode, e.CommandLine)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// ResultMissing reports that the tool exited zero but the expected output
// file was never produced. Distinct from ConversionFailed.
type ResultMissing struct {
	Path string
}

func (e *ResultMissing) Error() string {
	return fmt.Sprintf("conversion produced no output file at %s", e.Path)
}
