// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ResultKind selects how a conversion result is retrieved after the external
// tool exits.
type ResultKind int

const (
	// KindCapturedOutput returns the tool's captured standard output.
	KindCapturedOutput ResultKind = iota
	// KindReadFile reads a generated file back from the workspace.
	KindReadFile
)

// ResultMode is fixed by the command builder before execution; exactly one
// mode is active per invocation.
type ResultMode struct {
	Kind ResultKind

	// Extension is the output-file extension, set only for KindReadFile.
	Extension string
}

// CapturedOutput selects standard-output capture.
func CapturedOutput() ResultMode {
	return ResultMode{Kind: KindCapturedOutput}
}

// ReadFile selects file read-back with the given extension (no leading dot).
func ReadFile(ext string) ResultMode {
	return ResultMode{Kind: KindReadFile, Extension: ext}
}
