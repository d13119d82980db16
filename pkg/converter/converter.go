// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package converter orchestrates an external pandoc-style document
// converter. It validates format tokens, stages input through a temporary
// workspace, assembles the tool's argument vector, executes it with bounded
// runtime, and returns either the captured standard output or a generated
// output file. All format semantics live in the external tool; this package
// guarantees correct invocation, not correct conversion.
package converter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pdiddy/convert-engine/internal/command"
	"github.com/pdiddy/convert-engine/internal/execrun"
	"github.com/pdiddy/convert-engine/internal/formats"
	"github.com/pdiddy/convert-engine/internal/journal"
	"github.com/pdiddy/convert-engine/internal/workspace"
	"github.com/pdiddy/convert-engine/pkg/types"
)

// defaultTool is resolved from PATH when no explicit executable is given.
const defaultTool = "pandoc"

// stderrTailLimit bounds the diagnostic stderr carried in errors.
const stderrTailLimit = 2048

// Converter is one configured binding to the external tool. A Converter is
// not safe for concurrent conversions: overlapping calls race on the same
// primary temp file. Use one instance per concurrent conversion, or
// serialize calls.
type Converter struct {
	exe     string
	ws      *workspace.Workspace
	tables  *formats.Tables
	runner  execrun.Runner
	journal *journal.Journal
	timeout time.Duration
}

type settings struct {
	executable string
	workDir    string
	timeout    time.Duration
	tables     *formats.Tables
	journal    string
	runner     execrun.Runner
}

// Option configures New.
type Option func(*settings)

// WithExecutable sets an explicit path to the external tool instead of the
// PATH lookup.
func WithExecutable(path string) Option {
	return func(s *settings) { s.executable = path }
}

// WithWorkDir sets the directory for temporary artifacts.
func WithWorkDir(dir string) Option {
	return func(s *settings) { s.workDir = dir }
}

// WithTimeout sets the default per-conversion timeout used by Convert.
// Zero means unbounded.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithTables replaces the built-in format and rule tables.
func WithTables(t *formats.Tables) Option {
	return func(s *settings) { s.tables = t }
}

// WithJournal enables the SQLite conversion journal at path.
func WithJournal(path string) Option {
	return func(s *settings) { s.journal = path }
}

// WithRunner replaces the process runner. Intended for tests.
func WithRunner(r execrun.Runner) Option {
	return func(s *settings) { s.runner = r }
}

// New builds a Converter. The executable must resolve (explicit path or
// PATH lookup) and the work directory must exist and be writable; either
// failure is a ConfigurationError.
func New(opts ...Option) (*Converter, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	exe, err := resolveExecutable(s.executable)
	if err != nil {
		return nil, err
	}

	ws, err := workspace.New(s.workDir)
	if err != nil {
		return nil, err
	}

	tables := s.tables
	if tables == nil {
		tables = formats.Default()
	}

	runner := s.runner
	if runner == nil {
		runner = execrun.New()
	}

	c := &Converter{
		exe:     exe,
		ws:      ws,
		tables:  tables,
		runner:  runner,
		timeout: s.timeout,
	}

	if s.journal != "" {
		j, err := journal.Open(s.journal)
		if err != nil {
			ws.Cleanup()
			return nil, &types.ConfigurationError{Reason: "opening journal", Err: err}
		}
		c.journal = j
	}

	return c, nil
}

// FromConfig builds a Converter from loaded settings, resolving the tables
// file when one is configured.
func FromConfig(cfg types.Config) (*Converter, error) {
	opts := []Option{
		WithExecutable(cfg.ExecutablePath),
		WithWorkDir(cfg.WorkDir),
		WithTimeout(cfg.Timeout),
	}
	if cfg.TablesPath != "" {
		tables, err := formats.Load(cfg.TablesPath)
		if err != nil {
			return nil, &types.ConfigurationError{Reason: "loading format tables", Err: err}
		}
		opts = append(opts, WithTables(tables))
	}
	if cfg.JournalPath != "" {
		opts = append(opts, WithJournal(cfg.JournalPath))
	}
	return New(opts...)
}

// resolveExecutable verifies an explicit path or falls back to a PATH
// lookup of the default tool.
func resolveExecutable(path string) (string, error) {
	if path == "" {
		resolved, err := exec.LookPath(defaultTool)
		if err != nil {
			return "", &types.ConfigurationError{Reason: defaultTool + " not found on PATH", Err: err}
		}
		return resolved, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &types.ConfigurationError{Reason: "executable " + path, Err: err}
	}
	if info.IsDir() || info.Mode()&0o111 == 0 {
		return "", &types.ConfigurationError{Reason: path + " is not executable"}
	}
	return path, nil
}

// WorkDir returns the directory holding this instance's temporary
// artifacts.
func (c *Converter) WorkDir() string {
	return c.ws.Dir()
}

// Convert translates content from one format to another, using the
// instance's default timeout. Both tokens are validated against the format
// registry before any file I/O or process execution.
func (c *Converter) Convert(content, from, to string) (string, error) {
	if !c.tables.ValidInput(from) {
		return "", &types.InvalidFormat{Token: from, Direction: "input"}
	}
	if !c.tables.ValidOutput(to) {
		return "", &types.InvalidFormat{Token: to, Direction: "output"}
	}
	return c.RunWith(content, command.Options{
		command.Opt("from", from),
		command.Opt("to", to),
	}, c.timeout)
}

// RunWith performs one conversion with a caller-assembled option map. The
// reserved "to" key is required and drives output-rule selection; all other
// keys pass through to the tool verbatim. Option keys are trusted input:
// they become command-line arguments. Content is not; it reaches the tool
// only through the temp file.
func (c *Converter) RunWith(content string, opts command.Options, timeout time.Duration) (string, error) {
	args, mode, err := command.Build(opts, c.tables, c.ws.Derived)
	if err != nil {
		return "", err
	}

	inputPath, err := c.ws.Persist([]byte(content))
	if err != nil {
		return "", err
	}
	args = append(args, inputPath)

	outcome, runErr := c.runner.Run(context.Background(), c.exe, args, timeout)
	c.record(opts, mode, args, outcome, runErr)
	if runErr != nil {
		return "", runErr
	}

	if outcome.ExitCode != 0 {
		return "", &types.ConversionFailed{
			ExitCode:    outcome.ExitCode,
			CommandLine: c.commandLine(args),
			Stderr:      tail(outcome.Stderr, stderrTailLimit),
		}
	}

	return c.resolve(mode, outcome)
}

// resolve produces the final result string per the mode fixed before
// execution.
func (c *Converter) resolve(mode types.ResultMode, outcome execrun.Outcome) (string, error) {
	switch mode.Kind {
	case types.KindReadFile:
		path := c.ws.Derived(mode.Extension)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", &types.ResultMissing{Path: path}
			}
			return "", fmt.Errorf("reading output file %s: %w", path, err)
		}
		return string(data), nil
	default:
		return joinLines(outcome.Stdout), nil
	}
}

// Version invokes the tool with its version flag and strips the leading
// tool-name token from the first output line.
func (c *Converter) Version() (string, error) {
	outcome, err := c.runner.Run(context.Background(), c.exe, []string{"--version"}, c.timeout)
	if err != nil {
		return "", err
	}
	if outcome.ExitCode != 0 {
		return "", &types.ConversionFailed{
			ExitCode:    outcome.ExitCode,
			CommandLine: c.commandLine([]string{"--version"}),
			Stderr:      tail(outcome.Stderr, stderrTailLimit),
		}
	}
	return ParseVersion(outcome.Stdout, defaultTool), nil
}

// Close tears the instance down: workspace cleanup is best-effort and
// idempotent, the journal connection is closed if one was opened.
func (c *Converter) Close() error {
	c.ws.Cleanup()
	if c.journal != nil {
		j := c.journal
		c.journal = nil
		return j.Close()
	}
	return nil
}

// record journals the attempt when a journal is configured. Journal write
// failures never affect the conversion result.
func (c *Converter) record(opts command.Options, mode types.ResultMode, args []string, outcome execrun.Outcome, runErr error) {
	if c.journal == nil {
		return
	}

	e := journal.Entry{
		From:        optValue(opts, "from"),
		To:          optValue(opts, command.ToKey),
		ResultMode:  "stdout",
		ExitCode:    outcome.ExitCode,
		Duration:    outcome.Duration,
		CommandLine: c.commandLine(args),
	}
	if mode.Kind == types.KindReadFile {
		e.ResultMode = "file"
	}
	if runErr != nil {
		e.Error = runErr.Error()
	} else if outcome.ExitCode != 0 {
		e.Error = tail(outcome.Stderr, stderrTailLimit)
	}
	_ = c.journal.Record(e)
}

// optValue returns the first string value for key, or "".
func optValue(opts command.Options, key string) string {
	for _, o := range opts {
		if o.Key == key {
			if v, ok := o.Value.(string); ok {
				return v
			}
		}
	}
	return ""
}

// commandLine renders the attempted invocation for diagnostics. It carries
// the temp-file path, never the input content itself.
func (c *Converter) commandLine(args []string) string {
	return c.exe + " " + strings.Join(args, " ")
}

// joinLines normalizes captured output: line endings become \n and a single
// trailing newline is dropped.
func joinLines(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSuffix(s, "\r")
}

// tail returns at most n trailing bytes of s, trimmed of surrounding
// whitespace.
func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
