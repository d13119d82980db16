// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidity(t *testing.T) {
	tables := Default()

	tests := []struct {
		name  string
		tok   string
		check func(string) bool
		want  bool
	}{
		{"markdown is a valid input", "markdown", tables.ValidInput, true},
		{"html is a valid input", "html", tables.ValidInput, true},
		{"html is a valid output", "html", tables.ValidOutput, true},
		{"beamer is output-only", "beamer", tables.ValidInput, false},
		{"beamer is a valid output", "beamer", tables.ValidOutput, true},
		{"pdf is output-only", "pdf", tables.ValidInput, false},
		{"csv is input-only", "csv", tables.ValidOutput, false},
		{"unknown token rejected as input", "wordperfect", tables.ValidInput, false},
		{"unknown token rejected as output", "wordperfect", tables.ValidOutput, false},
		{"empty token rejected", "", tables.ValidInput, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.tok); got != tt.want {
				t.Errorf("validity of %q = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestRuleFor(t *testing.T) {
	tables := Default()

	r, ok := tables.RuleFor("docx")
	if !ok {
		t.Fatal("expected a rule for docx")
	}
	if r.Extension != "docx" {
		t.Errorf("docx rule extension = %q, want %q", r.Extension, "docx")
	}

	r, ok = tables.RuleFor("pdf")
	if !ok {
		t.Fatal("expected a rule for pdf")
	}
	if len(r.ExtraArgs) == 0 {
		t.Error("pdf rule should carry extra args")
	}

	if _, ok := tables.RuleFor("html"); ok {
		t.Error("html should have no rule (stdout capture)")
	}
}

func TestRuleForFirstMatchWins(t *testing.T) {
	tables := &Tables{
		Inputs:  []string{"markdown"},
		Outputs: []string{"docx"},
		Rules: []Rule{
			{Format: "docx", Extension: "docx"},
			{Format: "docx", Extension: "zip"},
		},
	}
	tables.index()

	r, ok := tables.RuleFor("docx")
	if !ok {
		t.Fatal("expected a rule for docx")
	}
	if r.Extension != "docx" {
		t.Errorf("first matching rule should win, got extension %q", r.Extension)
	}
}

func TestZeroTablesRejectEverything(t *testing.T) {
	var tables Tables
	if tables.ValidInput("markdown") || tables.ValidOutput("html") {
		t.Error("zero-value tables must reject all tokens")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		verify  func(t *testing.T, tables *Tables)
	}{
		{
			name: "full tables",
			yaml: `inputs: [markdown, html]
outputs: [html, docx]
rules:
  - format: docx
    extension: docx
    extra_args: ["--reference-doc=ref.docx"]
`,
			verify: func(t *testing.T, tables *Tables) {
				if !tables.ValidInput("markdown") {
					t.Error("markdown should be a valid input")
				}
				if tables.ValidInput("docx") {
					t.Error("docx is not in the loaded input set")
				}
				r, ok := tables.RuleFor("docx")
				if !ok {
					t.Fatal("expected a rule for docx")
				}
				if len(r.ExtraArgs) != 1 || r.ExtraArgs[0] != "--reference-doc=ref.docx" {
					t.Errorf("unexpected extra args: %v", r.ExtraArgs)
				}
			},
		},
		{
			name:    "empty inputs rejected",
			yaml:    "inputs: []\noutputs: [html]\n",
			wantErr: "empty input set",
		},
		{
			name:    "empty outputs rejected",
			yaml:    "inputs: [markdown]\noutputs: []\n",
			wantErr: "empty output set",
		},
		{
			name: "rule missing extension rejected",
			yaml: `inputs: [markdown]
outputs: [docx]
rules:
  - format: docx
`,
			wantErr: "missing format or extension",
		},
		{
			name:    "malformed yaml rejected",
			yaml:    "inputs: [unclosed",
			wantErr: "parsing format tables",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tables.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}

			tables, err := Load(path)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.verify(t, tables)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
