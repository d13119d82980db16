// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package formats holds the data tables driving format validation and
// output-rule selection: the recognized input and output format tokens and
// the per-format output rules. The tables are data, not behavior; they must
// track the installed tool's supported formats and can be replaced wholesale
// from a YAML file without touching any control flow.
package formats

// Rule describes the invocation consequences of a file-producing output
// format: extra command-line arguments, the extension appended to the
// workspace primary file, and implicitly that the result is read back from
// that file instead of captured standard output.
type Rule struct {
	// Format is the output token the rule applies to.
	Format string `yaml:"format"`

	// ExtraArgs are appended before the output-path argument.
	ExtraArgs []string `yaml:"extra_args,omitempty"`

	// Extension is the output-file extension, without the leading dot.
	Extension string `yaml:"extension"`
}

// Tables bundles the input set, output set, and rule list. Construct via
// Default or Load; the zero value rejects every token.
type Tables struct {
	Inputs  []string `yaml:"inputs"`
	Outputs []string `yaml:"outputs"`
	Rules   []Rule   `yaml:"rules"`

	inputSet  map[string]struct{}
	outputSet map[string]struct{}
}

// ValidInput reports whether tok is a recognized input format.
func (t *Tables) ValidInput(tok string) bool {
	_, ok := t.inputSet[tok]
	return ok
}

// ValidOutput reports whether tok is a recognized output format.
func (t *Tables) ValidOutput(tok string) bool {
	_, ok := t.outputSet[tok]
	return ok
}

// RuleFor returns the first rule matching the output format, scanning in
// declaration order. A correct table has no overlapping entries; order
// decides if one ever appears.
func (t *Tables) RuleFor(format string) (Rule, bool) {
	for _, r := range t.Rules {
		if r.Format == format {
			return r, true
		}
	}
	return Rule{}, false
}

func (t *Tables) index() {
	t.inputSet = make(map[string]struct{}, len(t.Inputs))
	for _, tok := range t.Inputs {
		t.inputSet[tok] = struct{}{}
	}
	t.outputSet = make(map[string]struct{}, len(t.Outputs))
	for _, tok := range t.Outputs {
		t.outputSet[tok] = struct{}{}
	}
}

// defaultInputs lists the readers of a current pandoc install.
var defaultInputs = []string{
	"biblatex", "bibtex", "commonmark", "commonmark_x", "creole", "csljson",
	"csv", "docbook", "docx", "dokuwiki", "epub", "fb2", "gfm", "haddock",
	"html", "ipynb", "jats", "jira", "json", "latex", "man", "markdown",
	"markdown_github", "markdown_mmd", "markdown_phpextra", "markdown_strict",
	"mediawiki", "muse", "native", "odt", "opml", "org", "ris", "rst", "rtf",
	"t2t", "textile", "tikiwiki", "tsv", "twiki", "typst", "vimwiki",
}

// defaultOutputs lists the writers. Slide formats (beamer, slidy, revealjs,
// s5, dzslides, slideous, pptx) and page formats (pdf, ms, man) are
// output-only.
var defaultOutputs = []string{
	"asciidoc", "asciidoctor", "beamer", "biblatex", "bibtex", "commonmark",
	"commonmark_x", "context", "csljson", "docbook", "docbook4", "docbook5",
	"docx", "dokuwiki", "dzslides", "epub", "epub2", "epub3", "fb2", "gfm",
	"haddock", "html", "html4", "html5", "icml", "ipynb", "jats", "jira",
	"json", "latex", "man", "markdown", "markdown_github", "markdown_mmd",
	"markdown_phpextra", "markdown_strict", "markua", "mediawiki", "ms",
	"muse", "native", "odt", "opendocument", "opml", "org", "pdf", "plain",
	"pptx", "revealjs", "rst", "rtf", "s5", "slideous", "slidy", "tei",
	"texinfo", "textile", "typst", "xwiki", "zimwiki",
}

// defaultRules covers the writers that emit binary artifacts and therefore
// need a file-based output path instead of stdout capture.
var defaultRules = []Rule{
	{Format: "docx", Extension: "docx"},
	{Format: "odt", Extension: "odt"},
	{Format: "epub", Extension: "epub"},
	{Format: "epub2", Extension: "epub"},
	{Format: "epub3", Extension: "epub"},
	{Format: "pptx", Extension: "pptx"},
	{Format: "pdf", ExtraArgs: []string{"--standalone"}, Extension: "pdf"},
}

// Default returns the built-in tables.
func Default() *Tables {
	t := &Tables{
		Inputs:  defaultInputs,
		Outputs: defaultOutputs,
		Rules:   defaultRules,
	}
	t.index()
	return t
}
