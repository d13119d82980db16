// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package command

import (
	"fmt"

	"github.com/pdiddy/convert-engine/internal/formats"
	"github.com/pdiddy/convert-engine/pkg/types"
)

// Build assembles the argument vector for one invocation. Options are
// scanned in insertion order. The reserved destination-format key consults
// the rule table: a file-producing rule contributes its extra args plus an
// explicit output path (derived maps an extension to the workspace path) and
// switches the result mode to file read-back, superseding the generic
// --to flag. Every other key passes through verbatim.
//
// The caller appends the input-file path after these arguments; argv goes
// straight to process creation, never through a shell.
func Build(opts Options, tables *formats.Tables, derived func(ext string) string) ([]string, types.ResultMode, error) {
	args := make([]string, 0, len(opts)+2)
	mode := types.CapturedOutput()
	sawTo := false

	for _, opt := range opts {
		if opt.Key == ToKey {
			to, ok := opt.Value.(string)
			if !ok {
				return nil, types.ResultMode{}, fmt.Errorf("option %q requires a single string value, got %T", ToKey, opt.Value)
			}
			sawTo = true

			rule, ok := tables.RuleFor(to)
			if !ok {
				args = append(args, "--"+ToKey+"="+to)
				mode = types.CapturedOutput()
				continue
			}
			args = append(args, rule.ExtraArgs...)
			args = append(args, "--output="+derived(rule.Extension))
			mode = types.ReadFile(rule.Extension)
			continue
		}

		switch v := opt.Value.(type) {
		case nil:
			args = append(args, "--"+opt.Key)
		case string:
			args = append(args, "--"+opt.Key+"="+v)
		case []string:
			for _, el := range v {
				args = append(args, "--"+opt.Key+"="+el)
			}
		default:
			return nil, types.ResultMode{}, fmt.Errorf("option %q has unsupported value type %T", opt.Key, opt.Value)
		}
	}

	if !sawTo {
		return nil, types.ResultMode{}, fmt.Errorf("option map is missing the required %q key", ToKey)
	}

	return args, mode, nil
}
