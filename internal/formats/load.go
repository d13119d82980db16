// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package formats

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Load reads replacement tables from a YAML file. The file must define
// non-empty input and output lists; the rule list may be empty, in which
// case every format falls back to stdout capture.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading format tables %s: %w", path, err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing format tables %s: %w", path, err)
	}

	if len(t.Inputs) == 0 {
		return nil, fmt.Errorf("format tables %s: empty input set", path)
	}
	if len(t.Outputs) == 0 {
		return nil, fmt.Errorf("format tables %s: empty output set", path)
	}
	for i, r := range t.Rules {
		if r.Format == "" || r.Extension == "" {
			return nil, fmt.Errorf("format tables %s: rule %d missing format or extension", path, i)
		}
	}

	t.index()
	return &t, nil
}
