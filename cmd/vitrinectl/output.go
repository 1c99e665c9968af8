package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"
)

// emit prints v as JSON on the command's stdout, honoring --select and
// the pretty/indent settings.
func (o *rootOptions) emit(v any) error {
	if o.selectExpr != "" {
		picked, err := project(v, o.selectExpr)
		if err != nil {
			return err
		}
		v = picked
	}
	enc := json.NewEncoder(o.out)
	if o.cfg.Pretty {
		enc.SetIndent("", strings.Repeat(" ", o.cfg.Indent))
	}
	return enc.Encode(v)
}

// project applies a JSONPath expression to the JSON form of v. Going
// through the wire encoding means the expression addresses the field
// names the user actually sees.
func project(v any, expr string) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}
	picked, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", expr, err)
	}
	return picked, nil
}

// loadStateMap reads a YAML document of axis: value pairs, the
// --state-file input format for tools that take coordinates.
func loadStateMap(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	var state map[string]float64
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	if len(state) == 0 {
		return nil, fmt.Errorf("state file %s: no axis values", path)
	}
	return state, nil
}
