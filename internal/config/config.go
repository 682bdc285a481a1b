// Copyright © 2018-2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package config provides the build's test case feature flags.
//
// The flags are in defconfig.yaml, embedded at build time. A run has no
// other source of flags.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed defconfig.yaml
var defconfig []byte

//go:embed config.schema.json
var schemaJSON []byte

// Config maps a flag name, e.g. CONFIG_TC_NET_SOCKET, to its selection.
type Config map[string]bool

var (
	schema     *jsonschema.Schema
	schemaOnce sync.Once
	schemaErr  error

	def     Config
	defOnce sync.Once
	defErr  error
)

func compileSchema() error {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource("config.schema.json", doc); err != nil {
			schemaErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}
		schema, err = compiler.Compile("config.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("compile config schema: %w", err)
		}
	})
	return schemaErr
}

// Parse decodes and validates a YAML flag document.
func Parse(b []byte) (Config, error) {
	if err := compileSchema(); err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	cfg := make(Config, len(doc))
	for k, v := range doc {
		cfg[k] = v.(bool)
	}
	return cfg, nil
}

// Default is the embedded configuration.
func Default() (Config, error) {
	defOnce.Do(func() {
		def, defErr = Parse(defconfig)
	})
	return def, defErr
}

// Enabled reports whether the named flag is selected; an absent flag is not.
func (cfg Config) Enabled(flag string) bool {
	return cfg[flag]
}

// Names of all flags, selected or not, sorted.
func (cfg Config) Names() []string {
	names := make([]string, 0, len(cfg))
	for k := range cfg {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
