// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flagcheck declares the flags listed in a manifest file, resolves
// them from its own command line and prints the resolved values as YAML,
// JSON or an env file.
//
//	flagcheck --manifest flags.toml --format env --name John --age 30
//
// Manifests ending in .toml are read as TOML, anything else as YAML:
//
//	program = "greet"
//
//	[[flag]]
//	name = "name"
//	type = "string"
//	help = "Name to greet."
//	default = "world"
//
//	[[flag]]
//	name = "age"
//	type = "int"
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/dashflag/pkg/dashflag"
	"github.com/yeetrun/dashflag/pkg/env"
	"gopkg.in/yaml.v3"
)

type manifest struct {
	Program string     `toml:"program" yaml:"program"`
	Flags   []flagSpec `toml:"flag" yaml:"flag"`
}

type flagSpec struct {
	Name    string `toml:"name" yaml:"name"`
	Type    string `toml:"type" yaml:"type"`
	Help    string `toml:"help" yaml:"help"`
	Default any    `toml:"default" yaml:"default"`
}

// Names of flagcheck's own flags, which manifests may not redeclare.
const (
	manifestFlag = "manifest"
	formatFlag   = "format"
)

func main() {
	log.SetFlags(0)
	p := dashflag.FromProcess()
	err := run(p, os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, dashflag.ErrHelp), dashflag.KindOf(err) != 0:
		p.Exit(err)
	default:
		log.Fatalf("flagcheck: %v", err)
	}
}

func run(p *dashflag.Parser, w io.Writer) error {
	manifestPath := dashflag.String(p, manifestFlag).
		WithHelp("Path to a TOML or YAML flag manifest.")
	outFormat := dashflag.String(p, formatFlag).
		WithHelp("Output format: yaml, json or env.").
		WithDefault("yaml")

	path, err := manifestPath.TryResolve()
	if err != nil {
		return err
	}
	format, err := outFormat.TryResolve()
	if err != nil {
		return err
	}
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q", format)
	}

	m, err := loadManifest(path)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}
	if m.Program != "" {
		p.SetProgram(m.Program)
	}
	values, err := resolveManifest(p, m)
	if err != nil {
		return err
	}
	return writeValues(w, values, format)
}

// loadManifest reads path as TOML or YAML. Keys outside the manifest schema
// are an error.
func loadManifest(path string) (*manifest, error) {
	var m manifest
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		md, err := toml.DecodeFile(path, &m)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("failed to parse %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
		return &m, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// resolveManifest declares every flag before resolving any, so help lists
// the whole manifest whichever flag fails first.
func resolveManifest(p *dashflag.Parser, m *manifest) (map[string]any, error) {
	seen := make(map[string]bool, len(m.Flags))
	resolvers := make([]func() (any, error), 0, len(m.Flags))
	for _, spec := range m.Flags {
		switch {
		case spec.Name == manifestFlag, spec.Name == formatFlag:
			return nil, fmt.Errorf("flag %q is reserved by flagcheck", spec.Name)
		case seen[spec.Name]:
			return nil, fmt.Errorf("flag %q declared more than once", spec.Name)
		}
		seen[spec.Name] = true
		r, err := declare(p, spec)
		if err != nil {
			return nil, err
		}
		resolvers = append(resolvers, r)
	}
	values := make(map[string]any, len(m.Flags))
	for i, r := range resolvers {
		v, err := r()
		if err != nil {
			return nil, err
		}
		values[m.Flags[i].Name] = v
	}
	return values, nil
}

func declare(p *dashflag.Parser, spec flagSpec) (func() (any, error), error) {
	if spec.Name == "" || strings.HasPrefix(spec.Name, "-") {
		return nil, fmt.Errorf("invalid flag name %q", spec.Name)
	}
	switch strings.ToLower(spec.Type) {
	case "", "string":
		return declareTyped(p, spec, dashflag.String, asString)
	case "int", "integer":
		return declareTyped(p, spec, dashflag.Int64, asInt)
	case "float":
		return declareTyped(p, spec, dashflag.Float, asFloat)
	case "bool", "boolean":
		return declareTyped(p, spec, dashflag.Bool, asBool)
	}
	return nil, fmt.Errorf("flag %q: unknown type %q", spec.Name, spec.Type)
}

func declareTyped[T dashflag.Value](
	p *dashflag.Parser,
	spec flagSpec,
	decl func(*dashflag.Parser, string) dashflag.Flag[T],
	conv func(any) (T, bool),
) (func() (any, error), error) {
	f := decl(p, spec.Name)
	if spec.Help != "" {
		f = f.WithHelp(spec.Help)
	}
	if spec.Default != nil {
		v, ok := conv(spec.Default)
		if !ok {
			return nil, fmt.Errorf("flag %q: default %v is not a %s", spec.Name, spec.Default, spec.Type)
		}
		f = f.WithDefault(v)
	}
	return func() (any, error) {
		return f.TryResolve()
	}, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), n <= 1<<63-1
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

var formats = []string{"yaml", "json", "env"}

func writeValues(w io.Writer, values map[string]any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case "env":
		return env.Write(w, values)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(values); err != nil {
		return err
	}
	return enc.Close()
}
