// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yeetrun/dashflag/pkg/argv"
)

// Value is the set of types a flag can hold.
type Value interface {
	~string | ~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Flag is a declared flag. It is configured by value: WithHelp and
// WithDefault return an updated copy.
type Flag[T Value] struct {
	p        *Parser
	name     string
	required bool
	value    T
}

// Declare declares a flag named name and registers generic help text for it.
// The flag is required until WithDefault is called. Declaring a name twice
// overwrites the earlier help text.
//
// Declare panics if name is empty or starts with a dash.
func Declare[T Value](p *Parser, name string) Flag[T] {
	if name == "" || strings.HasPrefix(name, "-") {
		panic(fmt.Sprintf("dashflag: invalid flag name %q", name))
	}
	p.reg.Register(name, defaultHelp[T]())
	return Flag[T]{p: p, name: name, required: true}
}

func String(p *Parser, name string) Flag[string] { return Declare[string](p, name) }
func Int(p *Parser, name string) Flag[int]       { return Declare[int](p, name) }
func Int64(p *Parser, name string) Flag[int64]   { return Declare[int64](p, name) }
func Uint(p *Parser, name string) Flag[uint]     { return Declare[uint](p, name) }
func Float(p *Parser, name string) Flag[float64] { return Declare[float64](p, name) }
func Bool(p *Parser, name string) Flag[bool]     { return Declare[bool](p, name) }

// WithHelp replaces the flag's help text.
func (f Flag[T]) WithHelp(text string) Flag[T] {
	f.p.reg.Register(f.name, text)
	return f
}

// WithDefault sets the value used when the flag is absent and makes the flag
// optional. A later call replaces the earlier default.
func (f Flag[T]) WithDefault(v T) Flag[T] {
	f.required = false
	f.value = v
	return f
}

func (f Flag[T]) Name() string {
	return f.name
}

// Required reports whether no default has been set. Boolean flags report
// true until given a default even though they always resolve.
func (f Flag[T]) Required() bool {
	return f.required
}

// Default returns the default value, or the zero value if none was set.
func (f Flag[T]) Default() T {
	return f.value
}

func (f Flag[T]) String() string {
	return argv.Prefix + f.name
}

func kindOf[T Value]() reflect.Kind {
	return reflect.TypeFor[T]().Kind()
}

func defaultHelp[T Value]() string {
	switch kindOf[T]() {
	case reflect.String:
		return "String flag."
	case reflect.Bool:
		return "Boolean flag."
	case reflect.Float32, reflect.Float64:
		return "Float flag."
	}
	return "Integer flag."
}
