// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/yeetrun/dashflag/pkg/argv"
)

// TryResolve extracts the flag's value from the parser's arguments.
//
// It returns ErrHelp if --help is the first argument, before looking at the
// flag at all. Boolean flags resolve to true when their token appears
// anywhere and to their default otherwise. Other flags take the token that
// immediately follows theirs, unless that token is itself a flag token; a
// missing value is ArgRequired for required flags and the default otherwise.
// A value that does not parse as T is ArgProcessing.
func TryResolve[T Value](f Flag[T]) (T, error) {
	var zero T
	p := f.p
	if p.HelpRequested() {
		return zero, ErrHelp
	}
	if kindOf[T]() == reflect.Bool {
		return resolvePresence(f), nil
	}

	idx := p.args.Index(f.name)
	next, ok := "", false
	if idx >= 0 {
		next, ok = p.args.At(idx + 1)
	}
	if !ok || argv.IsFlag(next) {
		if f.required {
			return zero, &FlagError{Kind: ArgRequired, Flag: f.name}
		}
		p.logf("dashflag: %s using default", f)
		return f.value, nil
	}

	v, err := parseToken[T](next)
	if err != nil {
		return zero, &FlagError{Kind: ArgProcessing, Flag: f.name, Value: next, Err: err}
	}
	p.logf("dashflag: %s resolved from token %d", f, idx+1)
	return v, nil
}

// Resolve is like TryResolve but on failure prints help and exits through
// the parser's exit function, with ExitHelp for a help request and
// ExitFailure otherwise. If the exit function returns, Resolve returns the
// zero value.
func Resolve[T Value](f Flag[T]) T {
	v, err := TryResolve(f)
	if err != nil {
		f.p.Exit(err)
		var zero T
		return zero
	}
	return v
}

func (f Flag[T]) TryResolve() (T, error) {
	return TryResolve(f)
}

func (f Flag[T]) Resolve() T {
	return Resolve(f)
}

func resolvePresence[T Value](f Flag[T]) T {
	if !f.p.args.Contains(f.name) {
		return f.value
	}
	var v T
	reflect.ValueOf(&v).Elem().SetBool(true)
	f.p.logf("dashflag: %s present", f)
	return v
}

// parseToken converts tok to T. Strings are returned verbatim. Booleans
// never reach it; they resolve by presence.
func parseToken[T Value](tok string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(tok)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(tok, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(tok, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(n)
	default:
		return v, fmt.Errorf("unsupported type %s", rv.Type())
	}
	return v, nil
}
