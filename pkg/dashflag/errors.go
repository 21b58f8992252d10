// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure.
type Kind int

const (
	// ArgRequired means a required flag had no usable value.
	ArgRequired Kind = iota + 1
	// ArgProcessing means a value was supplied but could not be converted
	// to the flag's type.
	ArgProcessing
)

func (k Kind) String() string {
	switch k {
	case ArgRequired:
		return "ARG_REQUIRED"
	case ArgProcessing:
		return "ARG_PROCESSING"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) Error() string {
	return k.String()
}

var (
	// ErrHelp is returned by TryResolve when help was requested with --help
	// as the first argument.
	ErrHelp = errors.New("help requested")

	// ErrRegistryPoisoned is the panic value raised when a Registry is used
	// after a previous operation panicked while holding its lock.
	ErrRegistryPoisoned = errors.New("dashflag: help registry poisoned")
)

// FlagError is returned when a flag cannot be resolved.
// Kind is always set; Err carries the conversion error for ArgProcessing.
type FlagError struct {
	Kind  Kind
	Flag  string // flag name without the leading dashes
	Value string // offending token, if any
	Err   error
}

func (e *FlagError) Error() string {
	switch e.Kind {
	case ArgRequired:
		return fmt.Sprintf("flag --%s: value required", e.Flag)
	case ArgProcessing:
		return fmt.Sprintf("flag --%s: invalid value %q", e.Flag, e.Value)
	}
	return fmt.Sprintf("flag --%s: %v", e.Flag, e.Kind)
}

// Unwrap exposes both the kind and the underlying error so errors.Is
// matches either.
func (e *FlagError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindOf returns the Kind carried by err, or 0 when err is not a
// resolution failure.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
