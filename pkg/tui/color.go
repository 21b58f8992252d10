// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only when enabled is true
// and the environment does not opt out of colour.
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termEnv := os.Getenv("TERM")
	if termEnv == "" || termEnv == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// ForWriter returns a Colorizer for output written to w. Colour is only
// enabled when w is a terminal.
func ForWriter(w io.Writer) Colorizer {
	return NewColorizer(IsTerminal(w))
}

// IsTerminal reports whether w is backed by a terminal file descriptor.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Style returns a color.Color for attrs that honours c.Enabled regardless of
// the package-level color.NoColor setting.
func (c Colorizer) Style(attrs ...color.Attribute) *color.Color {
	col := color.New(attrs...)
	if c.Enabled {
		col.EnableColor()
	} else {
		col.DisableColor()
	}
	return col
}

func (c Colorizer) Wrap(text string, attrs ...color.Attribute) string {
	if !c.Enabled || len(attrs) == 0 {
		return text
	}
	return c.Style(attrs...).Sprint(text)
}
