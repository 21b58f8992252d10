// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/yeetrun/dashflag/pkg/tui"
	"tailscale.com/util/mak"
)

// Registry maps flag names to help text. It is safe for concurrent use, but
// when two goroutines declare the same name the surviving text is whichever
// write happened last.
//
// A panic raised while the registry lock is held poisons the registry: every
// later operation panics with ErrRegistryPoisoned.
type Registry struct {
	mu       sync.Mutex
	help     map[string]string // nil until first Register
	poisoned bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// do runs fn with the lock held.
func (r *Registry) do(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.poisoned {
		panic(ErrRegistryPoisoned)
	}
	done := false
	defer func() {
		if !done {
			r.poisoned = true
		}
	}()
	fn()
	done = true
}

// Register inserts or overwrites the help text for name.
func (r *Registry) Register(name, text string) {
	r.do(func() {
		mak.Set(&r.help, name, text)
	})
}

// Help returns the help text registered for name.
func (r *Registry) Help(name string) (text string, ok bool) {
	r.do(func() {
		text, ok = r.help[name]
	})
	return text, ok
}

// Len returns the number of registered flags.
func (r *Registry) Len() (n int) {
	r.do(func() {
		n = len(r.help)
	})
	return n
}

// Names returns the registered flag names in sorted order.
func (r *Registry) Names() (names []string) {
	r.do(func() {
		names = r.sortedNames()
	})
	return names
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.help))
	for name := range r.help {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render writes the usage text for program to w:
//
//	Usage of: prog
//	--age: Integer flag.
//	--name: String flag.
//	Example: prog --age <value> --name <value>
//
// Entries are ordered by name.
func (r *Registry) Render(w io.Writer, program string) error {
	return r.render(w, program, tui.Colorizer{})
}

func (r *Registry) render(w io.Writer, program string, c tui.Colorizer) error {
	var sb strings.Builder
	r.do(func() {
		names := r.sortedNames()

		fmt.Fprintf(&sb, "%s %s\n", c.Wrap("Usage of:", color.Bold), program)
		for _, name := range names {
			fmt.Fprintf(&sb, "%s: %s\n", c.Wrap("--"+name, color.FgCyan), r.help[name])
		}
		sb.WriteString(c.Wrap("Example:", color.Bold))
		sb.WriteString(" " + program)
		for _, name := range names {
			fmt.Fprintf(&sb, " --%s <value>", name)
		}
		sb.WriteString("\n")
	})
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write help: %w", err)
	}
	return nil
}
