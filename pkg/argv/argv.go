// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argv holds a read-only view of the tokens a program was invoked
// with and the rules for telling flag tokens apart from values.
package argv

import (
	"os"
	"slices"
	"strings"

	"tailscale.com/types/lazy"
)

// Prefix marks a token as a flag token.
const Prefix = "--"

// Snapshot is an ordered, immutable copy of invocation tokens.
// Index 0 is the program path and is never treated as a flag or value.
type Snapshot struct {
	tokens []string
}

var process lazy.SyncValue[Snapshot]

// Process returns the snapshot of os.Args. It is captured on first use and
// reused for the lifetime of the process.
func Process() Snapshot {
	return process.Get(func() Snapshot {
		return New(os.Args)
	})
}

// New returns a snapshot of tokens. The slice is copied.
func New(tokens []string) Snapshot {
	return Snapshot{tokens: slices.Clone(tokens)}
}

// Len returns the number of tokens, including the program path.
func (s Snapshot) Len() int {
	return len(s.tokens)
}

// At returns the token at i and whether i is in range.
func (s Snapshot) At(i int) (string, bool) {
	if i < 0 || i >= len(s.tokens) {
		return "", false
	}
	return s.tokens[i], true
}

// Program returns token 0, or "" for an empty snapshot.
func (s Snapshot) Program() string {
	p, _ := s.At(0)
	return p
}

// Tokens returns a copy of all tokens.
func (s Snapshot) Tokens() []string {
	return slices.Clone(s.tokens)
}

// Index returns the index of the first flag token named name, or -1.
// Matching is exact after the prefix is stripped; "--nam" and "--namex"
// never match "name". The program path is skipped.
func (s Snapshot) Index(name string) int {
	for i := 1; i < len(s.tokens); i++ {
		if n, ok := FlagName(s.tokens[i]); ok && n == name {
			return i
		}
	}
	return -1
}

// Contains reports whether any token is the flag token for name.
func (s Snapshot) Contains(name string) bool {
	return s.Index(name) >= 0
}

// IsFlag reports whether tok is a flag token.
func IsFlag(tok string) bool {
	return strings.HasPrefix(tok, Prefix)
}

// FlagName strips the prefix from a flag token. It reports false for
// tokens that are not flag tokens.
func FlagName(tok string) (string, bool) {
	name, ok := strings.CutPrefix(tok, Prefix)
	if !ok {
		return "", false
	}
	return name, true
}
