// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Write writes values as KEY=value lines sorted by key. Keys are upper-cased
// with dashes replaced by underscores, and values are single-quoted when
// they contain anything a shell would interpret.
func Write(w io.Writer, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", Key(k), quote(fmt.Sprint(values[k]))); err != nil {
			return fmt.Errorf("failed to write env: %w", err)
		}
	}
	return nil
}

// Key converts a flag name to an environment variable name.
func Key(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func quote(s string) string {
	if s != "" && !strings.ContainsFunc(s, needsQuote) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_.,:/+@%", r)
}
