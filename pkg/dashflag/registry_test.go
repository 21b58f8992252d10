// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/dashflag/pkg/tui"
)

func TestRegistryRender(t *testing.T) {
	r := NewRegistry()
	r.Register("name", "Name to greet.")
	r.Register("age", "Integer flag.")

	var buf bytes.Buffer
	if err := r.Render(&buf, "prog"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "Usage of: prog\n" +
		"--age: Integer flag.\n" +
		"--name: Name to greet.\n" +
		"Example: prog --age <value> --name <value>\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRegistry().Render(&buf, "prog"); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if want := "Usage of: prog\nExample: prog\n"; buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestRegistryRenderColor(t *testing.T) {
	r := NewRegistry()
	r.Register("name", "String flag.")

	var buf bytes.Buffer
	if err := r.render(&buf, "prog", tui.Colorizer{Enabled: true}); err != nil {
		t.Fatalf("render() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("render() = %q, want ANSI escapes", out)
	}
	if !strings.Contains(out, "String flag.") {
		t.Errorf("render() = %q, missing help text", out)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestRegistryRenderWriteError(t *testing.T) {
	r := NewRegistry()
	if err := r.Render(failWriter{}, "prog"); err == nil {
		t.Fatal("Render() error = nil, want error")
	}
	// A write failure happens outside the lock and must not poison.
	r.Register("x", "y")
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Register("name", "String flag.")
	r.Register("name", "Integer flag.")

	if got, _ := r.Help("name"); got != "Integer flag." {
		t.Errorf("Help(name) = %q, want %q", got, "Integer flag.")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if _, ok := r.Help("missing"); ok {
		t.Error("Help(missing) reported ok")
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	for _, n := range []string{"zeta", "alpha", "mid"} {
		r.Register(n, "")
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryPoisoned(t *testing.T) {
	r := NewRegistry()
	r.Register("name", "String flag.")

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic from fn")
			}
		}()
		r.do(func() { panic("holder failed") })
	}()

	defer func() {
		got := recover()
		if got != ErrRegistryPoisoned {
			t.Errorf("recover() = %v, want %v", got, ErrRegistryPoisoned)
		}
	}()
	r.Register("age", "Integer flag.")
	t.Error("Register on poisoned registry did not panic")
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			r.Register(name, "String flag.")
			if err := r.Render(&bytes.Buffer{}, "prog"); err != nil {
				t.Errorf("Render() error = %v", err)
			}
		}()
	}
	wg.Wait()
	if r.Len() != 8 {
		t.Errorf("Len() = %d, want 8", r.Len())
	}
}
