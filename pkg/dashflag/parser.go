// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag

import (
	"errors"
	"io"
	"os"

	"github.com/yeetrun/dashflag/pkg/argv"
	"github.com/yeetrun/dashflag/pkg/tui"
	"tailscale.com/types/logger"
)

// Exit statuses used by Resolve.
const (
	ExitFailure = 1
	ExitHelp    = 42
)

// helpFlag is only honoured as the first argument after the program name.
const helpFlag = argv.Prefix + "help"

// Parser ties flag declarations to a help registry and a token snapshot.
type Parser struct {
	reg     *Registry
	args    argv.Snapshot
	program string
	out     io.Writer
	exit    func(int)
	logf    logger.Logf
	color   *bool
}

type Option func(*Parser)

// WithRegistry makes the parser record help text in reg instead of a
// registry of its own. Parsers sharing a registry render the same help.
func WithRegistry(reg *Registry) Option {
	return func(p *Parser) {
		if reg != nil {
			p.reg = reg
		}
	}
}

// WithOutput sets where help is written. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Parser) {
		if w != nil {
			p.out = w
		}
	}
}

// WithExit replaces os.Exit for Resolve.
func WithExit(exit func(code int)) Option {
	return func(p *Parser) {
		if exit != nil {
			p.exit = exit
		}
	}
}

// WithLogf sets the debug logger. The default discards.
func WithLogf(logf logger.Logf) Option {
	return func(p *Parser) {
		if logf != nil {
			p.logf = logf
		}
	}
}

// WithColor forces coloured help on or off. Without it colour is used only
// when the output is a terminal.
func WithColor(enabled bool) Option {
	return func(p *Parser) {
		p.color = &enabled
	}
}

// New returns a Parser over args, where args[0] is the program path.
func New(args []string, opts ...Option) *Parser {
	return newParser(argv.New(args), opts)
}

// FromProcess returns a Parser over the process arguments.
func FromProcess(opts ...Option) *Parser {
	return newParser(argv.Process(), opts)
}

func newParser(args argv.Snapshot, opts []Option) *Parser {
	p := &Parser{
		args: args,
		out:  os.Stdout,
		exit: os.Exit,
		logf: logger.Discard,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.reg == nil {
		p.reg = NewRegistry()
	}
	return p
}

func (p *Parser) Registry() *Registry {
	return p.reg
}

func (p *Parser) Args() argv.Snapshot {
	return p.args
}

// SetProgram overrides the program name shown in help. An empty name
// restores the first argument.
func (p *Parser) SetProgram(name string) {
	p.program = name
}

// Program returns the program name shown in help.
func (p *Parser) Program() string {
	if p.program != "" {
		return p.program
	}
	return p.args.Program()
}

// HelpRequested reports whether the first argument after the program name
// is --help. Later occurrences are not considered.
func (p *Parser) HelpRequested() bool {
	tok, ok := p.args.At(1)
	return ok && tok == helpFlag
}

// PrintHelp renders the registry to the parser's output.
func (p *Parser) PrintHelp() error {
	c := tui.ForWriter(p.out)
	if p.color != nil {
		c = tui.Colorizer{Enabled: *p.color}
	}
	return p.reg.render(p.out, p.Program(), c)
}

// Exit prints help and terminates with the status matching err:
// ExitHelp for ErrHelp, ExitFailure otherwise.
func (p *Parser) Exit(err error) {
	code := ExitFailure
	if errors.Is(err, ErrHelp) {
		code = ExitHelp
	} else {
		p.logf("dashflag: %v", err)
	}
	if perr := p.PrintHelp(); perr != nil {
		p.logf("dashflag: %v", perr)
	}
	p.exit(code)
}
