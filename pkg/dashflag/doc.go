// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dashflag declares typed command-line flags and resolves their
// values from the program's arguments.
//
// # Basic Usage
//
//	p := dashflag.FromProcess()
//	name := dashflag.String(p, "name").
//	    WithHelp("Name to greet.").
//	    WithDefault("world").
//	    Resolve()
//	age := dashflag.Int(p, "age").Resolve()
//
// Resolve prints help and exits on failure. Use TryResolve to handle the
// error yourself:
//
//	age, err := dashflag.Int(p, "age").TryResolve()
//	switch {
//	case errors.Is(err, dashflag.ErrHelp):
//	    // --help was the first argument
//	case errors.Is(err, dashflag.ArgRequired):
//	    // missing value
//	case errors.Is(err, dashflag.ArgProcessing):
//	    // value did not parse
//	}
//
// # Flag Syntax
//
// Every flag token starts with "--". A non-boolean flag takes its value from
// the next token, unless that token is itself a flag token. A boolean flag is
// true when its token is present anywhere and never consumes a value.
//
//	prog --name John --age 30 --happy
//
// Short flags, "--name=value", positional arguments and repeated flags are
// not supported. Each resolution scans the arguments independently and uses
// the first occurrence of the flag.
//
// # Help
//
// Declaring a flag records generic help text ("String flag.", "Integer
// flag.", "Float flag." or "Boolean flag.") in the parser's Registry;
// WithHelp replaces it. When --help is the first argument every resolution
// reports ErrHelp, and Resolve prints help and exits with ExitHelp.
package dashflag
