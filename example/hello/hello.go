// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hello greets someone using flags resolved by dashflag.
//
//	hello --name John --age 30 --happy
package main

import (
	"fmt"

	"github.com/yeetrun/dashflag/pkg/dashflag"
	"tailscale.com/util/must"
)

func main() {
	p := dashflag.FromProcess()

	// Declare everything before resolving so help lists every flag.
	name := dashflag.String(p, "name").WithHelp("Who to greet.").WithDefault("world")
	age := dashflag.Int(p, "age").WithHelp("Age in years.")
	happy := dashflag.Bool(p, "happy").WithHelp("Greet cheerfully.").WithDefault(false)
	usage := dashflag.Bool(p, "usage").WithHelp("Print usage before greeting.")

	if usage.Resolve() {
		must.Do(p.PrintHelp())
	}
	greeting := "Hello"
	if happy.Resolve() {
		greeting = "Hello hello"
	}
	fmt.Printf("%s, %s (%d)!\n", greeting, name.Resolve(), age.Resolve())
}
