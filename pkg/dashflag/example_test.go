// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dashflag_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/yeetrun/dashflag/pkg/dashflag"
)

func Example() {
	p := dashflag.New([]string{"prog", "--name", "John", "--age", "30", "--happy"})

	name := dashflag.String(p, "name").WithDefault("x").Resolve()
	age := dashflag.Int(p, "age").Resolve()
	happy := dashflag.Bool(p, "happy").WithDefault(false).Resolve()

	fmt.Println(name, age, happy)
	// Output: John 30 true
}

func ExampleTryResolve() {
	p := dashflag.New([]string{"prog", "--age", "thirty"})

	_, err := dashflag.Int(p, "age").TryResolve()
	fmt.Println(errors.Is(err, dashflag.ArgProcessing))
	fmt.Println(err)
	// Output:
	// true
	// flag --age: invalid value "thirty"
}

func ExampleRegistry_Render() {
	p := dashflag.New([]string{"prog"})
	dashflag.String(p, "name").WithHelp("Name to greet.")
	dashflag.Int(p, "age")

	p.Registry().Render(os.Stdout, "prog")
	// Output:
	// Usage of: prog
	// --age: Integer flag.
	// --name: Name to greet.
	// Example: prog --age <value> --name <value>
}
