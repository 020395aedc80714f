// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is a stand alone rtnlcodec command.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/platinasystems/rtnl/cmd/rtnlcodec"
)

func main() {
	c := rtnlcodec.Command{}
	args := os.Args[1:]
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" ||
		args[0] == "help" {
		fmt.Print("usage:", c.Usage(), "\n", c.Man(), "\n")
		return
	}
	if args[0] == "-complete" || args[0] == "--complete" {
		for _, s := range c.Complete(args[1:]...) {
			fmt.Println(s)
		}
		return
	}
	if err := c.Main(args...); err != nil {
		fmt.Fprint(os.Stderr, c, ": ", strings.TrimSpace(err.Error()),
			"\n")
		os.Exit(1)
	}
}
