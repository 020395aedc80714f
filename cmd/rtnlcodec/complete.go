// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnlcodec

import "strings"

// Complete returns the candidates for the last of args.
func (Command) Complete(args ...string) (c []string) {
	var cmds = []string{
		"decode",
		"encode",
		"kinds",
	}
	match := func(list []string, s string) {
		for _, x := range list {
			if strings.HasPrefix(x, s) {
				c = append(c, x)
			}
		}
	}
	if len(args) > 0 && strings.HasSuffix(args[0], "rtnlcodec") {
		args = args[1:]
	}
	switch len(args) {
	case 0:
		return cmds
	case 1:
		match(cmds, args[0])
		return
	}
	cmd, args := args[0], args[1:]
	last := args[len(args)-1]
	if len(args) > 1 && args[len(args)-2] == "-f" {
		return
	}
	var words []string
	for i := 0; i < len(args)-1; i++ {
		switch {
		case args[i] == "-f":
			i++
		case strings.HasPrefix(args[i], "-"):
		default:
			words = append(words, args[i])
		}
	}
	if len(words) == 0 {
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, k.name)
		}
		match(names, last)
		return
	}
	if cmd != "encode" {
		return
	}
	k, err := kindByName(words[0])
	if err != nil {
		return
	}
	if fields := words[1:]; len(fields)%2 == 0 {
		match(k.fieldNames(k.new()), last)
	} else if values, found := k.values[fields[len(fields)-1]]; found {
		c = values(last)
	}
	return
}
