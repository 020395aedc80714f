// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package rtnlcodec decodes and encodes the fixed rtnetlink records from and
// to hex.
package rtnlcodec

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/rtnl/internal/accumulate"
	"github.com/platinasystems/rtnl/nl"
	"github.com/platinasystems/url"
	"gopkg.in/yaml.v3"
)

type Command struct {
	// Stdout defaults to os.Stdout.
	Stdout io.Writer
}

func (Command) String() string { return "rtnlcodec" }

func (Command) Usage() string {
	return `
	rtnlcodec decode [-strict] KIND HEX...
	rtnlcodec encode [-x|-raw] [-f URL] KIND [NAME VALUE]...
	rtnlcodec kinds`
}

func (Command) Man() string {
	return `
DESCRIPTION
	Decode a hex encoded rtnetlink record and print its fields, or
	encode a record from its named fields.

	KIND is one of: ifinfo, ifaddr, route, neigh, ndacache, ifacache,
	rtacache. Bytes that follow a decoded record are listed as
	attributes.

OPTIONS
	-strict	reject unknown flag bits instead of dropping them
	-x	print encoded record in hex (default if stdout is a tty)
	-raw	print encoded record as binary
	-f URL	YAML description of the record's fields, e.g.
		family: inet
		index: 2
		flags: [up, running]

EXAMPLES
	rtnlcodec encode ifinfo family inet index 2 flags up,running
	rtnlcodec decode neigh 0a0300000082000201`
}

func (c Command) Main(args ...string) error {
	if len(args) == 0 {
		return fmt.Errorf("decode, encode or kinds: missing")
	}
	switch args[0] {
	case "decode":
		return c.decode(args[1:]...)
	case "encode":
		return c.encode(args[1:]...)
	case "kinds":
		return c.kinds(args[1:]...)
	}
	return fmt.Errorf("%s: unknown", args[0])
}

func (c Command) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func (c Command) decode(args ...string) error {
	flag, args := flags.New(args, "-strict")
	switch len(args) {
	case 0:
		return fmt.Errorf("KIND: missing")
	case 1:
		return fmt.Errorf("HEX: missing")
	}
	k, err := kindByName(args[0])
	if err != nil {
		return err
	}
	b, err := hex.DecodeString(strings.NewReplacer(":", "", " ", "",
		"\n", "").Replace(strings.Join(args[1:], "")))
	if err != nil {
		return err
	}
	policy := nl.DropUnknown
	if flag.ByName["-strict"] {
		policy = nl.RejectUnknown
	}
	r := k.new()
	var n int
	if d, ok := r.(interface {
		Decode([]byte, nl.Policy) (int, error)
	}); ok {
		n, err = d.Decode(b, policy)
	} else {
		n, err = r.Write(b)
	}
	if err != nil {
		return err
	}
	i := nl.NLMSG.Align(n)
	if i < len(b) && k.attr == nil {
		return fmt.Errorf("%d trailing bytes", len(b)-n)
	}
	acc := accumulate.New(c.stdout())
	acc.Dump(r)
	if i < len(b) {
		err = nl.ForEachAttr(b[i:], func(t uint16, payload []byte) error {
			fmt.Fprintf(acc, "%s: %x\n", k.attr(t), payload)
			return acc.Error()
		})
		if err != nil && acc.Error() == nil {
			// the record itself decoded; a malformed tail isn't fatal
			log.Print("err", k.name, " attributes: ", err)
		}
	}
	_, err = acc.Tuple()
	return err
}

func (c Command) encode(args ...string) error {
	flag, args := flags.New(args, "-x", "-raw")
	parm, args := parms.New(args, "-f")
	if len(args) == 0 {
		return fmt.Errorf("KIND: missing")
	}
	k, err := kindByName(args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	r := k.new()
	if fn := parm.ByName["-f"]; len(fn) > 0 {
		desc, err := loadDescription(fn)
		if err != nil {
			return err
		}
		for _, name := range k.fieldNames(r) {
			if value, found := desc[name]; found {
				if err = k.set(r, name, value); err != nil {
					return fmt.Errorf("%s: %w", fn, err)
				}
				delete(desc, name)
			}
		}
		if len(desc) > 0 {
			names := make([]string, 0, len(desc))
			for name := range desc {
				names = append(names, name)
			}
			sort.Strings(names)
			return fmt.Errorf("%s: %s: %s: unknown field", fn, k.name,
				strings.Join(names, ", "))
		}
	}
	if len(args)%2 != 0 {
		return fmt.Errorf("%s: missing value", args[len(args)-1])
	}
	for i := 0; i < len(args); i += 2 {
		if err = k.set(r, args[i], args[i+1]); err != nil {
			return err
		}
	}
	b, err := nl.Marshal(r)
	if err != nil {
		return err
	}
	w := c.stdout()
	if flag.ByName["-x"] || !flag.ByName["-raw"] && isTerminal(w) {
		_, err = fmt.Fprintln(w, hex.EncodeToString(b))
	} else {
		_, err = w.Write(b)
	}
	return err
}

func (c Command) kinds(args ...string) error {
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	w := c.stdout()
	for i := range kinds {
		k := &kinds[i]
		r := k.new()
		_, err := fmt.Fprintf(w, "%-9s%3d  %s\n", k.name, r.Size(),
			strings.Join(k.fieldNames(r), " "))
		if err != nil {
			return err
		}
	}
	return nil
}

// loadDescription reads a YAML mapping of field names to values. Sequence
// values are joined with commas, as for flags.
func loadDescription(fn string) (map[string]string, error) {
	rc, err := url.Open(fn)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var m map[string]interface{}
	if err = yaml.NewDecoder(rc).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	desc := make(map[string]string, len(m))
	for name, v := range m {
		switch t := v.(type) {
		case []interface{}:
			s := make([]string, 0, len(t))
			for _, e := range t {
				s = append(s, fmt.Sprint(e))
			}
			desc[name] = strings.Join(s, ",")
		case nil:
			desc[name] = ""
		default:
			desc[name] = fmt.Sprint(t)
		}
	}
	return desc, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
