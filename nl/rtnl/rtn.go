// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"sort"
	"strings"

	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// RouteType is the type of a route or of a neighbor entry.
type RouteType uint8

const (
	RTN_UNSPEC      RouteType = unix.RTN_UNSPEC
	RTN_UNICAST     RouteType = unix.RTN_UNICAST
	RTN_LOCAL       RouteType = unix.RTN_LOCAL
	RTN_BROADCAST   RouteType = unix.RTN_BROADCAST
	RTN_ANYCAST     RouteType = unix.RTN_ANYCAST
	RTN_MULTICAST   RouteType = unix.RTN_MULTICAST
	RTN_BLACKHOLE   RouteType = unix.RTN_BLACKHOLE
	RTN_UNREACHABLE RouteType = unix.RTN_UNREACHABLE
	RTN_PROHIBIT    RouteType = unix.RTN_PROHIBIT
	RTN_THROW       RouteType = unix.RTN_THROW
	RTN_NAT         RouteType = unix.RTN_NAT
	RTN_XRESOLVE    RouteType = unix.RTN_XRESOLVE
)

var RouteTypeName = map[RouteType]string{
	RTN_UNSPEC:      "unspec",
	RTN_UNICAST:     "unicast",
	RTN_LOCAL:       "local",
	RTN_BROADCAST:   "broadcast",
	RTN_ANYCAST:     "anycast",
	RTN_MULTICAST:   "multicast",
	RTN_BLACKHOLE:   "blackhole",
	RTN_UNREACHABLE: "unreachable",
	RTN_PROHIBIT:    "prohibit",
	RTN_THROW:       "throw",
	RTN_NAT:         "nat",
	RTN_XRESOLVE:    "xresolve",
}

var RouteTypeByName = func() map[string]RouteType {
	m := nl.ByName(RouteTypeName)
	m["brd"] = RTN_BROADCAST
	return m
}()

// CompleteRouteType lists the sorted route type names with prefix s.
func CompleteRouteType(s string) (list []string) {
	for k := range RouteTypeByName {
		if len(s) == 0 || strings.HasPrefix(k, s) {
			list = append(list, k)
		}
	}
	sort.Strings(list)
	return
}

func (t RouteType) Known() bool {
	_, found := RouteTypeName[t]
	return found
}

func (t RouteType) String() string { return nl.Name(RouteTypeName, t) }

func (RouteType) Size() int { return 1 }

func (t RouteType) Read(b []byte) (int, error) { return nl.EncodeEnum(b, t) }

func (t *RouteType) Write(b []byte) (int, error) { return nl.DecodeEnum(b, t) }
