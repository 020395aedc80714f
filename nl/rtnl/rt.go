// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// RouteTable is one of the reserved routing table identifiers.
type RouteTable uint8

const (
	RT_TABLE_UNSPEC  RouteTable = unix.RT_TABLE_UNSPEC
	RT_TABLE_COMPAT  RouteTable = unix.RT_TABLE_COMPAT
	RT_TABLE_DEFAULT RouteTable = unix.RT_TABLE_DEFAULT
	RT_TABLE_MAIN    RouteTable = unix.RT_TABLE_MAIN
	RT_TABLE_LOCAL   RouteTable = unix.RT_TABLE_LOCAL
)

var RouteTableName = map[RouteTable]string{
	RT_TABLE_UNSPEC:  "unspec",
	RT_TABLE_COMPAT:  "compat",
	RT_TABLE_DEFAULT: "default",
	RT_TABLE_MAIN:    "main",
	RT_TABLE_LOCAL:   "local",
}

var RouteTableByName = nl.ByName(RouteTableName)

func (t RouteTable) Known() bool {
	_, found := RouteTableName[t]
	return found
}

func (t RouteTable) String() string { return nl.Name(RouteTableName, t) }

func (RouteTable) Size() int { return 1 }

func (t RouteTable) Read(b []byte) (int, error) { return nl.EncodeEnum(b, t) }

func (t *RouteTable) Write(b []byte) (int, error) { return nl.DecodeEnum(b, t) }

// RouteProtocol identifies who installed a route.
type RouteProtocol uint8

const (
	RTPROT_UNSPEC     RouteProtocol = unix.RTPROT_UNSPEC
	RTPROT_REDIRECT   RouteProtocol = unix.RTPROT_REDIRECT
	RTPROT_KERNEL     RouteProtocol = unix.RTPROT_KERNEL
	RTPROT_BOOT       RouteProtocol = unix.RTPROT_BOOT
	RTPROT_STATIC     RouteProtocol = unix.RTPROT_STATIC
	RTPROT_GATED      RouteProtocol = unix.RTPROT_GATED
	RTPROT_RA         RouteProtocol = unix.RTPROT_RA
	RTPROT_MRT        RouteProtocol = unix.RTPROT_MRT
	RTPROT_ZEBRA      RouteProtocol = unix.RTPROT_ZEBRA
	RTPROT_BIRD       RouteProtocol = unix.RTPROT_BIRD
	RTPROT_DNROUTED   RouteProtocol = unix.RTPROT_DNROUTED
	RTPROT_XORP       RouteProtocol = unix.RTPROT_XORP
	RTPROT_NTK        RouteProtocol = unix.RTPROT_NTK
	RTPROT_DHCP       RouteProtocol = unix.RTPROT_DHCP
	RTPROT_MROUTED    RouteProtocol = unix.RTPROT_MROUTED
	RTPROT_BABEL      RouteProtocol = unix.RTPROT_BABEL
	RTPROT_BGP        RouteProtocol = unix.RTPROT_BGP
	RTPROT_ISIS       RouteProtocol = unix.RTPROT_ISIS
	RTPROT_OSPF       RouteProtocol = unix.RTPROT_OSPF
	RTPROT_RIP        RouteProtocol = unix.RTPROT_RIP
	RTPROT_EIGRP      RouteProtocol = unix.RTPROT_EIGRP
	RTPROT_KEEPALIVED RouteProtocol = unix.RTPROT_KEEPALIVED
	RTPROT_OPENR      RouteProtocol = unix.RTPROT_OPENR
)

var RouteProtocolName = map[RouteProtocol]string{
	RTPROT_UNSPEC:     "unspec",
	RTPROT_REDIRECT:   "redirect",
	RTPROT_KERNEL:     "kernel",
	RTPROT_BOOT:       "boot",
	RTPROT_STATIC:     "static",
	RTPROT_GATED:      "gated",
	RTPROT_RA:         "ra",
	RTPROT_MRT:        "mrt",
	RTPROT_ZEBRA:      "zebra",
	RTPROT_BIRD:       "bird",
	RTPROT_DNROUTED:   "dnrouted",
	RTPROT_XORP:       "xorp",
	RTPROT_NTK:        "ntk",
	RTPROT_DHCP:       "dhcp",
	RTPROT_MROUTED:    "mrouted",
	RTPROT_BABEL:      "babel",
	RTPROT_BGP:        "bgp",
	RTPROT_ISIS:       "isis",
	RTPROT_OSPF:       "ospf",
	RTPROT_RIP:        "rip",
	RTPROT_EIGRP:      "eigrp",
	RTPROT_KEEPALIVED: "keepalived",
	RTPROT_OPENR:      "openr",
}

var RouteProtocolByName = nl.ByName(RouteProtocolName)

func (p RouteProtocol) Known() bool {
	_, found := RouteProtocolName[p]
	return found
}

func (p RouteProtocol) String() string { return nl.Name(RouteProtocolName, p) }

func (RouteProtocol) Size() int { return 1 }

func (p RouteProtocol) Read(b []byte) (int, error) { return nl.EncodeEnum(b, p) }

func (p *RouteProtocol) Write(b []byte) (int, error) {
	return nl.DecodeEnum(b, p)
}

// RouteScope is the distance to a route's destination.
type RouteScope uint8

const (
	RT_SCOPE_UNIVERSE RouteScope = unix.RT_SCOPE_UNIVERSE
	RT_SCOPE_SITE     RouteScope = unix.RT_SCOPE_SITE
	RT_SCOPE_LINK     RouteScope = unix.RT_SCOPE_LINK
	RT_SCOPE_HOST     RouteScope = unix.RT_SCOPE_HOST
	RT_SCOPE_NOWHERE  RouteScope = unix.RT_SCOPE_NOWHERE
)

var RouteScopeName = map[RouteScope]string{
	RT_SCOPE_UNIVERSE: "universe",
	RT_SCOPE_SITE:     "site",
	RT_SCOPE_LINK:     "link",
	RT_SCOPE_HOST:     "host",
	RT_SCOPE_NOWHERE:  "nowhere",
}

var RouteScopeByName = nl.ByName(RouteScopeName)

func (s RouteScope) Known() bool {
	_, found := RouteScopeName[s]
	return found
}

func (s RouteScope) String() string { return nl.Name(RouteScopeName, s) }

func (RouteScope) Size() int { return 1 }

func (s RouteScope) Read(b []byte) (int, error) { return nl.EncodeEnum(b, s) }

func (s *RouteScope) Write(b []byte) (int, error) { return nl.DecodeEnum(b, s) }

// RouteFlag is a single flag of RtMsg.
type RouteFlag uint32

const (
	RTM_F_NOTIFY         RouteFlag = unix.RTM_F_NOTIFY
	RTM_F_CLONED         RouteFlag = unix.RTM_F_CLONED
	RTM_F_EQUALIZE       RouteFlag = unix.RTM_F_EQUALIZE
	RTM_F_PREFIX         RouteFlag = unix.RTM_F_PREFIX
	RTM_F_LOOKUP_TABLE   RouteFlag = unix.RTM_F_LOOKUP_TABLE
	RTM_F_FIB_MATCH      RouteFlag = unix.RTM_F_FIB_MATCH
	RTM_F_OFFLOAD        RouteFlag = unix.RTM_F_OFFLOAD
	RTM_F_TRAP           RouteFlag = unix.RTM_F_TRAP
	RTM_F_OFFLOAD_FAILED RouteFlag = unix.RTM_F_OFFLOAD_FAILED
)

var RouteFlagName = map[RouteFlag]string{
	RTM_F_NOTIFY:         "notify",
	RTM_F_CLONED:         "cloned",
	RTM_F_EQUALIZE:       "equalize",
	RTM_F_PREFIX:         "prefix",
	RTM_F_LOOKUP_TABLE:   "lookup-table",
	RTM_F_FIB_MATCH:      "fib-match",
	RTM_F_OFFLOAD:        "offload",
	RTM_F_TRAP:           "trap",
	RTM_F_OFFLOAD_FAILED: "offload-failed",
}

var RouteFlagByName = nl.ByName(RouteFlagName)

func (f RouteFlag) Known() bool {
	_, found := RouteFlagName[f]
	return found
}

func (f RouteFlag) String() string { return nl.Name(RouteFlagName, f) }
