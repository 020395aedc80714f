// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// Family is an address family.
type Family uint8

const (
	AF_UNSPEC     Family = unix.AF_UNSPEC
	AF_UNIX       Family = unix.AF_UNIX
	AF_INET       Family = unix.AF_INET
	AF_AX25       Family = unix.AF_AX25
	AF_IPX        Family = unix.AF_IPX
	AF_APPLETALK  Family = unix.AF_APPLETALK
	AF_NETROM     Family = unix.AF_NETROM
	AF_BRIDGE     Family = unix.AF_BRIDGE
	AF_ATMPVC     Family = unix.AF_ATMPVC
	AF_X25        Family = unix.AF_X25
	AF_INET6      Family = unix.AF_INET6
	AF_ROSE       Family = unix.AF_ROSE
	AF_DECnet     Family = unix.AF_DECnet
	AF_NETBEUI    Family = unix.AF_NETBEUI
	AF_SECURITY   Family = unix.AF_SECURITY
	AF_KEY        Family = unix.AF_KEY
	AF_NETLINK    Family = unix.AF_NETLINK
	AF_PACKET     Family = unix.AF_PACKET
	AF_ASH        Family = unix.AF_ASH
	AF_ECONET     Family = unix.AF_ECONET
	AF_ATMSVC     Family = unix.AF_ATMSVC
	AF_RDS        Family = unix.AF_RDS
	AF_SNA        Family = unix.AF_SNA
	AF_IRDA       Family = unix.AF_IRDA
	AF_PPPOX      Family = unix.AF_PPPOX
	AF_WANPIPE    Family = unix.AF_WANPIPE
	AF_LLC        Family = unix.AF_LLC
	AF_IB         Family = unix.AF_IB
	AF_MPLS       Family = unix.AF_MPLS
	AF_CAN        Family = unix.AF_CAN
	AF_TIPC       Family = unix.AF_TIPC
	AF_BLUETOOTH  Family = unix.AF_BLUETOOTH
	AF_IUCV       Family = unix.AF_IUCV
	AF_RXRPC      Family = unix.AF_RXRPC
	AF_ISDN       Family = unix.AF_ISDN
	AF_PHONET     Family = unix.AF_PHONET
	AF_IEEE802154 Family = unix.AF_IEEE802154
	AF_CAIF       Family = unix.AF_CAIF
	AF_ALG        Family = unix.AF_ALG
	AF_NFC        Family = unix.AF_NFC
	AF_VSOCK      Family = unix.AF_VSOCK
	AF_KCM        Family = unix.AF_KCM
	AF_QIPCRTR    Family = unix.AF_QIPCRTR
	AF_SMC        Family = unix.AF_SMC
	AF_XDP        Family = unix.AF_XDP
)

var FamilyName = map[Family]string{
	AF_UNSPEC:     "unspec",
	AF_UNIX:       "unix",
	AF_INET:       "inet",
	AF_AX25:       "ax25",
	AF_IPX:        "ipx",
	AF_APPLETALK:  "appletalk",
	AF_NETROM:     "netrom",
	AF_BRIDGE:     "bridge",
	AF_ATMPVC:     "atmpvc",
	AF_X25:        "x25",
	AF_INET6:      "inet6",
	AF_ROSE:       "rose",
	AF_DECnet:     "decnet",
	AF_NETBEUI:    "netbeui",
	AF_SECURITY:   "security",
	AF_KEY:        "key",
	AF_NETLINK:    "netlink",
	AF_PACKET:     "packet",
	AF_ASH:        "ash",
	AF_ECONET:     "econet",
	AF_ATMSVC:     "atmsvc",
	AF_RDS:        "rds",
	AF_SNA:        "sna",
	AF_IRDA:       "irda",
	AF_PPPOX:      "pppox",
	AF_WANPIPE:    "wanpipe",
	AF_LLC:        "llc",
	AF_IB:         "ib",
	AF_MPLS:       "mpls",
	AF_CAN:        "can",
	AF_TIPC:       "tipc",
	AF_BLUETOOTH:  "bluetooth",
	AF_IUCV:       "iucv",
	AF_RXRPC:      "rxrpc",
	AF_ISDN:       "isdn",
	AF_PHONET:     "phonet",
	AF_IEEE802154: "ieee802154",
	AF_CAIF:       "caif",
	AF_ALG:        "alg",
	AF_NFC:        "nfc",
	AF_VSOCK:      "vsock",
	AF_KCM:        "kcm",
	AF_QIPCRTR:    "qipcrtr",
	AF_SMC:        "smc",
	AF_XDP:        "xdp",
}

var FamilyByName = nl.ByName(FamilyName)

func (af Family) Known() bool {
	_, found := FamilyName[af]
	return found
}

func (af Family) String() string { return nl.Name(FamilyName, af) }

func (Family) Size() int { return 1 }

func (af Family) Read(b []byte) (int, error) { return nl.EncodeEnum(b, af) }

func (af *Family) Write(b []byte) (int, error) { return nl.DecodeEnum(b, af) }
