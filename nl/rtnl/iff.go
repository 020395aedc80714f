// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// IfFlag is a single interface flag of IfInfoMsg.
type IfFlag uint32

const (
	IFF_UP          IfFlag = unix.IFF_UP
	IFF_BROADCAST   IfFlag = unix.IFF_BROADCAST
	IFF_DEBUG       IfFlag = unix.IFF_DEBUG
	IFF_LOOPBACK    IfFlag = unix.IFF_LOOPBACK
	IFF_POINTOPOINT IfFlag = unix.IFF_POINTOPOINT
	IFF_NOTRAILERS  IfFlag = unix.IFF_NOTRAILERS
	IFF_RUNNING     IfFlag = unix.IFF_RUNNING
	IFF_NOARP       IfFlag = unix.IFF_NOARP
	IFF_PROMISC     IfFlag = unix.IFF_PROMISC
	IFF_ALLMULTI    IfFlag = unix.IFF_ALLMULTI
	IFF_MASTER      IfFlag = unix.IFF_MASTER
	IFF_SLAVE       IfFlag = unix.IFF_SLAVE
	IFF_MULTICAST   IfFlag = unix.IFF_MULTICAST
	IFF_PORTSEL     IfFlag = unix.IFF_PORTSEL
	IFF_AUTOMEDIA   IfFlag = unix.IFF_AUTOMEDIA
	IFF_DYNAMIC     IfFlag = unix.IFF_DYNAMIC
	IFF_LOWER_UP    IfFlag = unix.IFF_LOWER_UP
	IFF_DORMANT     IfFlag = unix.IFF_DORMANT
	IFF_ECHO        IfFlag = unix.IFF_ECHO
)

var IfFlagName = map[IfFlag]string{
	IFF_UP:          "up",
	IFF_BROADCAST:   "broadcast",
	IFF_DEBUG:       "debug",
	IFF_LOOPBACK:    "loopback",
	IFF_POINTOPOINT: "pointopoint",
	IFF_NOTRAILERS:  "notrailers",
	IFF_RUNNING:     "running",
	IFF_NOARP:       "noarp",
	IFF_PROMISC:     "promisc",
	IFF_ALLMULTI:    "allmulti",
	IFF_MASTER:      "master",
	IFF_SLAVE:       "slave",
	IFF_MULTICAST:   "multicast",
	IFF_PORTSEL:     "portsel",
	IFF_AUTOMEDIA:   "automedia",
	IFF_DYNAMIC:     "dynamic",
	IFF_LOWER_UP:    "lower-up",
	IFF_DORMANT:     "dormant",
	IFF_ECHO:        "echo",
}

var IfFlagByName = nl.ByName(IfFlagName)

func (f IfFlag) Known() bool {
	_, found := IfFlagName[f]
	return found
}

func (f IfFlag) String() string { return nl.Name(IfFlagName, f) }

// IfAddrFlag is a single address flag of IfAddrMsg. Flags beyond the low
// byte are only carried by the IFA_FLAGS attribute.
type IfAddrFlag uint8

const (
	IFA_F_SECONDARY   IfAddrFlag = unix.IFA_F_SECONDARY
	IFA_F_TEMPORARY              = IFA_F_SECONDARY
	IFA_F_NODAD       IfAddrFlag = unix.IFA_F_NODAD
	IFA_F_OPTIMISTIC  IfAddrFlag = unix.IFA_F_OPTIMISTIC
	IFA_F_DADFAILED   IfAddrFlag = unix.IFA_F_DADFAILED
	IFA_F_HOMEADDRESS IfAddrFlag = unix.IFA_F_HOMEADDRESS
	IFA_F_DEPRECATED  IfAddrFlag = unix.IFA_F_DEPRECATED
	IFA_F_TENTATIVE   IfAddrFlag = unix.IFA_F_TENTATIVE
	IFA_F_PERMANENT   IfAddrFlag = unix.IFA_F_PERMANENT
)

var IfAddrFlagName = map[IfAddrFlag]string{
	IFA_F_SECONDARY:   "secondary",
	IFA_F_NODAD:       "nodad",
	IFA_F_OPTIMISTIC:  "optimistic",
	IFA_F_DADFAILED:   "dadfailed",
	IFA_F_HOMEADDRESS: "homeaddress",
	IFA_F_DEPRECATED:  "deprecated",
	IFA_F_TENTATIVE:   "tentative",
	IFA_F_PERMANENT:   "permanent",
}

var IfAddrFlagByName = nl.ByName(IfAddrFlagName)

func (f IfAddrFlag) Known() bool {
	_, found := IfAddrFlagName[f]
	return found
}

func (f IfAddrFlag) String() string { return nl.Name(IfAddrFlagName, f) }
