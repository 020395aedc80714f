// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// NeighborState is a single neighbor cache state bit of NdMsg.
type NeighborState uint16

const (
	NUD_INCOMPLETE NeighborState = unix.NUD_INCOMPLETE
	NUD_REACHABLE  NeighborState = unix.NUD_REACHABLE
	NUD_STALE      NeighborState = unix.NUD_STALE
	NUD_DELAY      NeighborState = unix.NUD_DELAY
	NUD_PROBE      NeighborState = unix.NUD_PROBE
	NUD_FAILED     NeighborState = unix.NUD_FAILED
	NUD_NOARP      NeighborState = unix.NUD_NOARP
	NUD_PERMANENT  NeighborState = unix.NUD_PERMANENT
)

var NeighborStateName = map[NeighborState]string{
	NUD_INCOMPLETE: "incomplete",
	NUD_REACHABLE:  "reachable",
	NUD_STALE:      "stale",
	NUD_DELAY:      "delay",
	NUD_PROBE:      "probe",
	NUD_FAILED:     "failed",
	NUD_NOARP:      "noarp",
	NUD_PERMANENT:  "permanent",
}

var NeighborStateByName = nl.ByName(NeighborStateName)

func (s NeighborState) Known() bool {
	_, found := NeighborStateName[s]
	return found
}

func (s NeighborState) String() string { return nl.Name(NeighborStateName, s) }

// NeighborFlag is a single flag of NdMsg.
type NeighborFlag uint8

const (
	NTF_USE         NeighborFlag = unix.NTF_USE
	NTF_SELF        NeighborFlag = unix.NTF_SELF
	NTF_MASTER      NeighborFlag = unix.NTF_MASTER
	NTF_PROXY       NeighborFlag = unix.NTF_PROXY
	NTF_EXT_LEARNED NeighborFlag = unix.NTF_EXT_LEARNED
	NTF_OFFLOADED   NeighborFlag = unix.NTF_OFFLOADED
	NTF_ROUTER      NeighborFlag = unix.NTF_ROUTER
)

var NeighborFlagName = map[NeighborFlag]string{
	NTF_USE:         "use",
	NTF_SELF:        "self",
	NTF_MASTER:      "master",
	NTF_PROXY:       "proxy",
	NTF_EXT_LEARNED: "learned",
	NTF_OFFLOADED:   "offloaded",
	NTF_ROUTER:      "router",
}

var NeighborFlagByName = nl.ByName(NeighborFlagName)

func (f NeighborFlag) Known() bool {
	_, found := NeighborFlagName[f]
	return found
}

func (f NeighborFlag) String() string { return nl.Name(NeighborFlagName, f) }
