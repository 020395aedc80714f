// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"fmt"
	"io"

	"github.com/platinasystems/rtnl/internal/accumulate"
	"github.com/platinasystems/rtnl/nl"
)

const SizeofIfInfoMsg = 1 + 2 + 4 + 4 + 4

// IfInfoChangeAll is the change mask of every encoded IfInfoMsg.
const IfInfoChangeAll = ^uint32(0)

// IfInfoMsg heads the link messages.
type IfInfoMsg struct {
	Family Family
	Type   LinkType
	Index  int32
	Flags  nl.Flags[IfFlag]
	change uint32
}

func NewIfInfoMsg(family Family, linkType LinkType, index int32,
	flags ...IfFlag) IfInfoMsg {
	return IfInfoMsg{
		Family: family,
		Type:   linkType,
		Index:  index,
		Flags:  nl.NewFlags(flags...),
		change: IfInfoChangeAll,
	}
}

// Change is the mask of flags a request may change. It is all-ones for
// messages made by NewIfInfoMsg or decoded by Write.
func (msg IfInfoMsg) Change() uint32 { return msg.change }

func (IfInfoMsg) Size() int { return SizeofIfInfoMsg }

// Read encodes msg with a change mask of IfInfoChangeAll.
func (msg IfInfoMsg) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "ifinfomsg", []nl.Field{
		{Name: "family", Encoder: msg.Family},
		{Name: "type", Encoder: msg.Type},
		{Name: "index", Encoder: nl.Int32(msg.Index)},
		{Name: "flags", Encoder: msg.Flags},
		{Name: "change", Encoder: nl.Uint32(IfInfoChangeAll)},
	}...)
}

func (msg *IfInfoMsg) Write(b []byte) (int, error) {
	return msg.Decode(b, nl.DropUnknown)
}

// Decode is Write with the given policy for unknown flags. The stored change
// mask is consumed and replaced by IfInfoChangeAll.
func (msg *IfInfoMsg) Decode(b []byte, policy nl.Policy) (int, error) {
	var (
		t      IfInfoMsg
		change nl.Uint32
	)
	n, err := nl.DecodeFields(b, "ifinfomsg", []nl.Slot{
		{Name: "family", Decoder: &t.Family},
		{Name: "type", Decoder: &t.Type},
		{Name: "index", Decoder: (*nl.Int32)(&t.Index)},
		{Name: "flags", Decoder: t.Flags.Decoder(policy)},
		{Name: "change", Decoder: &change},
	}...)
	if err != nil {
		return 0, err
	}
	t.change = IfInfoChangeAll
	*msg = t
	return n, nil
}

func (msg IfInfoMsg) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "family:", msg.Family)
	fmt.Fprintln(acc, "type:", msg.Type)
	fmt.Fprintln(acc, "index:", msg.Index)
	fmt.Fprintln(acc, "flags:", msg.Flags)
	fmt.Fprintf(acc, "change: %#x\n", msg.change)
	return acc.Tuple()
}

func (msg IfInfoMsg) String() string { return dump(msg) }

// IflaKind is the type of a link attribute.
type IflaKind uint16

const (
	IFLA_UNSPEC IflaKind = iota
	IFLA_ADDRESS
	IFLA_BROADCAST
	IFLA_IFNAME
	IFLA_MTU
	IFLA_LINK
	IFLA_QDISC
	IFLA_STATS
	IFLA_COST
	IFLA_PRIORITY
	IFLA_MASTER
	IFLA_WIRELESS
	IFLA_PROTINFO
	IFLA_TXQLEN
	IFLA_MAP
	IFLA_WEIGHT
	IFLA_OPERSTATE
	IFLA_LINKMODE
	IFLA_LINKINFO
	IFLA_NET_NS_PID
	IFLA_IFALIAS
	IFLA_NUM_VF
	IFLA_VFINFO_LIST
	IFLA_STATS64
	IFLA_VF_PORTS
	IFLA_PORT_SELF
	IFLA_AF_SPEC
	IFLA_GROUP
	IFLA_NET_NS_FD
	IFLA_EXT_MASK
	IFLA_PROMISCUITY
	IFLA_NUM_TX_QUEUES
	IFLA_NUM_RX_QUEUES
	IFLA_CARRIER
	IFLA_PHYS_PORT_ID
	IFLA_CARRIER_CHANGES
	IFLA_PHYS_SWITCH_ID
	IFLA_LINK_NETNSID
	IFLA_PHYS_PORT_NAME
	IFLA_PROTO_DOWN
	IFLA_GSO_MAX_SEGS
	IFLA_GSO_MAX_SIZE
	IFLA_PAD
	IFLA_XDP
	IFLA_EVENT
	IFLA_NEW_NETNSID
	IFLA_IF_NETNSID
	IFLA_CARRIER_UP_COUNT
	IFLA_CARRIER_DOWN_COUNT
	IFLA_NEW_IFINDEX
	IFLA_MIN_MTU
	IFLA_MAX_MTU
	N_IFLA
)

const IFLA_MAX = N_IFLA - 1

var IflaKindName = map[IflaKind]string{
	IFLA_UNSPEC:             "unspec",
	IFLA_ADDRESS:            "address",
	IFLA_BROADCAST:          "broadcast",
	IFLA_IFNAME:             "ifname",
	IFLA_MTU:                "mtu",
	IFLA_LINK:               "link",
	IFLA_QDISC:              "qdisc",
	IFLA_STATS:              "stats",
	IFLA_COST:               "cost",
	IFLA_PRIORITY:           "priority",
	IFLA_MASTER:             "master",
	IFLA_WIRELESS:           "wireless",
	IFLA_PROTINFO:           "protinfo",
	IFLA_TXQLEN:             "txqlen",
	IFLA_MAP:                "map",
	IFLA_WEIGHT:             "weight",
	IFLA_OPERSTATE:          "operstate",
	IFLA_LINKMODE:           "linkmode",
	IFLA_LINKINFO:           "linkinfo",
	IFLA_NET_NS_PID:         "net-ns-pid",
	IFLA_IFALIAS:            "ifalias",
	IFLA_NUM_VF:             "num-vf",
	IFLA_VFINFO_LIST:        "vfinfo-list",
	IFLA_STATS64:            "stats64",
	IFLA_VF_PORTS:           "vf-ports",
	IFLA_PORT_SELF:          "port-self",
	IFLA_AF_SPEC:            "af-spec",
	IFLA_GROUP:              "group",
	IFLA_NET_NS_FD:          "net-ns-fd",
	IFLA_EXT_MASK:           "ext-mask",
	IFLA_PROMISCUITY:        "promiscuity",
	IFLA_NUM_TX_QUEUES:      "num-tx-queues",
	IFLA_NUM_RX_QUEUES:      "num-rx-queues",
	IFLA_CARRIER:            "carrier",
	IFLA_PHYS_PORT_ID:       "phys-port-id",
	IFLA_CARRIER_CHANGES:    "carrier-changes",
	IFLA_PHYS_SWITCH_ID:     "phys-switch-id",
	IFLA_LINK_NETNSID:       "link-netnsid",
	IFLA_PHYS_PORT_NAME:     "phys-port-name",
	IFLA_PROTO_DOWN:         "proto-down",
	IFLA_GSO_MAX_SEGS:       "gso-max-segs",
	IFLA_GSO_MAX_SIZE:       "gso-max-size",
	IFLA_PAD:                "pad",
	IFLA_XDP:                "xdp",
	IFLA_EVENT:              "event",
	IFLA_NEW_NETNSID:        "new-netnsid",
	IFLA_IF_NETNSID:         "if-netnsid",
	IFLA_CARRIER_UP_COUNT:   "carrier-up-count",
	IFLA_CARRIER_DOWN_COUNT: "carrier-down-count",
	IFLA_NEW_IFINDEX:        "new-ifindex",
	IFLA_MIN_MTU:            "min-mtu",
	IFLA_MAX_MTU:            "max-mtu",
}

func (k IflaKind) Known() bool { return k < N_IFLA }
func (k IflaKind) String() string { return nl.Name(IflaKindName, k) }

// IflaIfname returns an IFLA_IFNAME attribute.
func IflaIfname(name string) nl.Attr[IflaKind, nl.Kstring, *nl.Kstring] {
	return nl.NewAttr[IflaKind, nl.Kstring, *nl.Kstring](IFLA_IFNAME,
		nl.Kstring(name))
}

// IflaMtu returns an IFLA_MTU attribute.
func IflaMtu(mtu uint32) nl.Attr[IflaKind, nl.Uint32, *nl.Uint32] {
	return nl.NewAttr[IflaKind, nl.Uint32, *nl.Uint32](IFLA_MTU,
		nl.Uint32(mtu))
}

// Ifla indexes the attributes that follow an IfInfoMsg by kind.
type Ifla [N_IFLA][]byte

// Write indexes the attribute list b.
func (ifla *Ifla) Write(b []byte) (int, error) {
	if err := nl.IndexAttrs(ifla[:], b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (ifla *Ifla) Address() []byte { return ifla[IFLA_ADDRESS] }

func (ifla *Ifla) Broadcast() []byte { return ifla[IFLA_BROADCAST] }

func (ifla *Ifla) Ifname() (string, error) {
	var s nl.Kstring
	err := decodeAttr("ifla", "ifname", ifla[IFLA_IFNAME], &s)
	return string(s), err
}

func (ifla *Ifla) Mtu() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("ifla", "mtu", ifla[IFLA_MTU], &v)
	return uint32(v), err
}

func (ifla *Ifla) Master() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("ifla", "master", ifla[IFLA_MASTER], &v)
	return uint32(v), err
}

func (ifla *Ifla) Txqlen() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("ifla", "txqlen", ifla[IFLA_TXQLEN], &v)
	return uint32(v), err
}
