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

const SizeofRtMsg = 8*1 + 4

// RtMsg heads the route messages. Family is kept as the raw byte since
// routes are also exchanged for families without a Family member.
type RtMsg struct {
	Family   uint8
	DstLen   uint8
	SrcLen   uint8
	Tos      uint8
	Table    RouteTable
	Protocol RouteProtocol
	Scope    RouteScope
	Type     RouteType
	Flags    nl.Flags[RouteFlag]
}

func (RtMsg) Size() int { return SizeofRtMsg }

func (msg RtMsg) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "rtmsg", []nl.Field{
		{Name: "family", Encoder: nl.Uint8(msg.Family)},
		{Name: "dst_len", Encoder: nl.Uint8(msg.DstLen)},
		{Name: "src_len", Encoder: nl.Uint8(msg.SrcLen)},
		{Name: "tos", Encoder: nl.Uint8(msg.Tos)},
		{Name: "table", Encoder: msg.Table},
		{Name: "protocol", Encoder: msg.Protocol},
		{Name: "scope", Encoder: msg.Scope},
		{Name: "type", Encoder: msg.Type},
		{Name: "flags", Encoder: msg.Flags},
	}...)
}

func (msg *RtMsg) Write(b []byte) (int, error) {
	return msg.Decode(b, nl.DropUnknown)
}

func (msg *RtMsg) Decode(b []byte, policy nl.Policy) (int, error) {
	var t RtMsg
	n, err := nl.DecodeFields(b, "rtmsg", []nl.Slot{
		{Name: "family", Decoder: (*nl.Uint8)(&t.Family)},
		{Name: "dst_len", Decoder: (*nl.Uint8)(&t.DstLen)},
		{Name: "src_len", Decoder: (*nl.Uint8)(&t.SrcLen)},
		{Name: "tos", Decoder: (*nl.Uint8)(&t.Tos)},
		{Name: "table", Decoder: &t.Table},
		{Name: "protocol", Decoder: &t.Protocol},
		{Name: "scope", Decoder: &t.Scope},
		{Name: "type", Decoder: &t.Type},
		{Name: "flags", Decoder: t.Flags.Decoder(policy)},
	}...)
	if err != nil {
		return 0, err
	}
	*msg = t
	return n, nil
}

func (msg RtMsg) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "family:", Family(msg.Family))
	fmt.Fprintln(acc, "dst_len:", msg.DstLen)
	fmt.Fprintln(acc, "src_len:", msg.SrcLen)
	fmt.Fprintln(acc, "tos:", msg.Tos)
	fmt.Fprintln(acc, "table:", msg.Table)
	fmt.Fprintln(acc, "protocol:", msg.Protocol)
	fmt.Fprintln(acc, "scope:", msg.Scope)
	fmt.Fprintln(acc, "type:", msg.Type)
	fmt.Fprintln(acc, "flags:", msg.Flags)
	return acc.Tuple()
}

func (msg RtMsg) String() string { return dump(msg) }

const SizeofRtaCacheInfo = 5 * 4

// RtaCacheInfo is the RTA_CACHEINFO payload.
type RtaCacheInfo struct {
	ClntRef uint32
	LastUse uint32
	Expires uint32
	Error   uint32
	Used    uint32
}

func (RtaCacheInfo) Size() int { return SizeofRtaCacheInfo }

func (ci RtaCacheInfo) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "rta_cacheinfo", []nl.Field{
		{Name: "clntref", Encoder: nl.Uint32(ci.ClntRef)},
		{Name: "lastuse", Encoder: nl.Uint32(ci.LastUse)},
		{Name: "expires", Encoder: nl.Uint32(ci.Expires)},
		{Name: "error", Encoder: nl.Uint32(ci.Error)},
		{Name: "used", Encoder: nl.Uint32(ci.Used)},
	}...)
}

func (ci *RtaCacheInfo) Write(b []byte) (int, error) {
	var t RtaCacheInfo
	n, err := nl.DecodeFields(b, "rta_cacheinfo", []nl.Slot{
		{Name: "clntref", Decoder: (*nl.Uint32)(&t.ClntRef)},
		{Name: "lastuse", Decoder: (*nl.Uint32)(&t.LastUse)},
		{Name: "expires", Decoder: (*nl.Uint32)(&t.Expires)},
		{Name: "error", Decoder: (*nl.Uint32)(&t.Error)},
		{Name: "used", Decoder: (*nl.Uint32)(&t.Used)},
	}...)
	if err != nil {
		return 0, err
	}
	*ci = t
	return n, nil
}

func (ci RtaCacheInfo) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "clntref:", ci.ClntRef)
	fmt.Fprintln(acc, "lastuse:", ci.LastUse)
	fmt.Fprintln(acc, "expires:", ci.Expires)
	fmt.Fprintln(acc, "error:", ci.Error)
	fmt.Fprintln(acc, "used:", ci.Used)
	return acc.Tuple()
}

func (ci RtaCacheInfo) String() string {
	return fmt.Sprintf("clntref %d lastuse %d expires %d error %d used %d",
		ci.ClntRef, ci.LastUse, ci.Expires, ci.Error, ci.Used)
}

// RtaKind is the type of a route attribute.
type RtaKind uint16

const (
	RTA_UNSPEC RtaKind = iota
	RTA_DST
	RTA_SRC
	RTA_IIF
	RTA_OIF
	RTA_GATEWAY
	RTA_PRIORITY
	RTA_PREFSRC
	RTA_METRICS
	RTA_MULTIPATH
	RTA_PROTOINFO
	RTA_FLOW
	RTA_CACHEINFO
	RTA_SESSION
	RTA_MP_ALGO
	RTA_TABLE
	RTA_MARK
	RTA_MFC_STATS
	RTA_VIA
	RTA_NEWDST
	RTA_PREF
	RTA_ENCAP_TYPE
	RTA_ENCAP
	RTA_EXPIRES
	RTA_PAD
	RTA_UID
	RTA_TTL_PROPAGATE
	RTA_IP_PROTO
	RTA_SPORT
	RTA_DPORT
	RTA_NH_ID
	N_RTA
)

const RTA_MAX = N_RTA - 1

var RtaKindName = map[RtaKind]string{
	RTA_UNSPEC:        "unspec",
	RTA_DST:           "dst",
	RTA_SRC:           "src",
	RTA_IIF:           "iif",
	RTA_OIF:           "oif",
	RTA_GATEWAY:       "gateway",
	RTA_PRIORITY:      "priority",
	RTA_PREFSRC:       "prefsrc",
	RTA_METRICS:       "metrics",
	RTA_MULTIPATH:     "multipath",
	RTA_PROTOINFO:     "protoinfo",
	RTA_FLOW:          "flow",
	RTA_CACHEINFO:     "cacheinfo",
	RTA_SESSION:       "session",
	RTA_MP_ALGO:       "mp-algo",
	RTA_TABLE:         "table",
	RTA_MARK:          "mark",
	RTA_MFC_STATS:     "mfc-stats",
	RTA_VIA:           "via",
	RTA_NEWDST:        "newdst",
	RTA_PREF:          "pref",
	RTA_ENCAP_TYPE:    "encap-type",
	RTA_ENCAP:         "encap",
	RTA_EXPIRES:       "expires",
	RTA_PAD:           "pad",
	RTA_UID:           "uid",
	RTA_TTL_PROPAGATE: "ttl-propagate",
	RTA_IP_PROTO:      "ip-proto",
	RTA_SPORT:         "sport",
	RTA_DPORT:         "dport",
	RTA_NH_ID:         "nh-id",
}

func (k RtaKind) Known() bool { return k < N_RTA }

func (k RtaKind) String() string { return nl.Name(RtaKindName, k) }

// RtaDst returns an RTA_DST attribute.
func RtaDst(addr []byte) nl.Attr[RtaKind, nl.Bytes, *nl.Bytes] {
	return nl.NewAttr[RtaKind, nl.Bytes, *nl.Bytes](RTA_DST, nl.Bytes(addr))
}

// RtaGateway returns an RTA_GATEWAY attribute.
func RtaGateway(addr []byte) nl.Attr[RtaKind, nl.Bytes, *nl.Bytes] {
	return nl.NewAttr[RtaKind, nl.Bytes, *nl.Bytes](RTA_GATEWAY,
		nl.Bytes(addr))
}

// RtaOif returns an RTA_OIF attribute.
func RtaOif(index uint32) nl.Attr[RtaKind, nl.Uint32, *nl.Uint32] {
	return nl.NewAttr[RtaKind, nl.Uint32, *nl.Uint32](RTA_OIF,
		nl.Uint32(index))
}

// RtaTable returns an RTA_TABLE attribute; it carries table identifiers
// beyond the reserved ones of RtMsg.
func RtaTable(table uint32) nl.Attr[RtaKind, nl.Uint32, *nl.Uint32] {
	return nl.NewAttr[RtaKind, nl.Uint32, *nl.Uint32](RTA_TABLE,
		nl.Uint32(table))
}

// Rta indexes the attributes that follow an RtMsg by kind.
type Rta [N_RTA][]byte

func (rta *Rta) Write(b []byte) (int, error) {
	if err := nl.IndexAttrs(rta[:], b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (rta *Rta) Dst() []byte { return rta[RTA_DST] }

func (rta *Rta) Src() []byte { return rta[RTA_SRC] }

func (rta *Rta) Gateway() []byte { return rta[RTA_GATEWAY] }

func (rta *Rta) Prefsrc() []byte { return rta[RTA_PREFSRC] }

func (rta *Rta) u32(kind RtaKind) (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("rta", kind.String(), rta[kind], &v)
	return uint32(v), err
}

func (rta *Rta) Iif() (uint32, error) { return rta.u32(RTA_IIF) }
func (rta *Rta) Oif() (uint32, error) { return rta.u32(RTA_OIF) }
func (rta *Rta) Priority() (uint32, error) { return rta.u32(RTA_PRIORITY) }
func (rta *Rta) Table() (uint32, error) { return rta.u32(RTA_TABLE) }

func (rta *Rta) CacheInfo() (RtaCacheInfo, error) {
	var ci RtaCacheInfo
	err := decodeAttr("rta", "cacheinfo", rta[RTA_CACHEINFO], &ci)
	return ci, err
}
