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

const SizeofNdMsg = 1 + 4 + 2 + 1 + 1

// NdMsg heads the neighbor messages.
type NdMsg struct {
	Family Family
	Index  int32
	State  nl.Flags[NeighborState]
	Flags  nl.Flags[NeighborFlag]
	Type   RouteType
}

func (NdMsg) Size() int { return SizeofNdMsg }

func (msg NdMsg) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "ndmsg", []nl.Field{
		{Name: "family", Encoder: msg.Family},
		{Name: "index", Encoder: nl.Int32(msg.Index)},
		{Name: "state", Encoder: msg.State},
		{Name: "flags", Encoder: msg.Flags},
		{Name: "type", Encoder: msg.Type},
	}...)
}

func (msg *NdMsg) Write(b []byte) (int, error) {
	return msg.Decode(b, nl.DropUnknown)
}

func (msg *NdMsg) Decode(b []byte, policy nl.Policy) (int, error) {
	var t NdMsg
	n, err := nl.DecodeFields(b, "ndmsg", []nl.Slot{
		{Name: "family", Decoder: &t.Family},
		{Name: "index", Decoder: (*nl.Int32)(&t.Index)},
		{Name: "state", Decoder: t.State.Decoder(policy)},
		{Name: "flags", Decoder: t.Flags.Decoder(policy)},
		{Name: "type", Decoder: &t.Type},
	}...)
	if err != nil {
		return 0, err
	}
	*msg = t
	return n, nil
}

func (msg NdMsg) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "family:", msg.Family)
	fmt.Fprintln(acc, "index:", msg.Index)
	fmt.Fprintln(acc, "state:", msg.State)
	fmt.Fprintln(acc, "flags:", msg.Flags)
	fmt.Fprintln(acc, "type:", msg.Type)
	return acc.Tuple()
}

func (msg NdMsg) String() string { return dump(msg) }

const SizeofNdaCacheInfo = 4 * 4

// NdaCacheInfo is the NDA_CACHEINFO payload; times are in clock ticks.
type NdaCacheInfo struct {
	Confirmed uint32
	Used      uint32
	Updated   uint32
	RefCnt    uint32
}

func (NdaCacheInfo) Size() int { return SizeofNdaCacheInfo }

func (ci NdaCacheInfo) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "nda_cacheinfo", []nl.Field{
		{Name: "confirmed", Encoder: nl.Uint32(ci.Confirmed)},
		{Name: "used", Encoder: nl.Uint32(ci.Used)},
		{Name: "updated", Encoder: nl.Uint32(ci.Updated)},
		{Name: "refcnt", Encoder: nl.Uint32(ci.RefCnt)},
	}...)
}

func (ci *NdaCacheInfo) Write(b []byte) (int, error) {
	var t NdaCacheInfo
	n, err := nl.DecodeFields(b, "nda_cacheinfo", []nl.Slot{
		{Name: "confirmed", Decoder: (*nl.Uint32)(&t.Confirmed)},
		{Name: "used", Decoder: (*nl.Uint32)(&t.Used)},
		{Name: "updated", Decoder: (*nl.Uint32)(&t.Updated)},
		{Name: "refcnt", Decoder: (*nl.Uint32)(&t.RefCnt)},
	}...)
	if err != nil {
		return 0, err
	}
	*ci = t
	return n, nil
}

func (ci NdaCacheInfo) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "confirmed:", ci.Confirmed)
	fmt.Fprintln(acc, "used:", ci.Used)
	fmt.Fprintln(acc, "updated:", ci.Updated)
	fmt.Fprintln(acc, "refcnt:", ci.RefCnt)
	return acc.Tuple()
}

func (ci NdaCacheInfo) String() string {
	return fmt.Sprintf("confirmed %d used %d updated %d refcnt %d",
		ci.Confirmed, ci.Used, ci.Updated, ci.RefCnt)
}

// NdaKind is the type of a neighbor attribute.
type NdaKind uint16

const (
	NDA_UNSPEC NdaKind = iota
	NDA_DST
	NDA_LLADDR
	NDA_CACHEINFO
	NDA_PROBES
	NDA_VLAN
	NDA_PORT
	NDA_VNI
	NDA_IFINDEX
	NDA_MASTER
	NDA_LINK_NETNSID
	NDA_SRC_VNI
	NDA_PROTOCOL
	N_NDA
)

const NDA_MAX = N_NDA - 1

var NdaKindName = map[NdaKind]string{
	NDA_UNSPEC:       "unspec",
	NDA_DST:          "dst",
	NDA_LLADDR:       "lladdr",
	NDA_CACHEINFO:    "cacheinfo",
	NDA_PROBES:       "probes",
	NDA_VLAN:         "vlan",
	NDA_PORT:         "port",
	NDA_VNI:          "vni",
	NDA_IFINDEX:      "ifindex",
	NDA_MASTER:       "master",
	NDA_LINK_NETNSID: "link-netnsid",
	NDA_SRC_VNI:      "src-vni",
	NDA_PROTOCOL:     "protocol",
}

func (k NdaKind) Known() bool { return k < N_NDA }

func (k NdaKind) String() string { return nl.Name(NdaKindName, k) }

// NdaDst returns an NDA_DST attribute.
func NdaDst(addr []byte) nl.Attr[NdaKind, nl.Bytes, *nl.Bytes] {
	return nl.NewAttr[NdaKind, nl.Bytes, *nl.Bytes](NDA_DST, nl.Bytes(addr))
}

// NdaLladdr returns an NDA_LLADDR attribute.
func NdaLladdr(addr []byte) nl.Attr[NdaKind, nl.Bytes, *nl.Bytes] {
	return nl.NewAttr[NdaKind, nl.Bytes, *nl.Bytes](NDA_LLADDR,
		nl.Bytes(addr))
}

// NdaCache returns an NDA_CACHEINFO attribute.
func NdaCache(ci NdaCacheInfo) nl.Attr[NdaKind, NdaCacheInfo, *NdaCacheInfo] {
	return nl.NewAttr[NdaKind, NdaCacheInfo, *NdaCacheInfo](NDA_CACHEINFO,
		ci)
}

// Nda indexes the attributes that follow an NdMsg by kind.
type Nda [N_NDA][]byte

func (nda *Nda) Write(b []byte) (int, error) {
	if err := nl.IndexAttrs(nda[:], b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (nda *Nda) Dst() []byte { return nda[NDA_DST] }

func (nda *Nda) Lladdr() []byte { return nda[NDA_LLADDR] }

func (nda *Nda) CacheInfo() (NdaCacheInfo, error) {
	var ci NdaCacheInfo
	err := decodeAttr("nda", "cacheinfo", nda[NDA_CACHEINFO], &ci)
	return ci, err
}

func (nda *Nda) Probes() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("nda", "probes", nda[NDA_PROBES], &v)
	return uint32(v), err
}

func (nda *Nda) Vlan() (uint16, error) {
	var v nl.Uint16
	err := decodeAttr("nda", "vlan", nda[NDA_VLAN], &v)
	return uint16(v), err
}

func (nda *Nda) Ifindex() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("nda", "ifindex", nda[NDA_IFINDEX], &v)
	return uint32(v), err
}

func (nda *Nda) Master() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("nda", "master", nda[NDA_MASTER], &v)
	return uint32(v), err
}
