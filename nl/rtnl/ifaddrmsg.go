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

const SizeofIfAddrMsg = 1 + 1 + 1 + 1 + 4

// IfAddrMsg heads the address messages.
type IfAddrMsg struct {
	Family    Family
	PrefixLen uint8
	Flags     nl.Flags[IfAddrFlag]
	Scope     uint8
	Index     int32
}

func (IfAddrMsg) Size() int { return SizeofIfAddrMsg }

func (msg IfAddrMsg) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "ifaddrmsg", []nl.Field{
		{Name: "family", Encoder: msg.Family},
		{Name: "prefixlen", Encoder: nl.Uint8(msg.PrefixLen)},
		{Name: "flags", Encoder: msg.Flags},
		{Name: "scope", Encoder: nl.Uint8(msg.Scope)},
		{Name: "index", Encoder: nl.Int32(msg.Index)},
	}...)
}

func (msg *IfAddrMsg) Write(b []byte) (int, error) {
	return msg.Decode(b, nl.DropUnknown)
}

func (msg *IfAddrMsg) Decode(b []byte, policy nl.Policy) (int, error) {
	var t IfAddrMsg
	n, err := nl.DecodeFields(b, "ifaddrmsg", []nl.Slot{
		{Name: "family", Decoder: &t.Family},
		{Name: "prefixlen", Decoder: (*nl.Uint8)(&t.PrefixLen)},
		{Name: "flags", Decoder: t.Flags.Decoder(policy)},
		{Name: "scope", Decoder: (*nl.Uint8)(&t.Scope)},
		{Name: "index", Decoder: (*nl.Int32)(&t.Index)},
	}...)
	if err != nil {
		return 0, err
	}
	*msg = t
	return n, nil
}

func (msg IfAddrMsg) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "family:", msg.Family)
	fmt.Fprintln(acc, "prefixlen:", msg.PrefixLen)
	fmt.Fprintln(acc, "flags:", msg.Flags)
	fmt.Fprintln(acc, "scope:", RouteScope(msg.Scope))
	fmt.Fprintln(acc, "index:", msg.Index)
	return acc.Tuple()
}

func (msg IfAddrMsg) String() string { return dump(msg) }

const SizeofIfaCacheInfo = 4 * 4

// IfaCacheInfo is the IFA_CACHEINFO payload. Lifetimes are in seconds and
// time stamps in hundredths of a second since boot.
type IfaCacheInfo struct {
	Prefered uint32
	Valid    uint32
	Created  uint32
	Updated  uint32
}

func (IfaCacheInfo) Size() int { return SizeofIfaCacheInfo }

func (ci IfaCacheInfo) Read(b []byte) (int, error) {
	return nl.EncodeFields(b, "ifa_cacheinfo", []nl.Field{
		{Name: "prefered", Encoder: nl.Uint32(ci.Prefered)},
		{Name: "valid", Encoder: nl.Uint32(ci.Valid)},
		{Name: "cstamp", Encoder: nl.Uint32(ci.Created)},
		{Name: "tstamp", Encoder: nl.Uint32(ci.Updated)},
	}...)
}

func (ci *IfaCacheInfo) Write(b []byte) (int, error) {
	var t IfaCacheInfo
	n, err := nl.DecodeFields(b, "ifa_cacheinfo", []nl.Slot{
		{Name: "prefered", Decoder: (*nl.Uint32)(&t.Prefered)},
		{Name: "valid", Decoder: (*nl.Uint32)(&t.Valid)},
		{Name: "cstamp", Decoder: (*nl.Uint32)(&t.Created)},
		{Name: "tstamp", Decoder: (*nl.Uint32)(&t.Updated)},
	}...)
	if err != nil {
		return 0, err
	}
	*ci = t
	return n, nil
}

func (ci IfaCacheInfo) WriteTo(w io.Writer) (int64, error) {
	acc := accumulate.New(w)
	fmt.Fprintln(acc, "prefered:", ci.Prefered)
	fmt.Fprintln(acc, "valid:", ci.Valid)
	fmt.Fprintln(acc, "created:", ci.Created)
	fmt.Fprintln(acc, "updated:", ci.Updated)
	return acc.Tuple()
}

func (ci IfaCacheInfo) String() string {
	return fmt.Sprintf("prefered %d valid %d created %d updated %d",
		ci.Prefered, ci.Valid, ci.Created, ci.Updated)
}

// IfaKind is the type of an address attribute.
type IfaKind uint16

const (
	IFA_UNSPEC IfaKind = iota
	IFA_ADDRESS
	IFA_LOCAL
	IFA_LABEL
	IFA_BROADCAST
	IFA_ANYCAST
	IFA_CACHEINFO
	IFA_MULTICAST
	IFA_FLAGS
	IFA_RT_PRIORITY
	IFA_TARGET_NETNSID
	N_IFA
)

const IFA_MAX = N_IFA - 1

var IfaKindName = map[IfaKind]string{
	IFA_UNSPEC:         "unspec",
	IFA_ADDRESS:        "address",
	IFA_LOCAL:          "local",
	IFA_LABEL:          "label",
	IFA_BROADCAST:      "broadcast",
	IFA_ANYCAST:        "anycast",
	IFA_CACHEINFO:      "cacheinfo",
	IFA_MULTICAST:      "multicast",
	IFA_FLAGS:          "flags",
	IFA_RT_PRIORITY:    "rt-priority",
	IFA_TARGET_NETNSID: "target-netnsid",
}

func (k IfaKind) Known() bool { return k < N_IFA }

func (k IfaKind) String() string { return nl.Name(IfaKindName, k) }

// IfaAddress returns an IFA_ADDRESS attribute.
func IfaAddress(addr []byte) nl.Attr[IfaKind, nl.Bytes, *nl.Bytes] {
	return nl.NewAttr[IfaKind, nl.Bytes, *nl.Bytes](IFA_ADDRESS,
		nl.Bytes(addr))
}

// IfaLabel returns an IFA_LABEL attribute.
func IfaLabel(label string) nl.Attr[IfaKind, nl.Kstring, *nl.Kstring] {
	return nl.NewAttr[IfaKind, nl.Kstring, *nl.Kstring](IFA_LABEL,
		nl.Kstring(label))
}

// IfaCache returns an IFA_CACHEINFO attribute.
func IfaCache(ci IfaCacheInfo) nl.Attr[IfaKind, IfaCacheInfo, *IfaCacheInfo] {
	return nl.NewAttr[IfaKind, IfaCacheInfo, *IfaCacheInfo](IFA_CACHEINFO,
		ci)
}

// Ifa indexes the attributes that follow an IfAddrMsg by kind.
type Ifa [N_IFA][]byte

func (ifa *Ifa) Write(b []byte) (int, error) {
	if err := nl.IndexAttrs(ifa[:], b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (ifa *Ifa) Address() []byte { return ifa[IFA_ADDRESS] }

func (ifa *Ifa) Local() []byte { return ifa[IFA_LOCAL] }

func (ifa *Ifa) Broadcast() []byte { return ifa[IFA_BROADCAST] }

func (ifa *Ifa) Label() (string, error) {
	var s nl.Kstring
	err := decodeAttr("ifa", "label", ifa[IFA_LABEL], &s)
	return string(s), err
}

func (ifa *Ifa) CacheInfo() (IfaCacheInfo, error) {
	var ci IfaCacheInfo
	err := decodeAttr("ifa", "cacheinfo", ifa[IFA_CACHEINFO], &ci)
	return ci, err
}

// Flags returns the full width address flags of IFA_FLAGS.
func (ifa *Ifa) Flags() (uint32, error) {
	var v nl.Uint32
	err := decodeAttr("ifa", "flags", ifa[IFA_FLAGS], &v)
	return uint32(v), err
}
