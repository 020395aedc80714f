// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnlcodec

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/platinasystems/rtnl/nl"
	"github.com/platinasystems/rtnl/nl/rtnl"
)

type record interface {
	nl.Encoder
	nl.Decoder
	io.WriterTo
}

type setter func(value string) error

type kind struct {
	name   string
	new    func() record
	attr   func(t uint16) string
	fields func(r record) map[string]setter
	// values completes the named values of a field
	values map[string]func(prefix string) []string
}

var kinds = []kind{
	{
		name: "ifinfo",
		new: func() record {
			msg := rtnl.NewIfInfoMsg(rtnl.AF_UNSPEC, rtnl.ARPHRD_NETROM, 0)
			return &msg
		},
		attr: func(t uint16) string { return rtnl.IflaKind(t).String() },
		fields: func(r record) map[string]setter {
			msg := r.(*rtnl.IfInfoMsg)
			return map[string]setter{
				"family": enum(&msg.Family, rtnl.FamilyByName),
				"type":   enum(&msg.Type, rtnl.LinkTypeByName),
				"index":  signed(&msg.Index),
				"flags":  flagset(&msg.Flags, rtnl.IfFlagByName),
			}
		},
	},
	{
		name: "ifaddr",
		new:  func() record { return new(rtnl.IfAddrMsg) },
		attr: func(t uint16) string { return rtnl.IfaKind(t).String() },
		fields: func(r record) map[string]setter {
			msg := r.(*rtnl.IfAddrMsg)
			return map[string]setter{
				"family":    enum(&msg.Family, rtnl.FamilyByName),
				"prefixlen": number(&msg.PrefixLen, nil),
				"flags":     flagset(&msg.Flags, rtnl.IfAddrFlagByName),
				"scope": number(&msg.Scope,
					byteNames(rtnl.RouteScopeByName)),
				"index": signed(&msg.Index),
			}
		},
	},
	{
		name: "route",
		new:  func() record { return new(rtnl.RtMsg) },
		attr: func(t uint16) string { return rtnl.RtaKind(t).String() },
		fields: func(r record) map[string]setter {
			msg := r.(*rtnl.RtMsg)
			return map[string]setter{
				"family": number(&msg.Family,
					byteNames(rtnl.FamilyByName)),
				"dst_len":  number(&msg.DstLen, nil),
				"src_len":  number(&msg.SrcLen, nil),
				"tos":      number(&msg.Tos, nil),
				"table":    enum(&msg.Table, rtnl.RouteTableByName),
				"protocol": enum(&msg.Protocol, rtnl.RouteProtocolByName),
				"scope":    enum(&msg.Scope, rtnl.RouteScopeByName),
				"type":     enum(&msg.Type, rtnl.RouteTypeByName),
				"flags":    flagset(&msg.Flags, rtnl.RouteFlagByName),
			}
		},
		values: map[string]func(string) []string{
			"type": rtnl.CompleteRouteType,
		},
	},
	{
		name: "neigh",
		new:  func() record { return new(rtnl.NdMsg) },
		attr: func(t uint16) string { return rtnl.NdaKind(t).String() },
		fields: func(r record) map[string]setter {
			msg := r.(*rtnl.NdMsg)
			return map[string]setter{
				"family": enum(&msg.Family, rtnl.FamilyByName),
				"index":  signed(&msg.Index),
				"state": flagset(&msg.State,
					rtnl.NeighborStateByName),
				"flags": flagset(&msg.Flags,
					rtnl.NeighborFlagByName),
				"type": enum(&msg.Type, rtnl.RouteTypeByName),
			}
		},
		values: map[string]func(string) []string{
			"type": rtnl.CompleteRouteType,
		},
	},
	{
		name: "ndacache",
		new:  func() record { return new(rtnl.NdaCacheInfo) },
		fields: func(r record) map[string]setter {
			ci := r.(*rtnl.NdaCacheInfo)
			return map[string]setter{
				"confirmed": number(&ci.Confirmed, nil),
				"used":      number(&ci.Used, nil),
				"updated":   number(&ci.Updated, nil),
				"refcnt":    number(&ci.RefCnt, nil),
			}
		},
	},
	{
		name: "ifacache",
		new:  func() record { return new(rtnl.IfaCacheInfo) },
		fields: func(r record) map[string]setter {
			ci := r.(*rtnl.IfaCacheInfo)
			return map[string]setter{
				"prefered": number(&ci.Prefered, nil),
				"valid":    number(&ci.Valid, nil),
				"created":  number(&ci.Created, nil),
				"updated":  number(&ci.Updated, nil),
			}
		},
	},
	{
		name: "rtacache",
		new:  func() record { return new(rtnl.RtaCacheInfo) },
		fields: func(r record) map[string]setter {
			ci := r.(*rtnl.RtaCacheInfo)
			return map[string]setter{
				"clntref": number(&ci.ClntRef, nil),
				"lastuse": number(&ci.LastUse, nil),
				"expires": number(&ci.Expires, nil),
				"error":   number(&ci.Error, nil),
				"used":    number(&ci.Used, nil),
			}
		},
	},
}

func kindByName(name string) (*kind, error) {
	for i := range kinds {
		if kinds[i].name == name {
			return &kinds[i], nil
		}
	}
	return nil, fmt.Errorf("%s: unknown kind", name)
}

// fieldNames lists the settable fields of r in sorted order.
func (k *kind) fieldNames(r record) []string {
	fields := k.fields(r)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (k *kind) set(r record, name, value string) error {
	set, found := k.fields(r)[name]
	if !found {
		return fmt.Errorf("%s: %s: unknown field", k.name, name)
	}
	if err := set(value); err != nil {
		return fmt.Errorf("%s: %s: %w", k.name, name, err)
	}
	return nil
}

func parseUnsigned[U nl.Unsigned](s string, byName map[string]U) (U, error) {
	if v, found := byName[strings.ToLower(s)]; found {
		return v, nil
	}
	u, err := strconv.ParseUint(s, 0, nl.Width[U]())
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, nl.ErrUnknown)
	}
	return U(u), nil
}

func number[U nl.Unsigned](p *U, byName map[string]U) setter {
	return func(s string) error {
		v, err := parseUnsigned(s, byName)
		if err != nil {
			return err
		}
		*p = v
		return nil
	}
}

// enum only accepts members.
func enum[E nl.Enum](p *E, byName map[string]E) setter {
	return func(s string) error {
		v, err := parseUnsigned(s, byName)
		if err != nil {
			return err
		}
		if !v.Known() {
			return fmt.Errorf("%q: %w", s, nl.ErrUnknown)
		}
		*p = v
		return nil
	}
}

func signed(p *int32) setter {
	return func(s string) error {
		i, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return err
		}
		*p = int32(i)
		return nil
	}
}

func flagset[F nl.Flag](p *nl.Flags[F], byName map[string]F) setter {
	return func(s string) error {
		flags, err := nl.ParseFlags(s, byName)
		if err != nil {
			return err
		}
		*p = flags
		return nil
	}
}

func byteNames[E ~uint8](byName map[string]E) map[string]uint8 {
	m := make(map[string]uint8, len(byName))
	for s, v := range byName {
		m[s] = uint8(v)
	}
	return m
}
