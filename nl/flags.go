// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"fmt"
	"slices"
	"strings"
)

// Flag is an enumeration whose every member has exactly one bit set.
// Known reports whether a single bit value is a member.
type Flag interface {
	~uint8 | ~uint16 | ~uint32
	Known() bool
	String() string
}

// Policy selects what Unpack does with a set bit that isn't a member.
type Policy uint8

const (
	DropUnknown Policy = iota
	RejectUnknown
)

// Flags is a set of single bit members packed into one unsigned field as
// wide as F.
type Flags[F Flag] []F

// NewFlags returns the members in ascending bit order without duplicates,
// the order Unpack yields them in.
func NewFlags[F Flag](members ...F) Flags[F] {
	if len(members) == 0 {
		return nil
	}
	flags := slices.Clone(members)
	slices.Sort(flags)
	return slices.Compact(flags)
}

// Pack returns the bitwise OR of all members; an empty set packs to zero.
func (flags Flags[F]) Pack() F {
	var v F
	for _, f := range flags {
		v |= f
	}
	return v
}

// Has reports whether every bit of f is in the set.
func (flags Flags[F]) Has(f F) bool {
	return flags.Pack()&f == f
}

// Unpack returns, in ascending bit order, the members for the set bits of
// raw. Unknown bits are omitted with DropUnknown and fail the unpack with
// RejectUnknown.
func Unpack[F Flag](raw F, policy Policy) (Flags[F], error) {
	var flags Flags[F]
	for bit := F(1); bit != 0; bit <<= 1 {
		if raw&bit == 0 {
			continue
		}
		if !bit.Known() {
			if policy == RejectUnknown {
				return nil, fmt.Errorf("%w: bit %#x", ErrUnknown,
					uint64(bit))
			}
			continue
		}
		flags = append(flags, bit)
	}
	return flags, nil
}

func (flags Flags[F]) Size() int { return Width[F]() / 8 }

func (flags Flags[F]) Read(b []byte) (int, error) {
	return PutUnsigned(b, flags.Pack())
}

// Write decodes with DropUnknown.
func (flags *Flags[F]) Write(b []byte) (int, error) {
	return flags.Decoder(DropUnknown).Write(b)
}

// Decoder returns a decoder of flags that applies policy to unknown bits.
func (flags *Flags[F]) Decoder(policy Policy) Decoder {
	return flagsDecoder[F]{flags, policy}
}

type flagsDecoder[F Flag] struct {
	flags  *Flags[F]
	policy Policy
}

func (d flagsDecoder[F]) Write(b []byte) (int, error) {
	raw, n, err := GetUnsigned[F](b)
	if err != nil {
		return 0, err
	}
	flags, err := Unpack(raw, d.policy)
	if err != nil {
		return 0, err
	}
	*d.flags = flags
	return n, nil
}

func (flags Flags[F]) String() string {
	if len(flags) == 0 {
		return "none"
	}
	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// ParseFlags converts a comma separated list of names to a set.
func ParseFlags[F Flag](s string, byName map[string]F) (Flags[F], error) {
	var flags Flags[F]
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if len(name) == 0 || name == "none" {
			continue
		}
		f, found := byName[strings.ToLower(name)]
		if !found {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknown)
		}
		flags = append(flags, f)
	}
	return NewFlags(flags...), nil
}
