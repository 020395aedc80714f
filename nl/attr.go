// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"fmt"
	"math"
)

// SizeofAttrHdr is the length and type prefix of every attribute.
const SizeofAttrHdr = 4

// Kind is a closed enumeration of the attribute types valid where an
// attribute is attached.
type Kind interface {
	~uint16
	Known() bool
	String() string
}

// Attr is a type-length-value attribute. Len is the length stored on the
// wire; it is filled by Write and recomputed by Read, so callers needn't
// set it.
type Attr[K Kind, T any, P Codec[T]] struct {
	Len     uint16
	Type    K
	Payload T
}

// NewAttr returns an attribute with Len consistent with its payload. Len is
// left zero for a payload too large to store, which Read then refuses.
func NewAttr[K Kind, T any, P Codec[T]](kind K, payload T) Attr[K, T, P] {
	a := Attr[K, T, P]{Type: kind, Payload: payload}
	if n := a.Size(); n <= math.MaxUint16 {
		a.Len = uint16(n)
	}
	return a
}

func (a Attr[K, T, P]) Kind() uint16 { return uint16(a.Type) }

func (a Attr[K, T, P]) Value() Encoder { return P(&a.Payload) }

// Size is the header plus the payload's natural size, without padding.
func (a Attr[K, T, P]) Size() int {
	return SizeofAttrHdr + P(&a.Payload).Size()
}

func (a Attr[K, T, P]) Read(b []byte) (int, error) {
	n := a.Size()
	if n > math.MaxUint16 {
		return 0, &Error{
			Op:     "encode",
			Record: "rtattr",
			Field:  "len",
			Err:    fmt.Errorf("%w: %d", ErrLength, n),
		}
	}
	return EncodeFields(b, "rtattr",
		Field{"len", Uint16(n)},
		Field{"type", Uint16(a.Type)},
		Field{"payload", P(&a.Payload)},
	)
}

// Write decodes an attribute whose payload must account for exactly the
// stored length.
func (a *Attr[K, T, P]) Write(b []byte) (int, error) {
	var (
		l    Uint16
		kind K
		t    T
	)
	if _, err := DecodeFields(b, "rtattr",
		Slot{"len", &l},
		Slot{"type", enumSlot[K]{&kind}},
	); err != nil {
		return 0, err
	}
	switch {
	case l < SizeofAttrHdr:
		return 0, &Error{
			Op:     "decode",
			Record: "rtattr",
			Field:  "len",
			Err:    fmt.Errorf("%w: %d", ErrLength, l),
		}
	case int(l) > len(b):
		return 0, &Error{
			Op:     "decode",
			Record: "rtattr",
			Field:  "len",
			Err: fmt.Errorf("%w: %d > %d", ErrTruncated, l,
				len(b)),
		}
	}
	want := int(l) - SizeofAttrHdr
	n, err := P(&t).Write(b[SizeofAttrHdr:l])
	if err != nil {
		return 0, relocate("decode", "rtattr", "payload",
			SizeofAttrHdr, err)
	}
	if n != want {
		return 0, &Error{
			Op:     "decode",
			Record: "rtattr",
			Field:  "payload",
			Offset: SizeofAttrHdr,
			Err: fmt.Errorf("%w: payload %d, stored %d", ErrLength,
				n, want),
		}
	}
	*a = Attr[K, T, P]{Len: uint16(l), Type: kind, Payload: t}
	return int(l), nil
}

func (a Attr[K, T, P]) String() string {
	return fmt.Sprint(a.Type, ": ", a.Payload)
}

type enumSlot[E Enum] struct{ p *E }

func (s enumSlot[E]) Write(b []byte) (int, error) { return DecodeEnum(b, s.p) }
