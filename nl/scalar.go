// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import "github.com/mdlayher/netlink/nlenc"

// Unsigned is any fixed width unsigned integer the kernel puts on the wire.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in T.
func Width[T Unsigned]() int {
	var n int
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}

// PutUnsigned encodes v in host byte order.
func PutUnsigned[T Unsigned](b []byte, v T) (int, error) {
	n := Width[T]() / 8
	if len(b) < n {
		return 0, ErrOverflow
	}
	switch n {
	case 1:
		nlenc.PutUint8(b[:1], uint8(v))
	case 2:
		nlenc.PutUint16(b[:2], uint16(v))
	case 4:
		nlenc.PutUint32(b[:4], uint32(v))
	default:
		nlenc.PutUint64(b[:8], uint64(v))
	}
	return n, nil
}

// GetUnsigned decodes a host byte order T from the head of b.
func GetUnsigned[T Unsigned](b []byte) (T, int, error) {
	n := Width[T]() / 8
	if len(b) < n {
		return 0, 0, ErrTruncated
	}
	switch n {
	case 1:
		return T(nlenc.Uint8(b[:1])), 1, nil
	case 2:
		return T(nlenc.Uint16(b[:2])), 2, nil
	case 4:
		return T(nlenc.Uint32(b[:4])), 4, nil
	}
	return T(nlenc.Uint64(b[:8])), 8, nil
}

type Uint8 uint8
type Uint16 uint16
type Uint32 uint32
type Uint64 uint64
type Int32 int32

func (Uint8) Size() int  { return 1 }
func (Uint16) Size() int { return 2 }
func (Uint32) Size() int { return 4 }
func (Uint64) Size() int { return 8 }
func (Int32) Size() int  { return 4 }

func (v Uint8) Read(b []byte) (int, error)  { return PutUnsigned(b, v) }
func (v Uint16) Read(b []byte) (int, error) { return PutUnsigned(b, v) }
func (v Uint32) Read(b []byte) (int, error) { return PutUnsigned(b, v) }
func (v Uint64) Read(b []byte) (int, error) { return PutUnsigned(b, v) }

func (v Int32) Read(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, ErrOverflow
	}
	nlenc.PutInt32(b[:4], int32(v))
	return 4, nil
}

func (v *Uint8) Write(b []byte) (n int, err error) {
	*v, n, err = GetUnsigned[Uint8](b)
	return
}

func (v *Uint16) Write(b []byte) (n int, err error) {
	*v, n, err = GetUnsigned[Uint16](b)
	return
}

func (v *Uint32) Write(b []byte) (n int, err error) {
	*v, n, err = GetUnsigned[Uint32](b)
	return
}

func (v *Uint64) Write(b []byte) (n int, err error) {
	*v, n, err = GetUnsigned[Uint64](b)
	return
}

func (v *Int32) Write(b []byte) (int, error) {
	if len(b) < 4 {
		return 0, ErrTruncated
	}
	*v = Int32(nlenc.Int32(b[:4]))
	return 4, nil
}

// Bytes is an opaque payload; it decodes everything it is given.
type Bytes []byte

func (v Bytes) Size() int { return len(v) }

func (v Bytes) Read(b []byte) (int, error) {
	if len(b) < len(v) {
		return 0, ErrOverflow
	}
	return copy(b, v), nil
}

func (v *Bytes) Write(b []byte) (int, error) {
	*v = append((*v)[:0], b...)
	return len(b), nil
}

// Kstring is a NUL terminated kernel string.
type Kstring string

func (v Kstring) Size() int { return len(v) + 1 }

func (v Kstring) Read(b []byte) (int, error) {
	if len(b) < len(v)+1 {
		return 0, ErrOverflow
	}
	copy(b, v)
	b[len(v)] = 0
	return len(v) + 1, nil
}

// Write consumes through the first NUL, or all of b if there is none.
func (v *Kstring) Write(b []byte) (int, error) {
	for i, c := range b {
		if c == 0 {
			*v = Kstring(b[:i])
			return i + 1, nil
		}
	}
	*v = Kstring(b)
	return len(b), nil
}
