// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package nl provides the serialization primitives shared by the rtnetlink
// records: fixed width scalars and enumerations in host byte order, single
// bit flag sets, and the type-length-value attribute envelope.
//
// Values encode themselves like an io.Reader, Read(b) fills b with the wire
// form, and decode like an io.Writer, Write(b) consumes the wire form.
package nl

// Encoder is implemented by every value with a wire form.
type Encoder interface {
	// Size is the number of bytes Read will fill.
	Size() int
	// Read encodes the value into b and returns the number of bytes
	// written or ErrOverflow if b is shorter than Size.
	Read(b []byte) (int, error)
}

// Decoder is implemented by pointers to values with a wire form.
type Decoder interface {
	// Write decodes the value from b and returns the number of bytes
	// consumed. It fails with ErrTruncated on short input and ErrUnknown
	// on an unrecognized enumeration value.
	Write(b []byte) (int, error)
}

// Codec is a pointer to a T that both encodes and decodes.
type Codec[T any] interface {
	*T
	Encoder
	Decoder
}

// Marshal returns the wire form of v.
func Marshal(v Encoder) ([]byte, error) {
	b := make([]byte, v.Size())
	n, err := v.Read(b)
	if err != nil {
		return nil, err
	}
	return b[:n], nil
}

// Unmarshal decodes v from the head of b; bytes beyond v's natural size are
// left unread.
func Unmarshal(b []byte, v Decoder) error {
	_, err := v.Write(b)
	return err
}
