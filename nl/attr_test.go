// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mtuAttr = Attr[testKind, Uint32, *Uint32]
type nameAttr = Attr[testKind, Kstring, *Kstring]

func TestAttrEncode(t *testing.T) {
	a := NewAttr[testKind, Uint32, *Uint32](kindMtu, 1500)
	assert.Equal(t, uint16(8), a.Len)
	assert.Equal(t, 8, a.Size())
	assert.Equal(t, uint16(kindMtu), a.Kind())

	b, err := Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, cat(u16(8), u16(uint16(kindMtu)), u32(1500)), b)
}

func TestAttrLengthComputed(t *testing.T) {
	a := mtuAttr{Len: 99, Type: kindMtu, Payload: 1}
	assert.Equal(t, 8, a.Size())
	b, err := Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, u16(8), b[:2])
}

func TestAttrTooLarge(t *testing.T) {
	a := NewAttr[testKind, Bytes, *Bytes](kindName,
		make(Bytes, math.MaxUint16))
	assert.Zero(t, a.Len)
	_, err := Marshal(a)
	assert.ErrorIs(t, err, ErrLength)

	a = NewAttr[testKind, Bytes, *Bytes](kindName,
		make(Bytes, math.MaxUint16-SizeofAttrHdr))
	assert.Equal(t, uint16(math.MaxUint16), a.Len)
}

func TestAttrUnpadded(t *testing.T) {
	a := NewAttr[testKind, Kstring, *Kstring](kindName, "eth0")
	b, err := Marshal(a)
	require.NoError(t, err)
	assert.Len(t, b, 9)
	assert.Equal(t, cat(u16(9), u16(uint16(kindName)), []byte("eth0\x00")),
		b)
}

func TestAttrOverflow(t *testing.T) {
	a := NewAttr[testKind, Uint32, *Uint32](kindMtu, 1)
	_, err := a.Read(make([]byte, 6))
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "payload", e.Field)
	assert.Equal(t, 4, e.Offset)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestAttrDecode(t *testing.T) {
	var a mtuAttr
	n, err := a.Write(cat(u16(8), u16(uint16(kindMtu)), u32(9000), u32(0)))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, mtuAttr{Len: 8, Type: kindMtu, Payload: 9000}, a)
}

func TestAttrDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		b     []byte
		field string
		want  error
	}{
		{"short header", []byte{8, 0}, "type", ErrTruncated},
		{"short length", cat(u16(3), u16(uint16(kindMtu))), "len",
			ErrLength},
		{"long length", cat(u16(12), u16(uint16(kindMtu)), u32(1)),
			"len", ErrTruncated},
		{"unknown type", cat(u16(8), u16(7), u32(1)), "type",
			ErrUnknown},
		{"short payload", cat(u16(6), u16(uint16(kindMtu)), u16(1)),
			"payload", ErrTruncated},
		{"long payload", cat(u16(10), u16(uint16(kindMtu)), u32(1),
			u16(0)), "payload", ErrLength},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := mtuAttr{Len: 1, Type: kindName, Payload: 2}
			saved := a
			_, err := a.Write(tc.b)
			var e *Error
			require.True(t, errors.As(err, &e), "%v", err)
			assert.Equal(t, tc.field, e.Field)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, saved, a)
		})
	}
}

func TestAttrKstringRoundTrip(t *testing.T) {
	b, err := Marshal(NewAttr[testKind, Kstring, *Kstring](kindName, "br0"))
	require.NoError(t, err)
	var a nameAttr
	require.NoError(t, Unmarshal(b, &a))
	assert.Equal(t, Kstring("br0"), a.Payload)
	assert.Equal(t, uint16(8), a.Len)
	assert.Equal(t, "name: br0", a.String())
}
