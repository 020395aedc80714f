// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFields(t *testing.T) {
	fields := []Field{
		{Name: "a", Encoder: Uint8(1)},
		{Name: "b", Encoder: Uint16(2)},
		{Name: "c", Encoder: Uint32(3)},
	}
	b := make([]byte, 7)
	n, err := EncodeFields(b, "rec", fields...)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Equal(t, cat([]byte{1}, u16(2), u32(3)), b)

	_, err = EncodeFields(make([]byte, 5), "rec", fields...)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "encode", e.Op)
	assert.Equal(t, "rec", e.Record)
	assert.Equal(t, "c", e.Field)
	assert.Equal(t, 3, e.Offset)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, "rec.c: encode at offset 3: "+ErrOverflow.Error(),
		err.Error())
}

func TestDecodeFields(t *testing.T) {
	var (
		a Uint8
		b Uint16
	)
	n, err := DecodeFields(cat([]byte{9}, u16(0x102)), "rec",
		Slot{Name: "a", Decoder: &a},
		Slot{Name: "b", Decoder: &b},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, Uint8(9), a)
	assert.Equal(t, Uint16(0x102), b)

	_, err = DecodeFields([]byte{9, 1}, "rec",
		Slot{Name: "a", Decoder: &a},
		Slot{Name: "b", Decoder: &b},
	)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "b", e.Field)
	assert.Equal(t, 1, e.Offset)
	assert.ErrorIs(t, err, ErrTruncated)
}

type pair struct{ X, Y Uint16 }

func (pair) Size() int { return 4 }

func (p pair) Read(b []byte) (int, error) {
	return EncodeFields(b, "pair",
		Field{Name: "x", Encoder: p.X},
		Field{Name: "y", Encoder: p.Y},
	)
}

func TestNestedFieldOffset(t *testing.T) {
	_, err := EncodeFields(make([]byte, 4), "outer",
		Field{Name: "tag", Encoder: Uint8(1)},
		Field{Name: "inner", Encoder: pair{1, 2}},
	)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "outer", e.Record)
	assert.Equal(t, "inner.pair.y", e.Field)
	assert.Equal(t, 3, e.Offset)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestSizeOf(t *testing.T) {
	assert.Equal(t, 11, SizeOf(Uint8(0), Uint16(0), Uint32(0), Kstring("abc")))
}
