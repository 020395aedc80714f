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

func TestWidth(t *testing.T) {
	assert.Equal(t, 8, Width[uint8]())
	assert.Equal(t, 16, Width[uint16]())
	assert.Equal(t, 32, Width[Uint32]())
	assert.Equal(t, 64, Width[uint64]())
	assert.Equal(t, 8, Width[testFlag]())
}

func TestScalars(t *testing.T) {
	for _, tc := range []struct {
		name string
		v    Encoder
		want []byte
	}{
		{"uint8", Uint8(0xfe), []byte{0xfe}},
		{"uint16", Uint16(0x1234), u16(0x1234)},
		{"uint32", Uint32(0xdeadbeef), u32(0xdeadbeef)},
		{"int32", Int32(-1), []byte{0xff, 0xff, 0xff, 0xff}},
		{"bytes", Bytes{1, 2, 3}, []byte{1, 2, 3}},
		{"kstring", Kstring("eth0"), []byte("eth0\x00")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Marshal(tc.v)
			require.NoError(t, err)
			assert.Equal(t, tc.want, b)
			assert.Equal(t, tc.v.Size(), len(b))
		})
	}
}

func TestScalarOverflow(t *testing.T) {
	for _, v := range []Encoder{
		Uint16(1), Uint32(1), Uint64(1), Int32(1), Bytes{1}, Kstring(""),
	} {
		_, err := v.Read(make([]byte, v.Size()-1))
		assert.True(t, errors.Is(err, ErrOverflow), "%T", v)
	}
}

func TestScalarDecode(t *testing.T) {
	var v32 Uint32
	require.NoError(t, Unmarshal(cat(u32(7), []byte{9}), &v32))
	assert.Equal(t, Uint32(7), v32)

	var i32 Int32
	require.NoError(t, Unmarshal(u32(0xfffffffe), &i32))
	assert.Equal(t, Int32(-2), i32)

	var v16 Uint16
	assert.ErrorIs(t, Unmarshal([]byte{1}, &v16), ErrTruncated)

	var s Kstring
	n, err := s.Write([]byte("lo\x00xx"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, Kstring("lo"), s)

	var raw Bytes
	n, err = raw.Write([]byte{4, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, Bytes{4, 5}, raw)
}

type testEnum uint16

func (e testEnum) Known() bool { return e < 3 }

func TestEnum(t *testing.T) {
	b := make([]byte, 2)
	n, err := EncodeEnum(b, testEnum(9))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	e := testEnum(1)
	_, err = DecodeEnum(b, &e)
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, testEnum(1), e, "unknown value must not be stored")

	_, err = EncodeEnum(b, testEnum(2))
	require.NoError(t, err)
	_, err = DecodeEnum(b, &e)
	require.NoError(t, err)
	assert.Equal(t, testEnum(2), e)
}

func TestName(t *testing.T) {
	assert.Equal(t, "b", flagB.String())
	assert.Equal(t, "64", testFlag(0x40).String())
	assert.Equal(t, map[string]testFlag{
		"a": flagA, "b": flagB, "c": flagC, "h": flagH,
	}, ByName(testFlagName))
}
