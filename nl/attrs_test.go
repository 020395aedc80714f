// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAttrs() Attrs {
	return Attrs{
		NewAttr[testKind, Uint32, *Uint32](kindMtu, 1500),
		NewAttr[testKind, Kstring, *Kstring](kindName, "eth0"),
	}
}

func TestAlign(t *testing.T) {
	assert.Equal(t, 0, NLATTR.Align(0))
	assert.Equal(t, 8, NLATTR.Align(5))
	assert.Equal(t, 12, NLATTR.Align(9))
	assert.Equal(t, 16, NLMSG.Align(15))
}

func TestAttrsPadded(t *testing.T) {
	attrs := testAttrs()
	assert.Equal(t, 8+12, attrs.Size())
	b, err := Marshal(attrs)
	require.NoError(t, err)
	assert.Equal(t, cat(
		u16(8), u16(uint16(kindMtu)), u32(1500),
		u16(9), u16(uint16(kindName)), []byte("eth0\x00"), []byte{0, 0, 0},
	), b)
}

func TestAttrsOverflow(t *testing.T) {
	_, err := testAttrs().Read(make([]byte, 19))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestForEachAttr(t *testing.T) {
	b, err := Marshal(testAttrs())
	require.NoError(t, err)

	var kinds []uint16
	var payloads [][]byte
	require.NoError(t, ForEachAttr(b, func(kind uint16, payload []byte) error {
		kinds = append(kinds, kind)
		payloads = append(payloads, append([]byte(nil), payload...))
		return nil
	}))
	assert.Equal(t, []uint16{uint16(kindMtu), uint16(kindName)}, kinds)
	assert.Equal(t, [][]byte{u32(1500), []byte("eth0\x00")}, payloads)

	var mtu Uint32
	require.NoError(t, Unmarshal(payloads[0], &mtu))
	assert.Equal(t, Uint32(1500), mtu)
}

func TestForEachAttrMalformed(t *testing.T) {
	for _, b := range [][]byte{
		{8, 0, 1},
		cat(u16(40), u16(uint16(kindMtu)), u32(1)),
	} {
		err := ForEachAttr(b, func(uint16, []byte) error { return nil })
		assert.ErrorIs(t, err, ErrLength, "% x", b)
	}
}

func TestIndexAttrs(t *testing.T) {
	b, err := Marshal(testAttrs())
	require.NoError(t, err)
	index := make([][]byte, nTestKind)
	index[kindCache] = []byte{1}
	require.NoError(t, IndexAttrs(index, b))
	assert.Nil(t, index[kindUnspec])
	assert.Nil(t, index[kindCache])
	assert.Equal(t, u32(1500), index[kindMtu])
	assert.Equal(t, []byte("eth0\x00"), index[kindName])

	short := make([][]byte, 2)
	require.NoError(t, IndexAttrs(short, b))
	assert.Equal(t, []byte("eth0\x00"), short[kindName])
}
