// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"testing"

	"github.com/platinasystems/rtnl/nl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIfla(t *testing.T) {
	mac := []byte{0x02, 0, 0, 0, 0, 1}
	b, err := nl.Marshal(nl.Attrs{
		IflaIfname("eth0"),
		IflaMtu(9000),
		nl.NewAttr[IflaKind, nl.Bytes, *nl.Bytes](IFLA_ADDRESS, mac),
	})
	require.NoError(t, err)

	var ifla Ifla
	n, err := ifla.Write(b)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	name, err := ifla.Ifname()
	require.NoError(t, err)
	assert.Equal(t, "eth0", name)
	mtu, err := ifla.Mtu()
	require.NoError(t, err)
	assert.Equal(t, uint32(9000), mtu)
	assert.Equal(t, mac, ifla.Address())
	assert.Nil(t, ifla.Broadcast())

	_, err = ifla.Master()
	assert.ErrorIs(t, err, nl.ErrTruncated)
}

func TestIfa(t *testing.T) {
	ci := IfaCacheInfo{Prefered: 100, Valid: 200, Created: 3, Updated: 4}
	b, err := nl.Marshal(nl.Attrs{
		IfaAddress([]byte{10, 0, 0, 1}),
		IfaLabel("eth0:1"),
		IfaCache(ci),
	})
	require.NoError(t, err)

	var ifa Ifa
	_, err = ifa.Write(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 0, 0, 1}, ifa.Address())
	assert.Nil(t, ifa.Local())
	label, err := ifa.Label()
	require.NoError(t, err)
	assert.Equal(t, "eth0:1", label)
	got, err := ifa.CacheInfo()
	require.NoError(t, err)
	assert.Equal(t, ci, got)
}

func TestRta(t *testing.T) {
	ci := RtaCacheInfo{ClntRef: 1, LastUse: 2, Expires: 3, Used: 5}
	b, err := nl.Marshal(nl.Attrs{
		RtaDst([]byte{192, 168, 0, 0}),
		RtaGateway([]byte{192, 168, 0, 1}),
		RtaOif(4),
		RtaTable(1000),
		nl.NewAttr[RtaKind, RtaCacheInfo, *RtaCacheInfo](RTA_CACHEINFO,
			ci),
	})
	require.NoError(t, err)

	var rta Rta
	_, err = rta.Write(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{192, 168, 0, 0}, rta.Dst())
	assert.Equal(t, []byte{192, 168, 0, 1}, rta.Gateway())
	oif, err := rta.Oif()
	require.NoError(t, err)
	assert.Equal(t, uint32(4), oif)
	table, err := rta.Table()
	require.NoError(t, err)
	assert.Equal(t, uint32(1000), table)
	got, err := rta.CacheInfo()
	require.NoError(t, err)
	assert.Equal(t, ci, got)

	_, err = rta.Priority()
	assert.ErrorIs(t, err, nl.ErrTruncated)
}

func TestNeighborMessage(t *testing.T) {
	msg := NdMsg{
		Family: AF_INET,
		Index:  2,
		State:  nl.Flags[NeighborState]{NUD_REACHABLE},
		Type:   RTN_UNICAST,
	}
	ci := NdaCacheInfo{Confirmed: 10, Used: 20, Updated: 30, RefCnt: 1}
	attrs := nl.Attrs{
		NdaDst([]byte{10, 0, 0, 2}),
		NdaLladdr([]byte{0x02, 0, 0, 0, 0, 2}),
		NdaCache(ci),
	}
	i := nl.NLMSG.Align(msg.Size())
	assert.Equal(t, 12, i)
	b := make([]byte, i+attrs.Size())
	_, err := msg.Read(b)
	require.NoError(t, err)
	_, err = attrs.Read(b[i:])
	require.NoError(t, err)

	var got NdMsg
	n, err := got.Write(b)
	require.NoError(t, err)
	assert.Equal(t, SizeofNdMsg, n)
	assert.Equal(t, msg, got)

	var nda Nda
	_, err = nda.Write(b[nl.NLMSG.Align(n):])
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 0, 0, 2}, nda.Dst())
	assert.Equal(t, []byte{0x02, 0, 0, 0, 0, 2}, nda.Lladdr())
	gotci, err := nda.CacheInfo()
	require.NoError(t, err)
	assert.Equal(t, ci, gotci)
}

func TestCacheInfoAttr(t *testing.T) {
	ci := NdaCacheInfo{Confirmed: 1, Used: 2, Updated: 3, RefCnt: 4}
	a := NdaCache(ci)
	assert.Equal(t, uint16(4+SizeofNdaCacheInfo), a.Len)
	b, err := nl.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, cat(u16(20), u16(uint16(NDA_CACHEINFO)),
		u32(1), u32(2), u32(3), u32(4)), b)

	var got nl.Attr[NdaKind, NdaCacheInfo, *NdaCacheInfo]
	require.NoError(t, nl.Unmarshal(b, &got))
	assert.Equal(t, a, got)
	assert.Equal(t, "cacheinfo: confirmed 1 used 2 updated 3 refcnt 4",
		got.String())

	copy(b[2:4], u16(uint16(N_NDA)))
	assert.ErrorIs(t, nl.Unmarshal(b, &got), nl.ErrUnknown)

	copy(b[2:4], u16(uint16(NDA_CACHEINFO)))
	copy(b[0:2], u16(24))
	assert.ErrorIs(t, nl.Unmarshal(append(b, 0, 0, 0, 0), &got), nl.ErrLength)
}

func TestIndexMalformed(t *testing.T) {
	var nda Nda
	_, err := nda.Write([]byte{1, 2, 3})
	assert.ErrorIs(t, err, nl.ErrLength)
}
