// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"github.com/mdlayher/netlink/nlenc"
)

var ne = nlenc.NativeEndian()

func u16(v uint16) []byte {
	b := make([]byte, 2)
	ne.PutUint16(b, v)
	return b
}

func u32(v uint32) []byte {
	b := make([]byte, 4)
	ne.PutUint32(b, v)
	return b
}

func cat(bs ...[]byte) []byte {
	var b []byte
	for _, x := range bs {
		b = append(b, x...)
	}
	return b
}

type testFlag uint8

const (
	flagA testFlag = 1 << iota
	flagB
	flagC
	flagH testFlag = 0x80
)

var testFlagName = map[testFlag]string{
	flagA: "a",
	flagB: "b",
	flagC: "c",
	flagH: "h",
}

func (f testFlag) Known() bool {
	_, found := testFlagName[f]
	return found
}

func (f testFlag) String() string { return Name(testFlagName, f) }

type testKind uint16

const (
	kindUnspec testKind = iota
	kindName
	kindMtu
	kindCache
	nTestKind
)

var testKindName = map[testKind]string{
	kindUnspec: "unspec",
	kindName:   "name",
	kindMtu:    "mtu",
	kindCache:  "cache",
}

func (k testKind) Known() bool { return k < nTestKind }
func (k testKind) String() string { return Name(testKindName, k) }
