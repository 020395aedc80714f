// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"fmt"

	"github.com/mdlayher/netlink"
)

// Attribute is the list view of an Attr.
type Attribute interface {
	Kind() uint16
	Value() Encoder
}

// Attrs is a list of attributes, each padded to NLATTR, as follows a fixed
// record in a message body.
type Attrs []Attribute

func (attrs Attrs) Size() int {
	var n int
	for _, a := range attrs {
		n += NLATTR.Align(SizeofAttrHdr + a.Value().Size())
	}
	return n
}

func (attrs Attrs) Read(b []byte) (int, error) {
	ae := netlink.NewAttributeEncoder()
	for _, a := range attrs {
		v := a.Value()
		ae.Do(a.Kind(), func() ([]byte, error) {
			return Marshal(v)
		})
	}
	enc, err := ae.Encode()
	if err != nil {
		return 0, relocate("encode", "rtattr", "", 0, err)
	}
	if len(b) < len(enc) {
		return 0, &Error{Op: "encode", Record: "rtattr", Err: ErrOverflow}
	}
	return copy(b, enc), nil
}

// ForEachAttr calls do with the kind and payload of each attribute in b,
// stopping at the first error.
func ForEachAttr(b []byte, do func(kind uint16, payload []byte) error) error {
	malformed := func(err error) error {
		return &Error{
			Op:     "decode",
			Record: "rtattr",
			Err:    fmt.Errorf("%w: %v", ErrLength, err),
		}
	}
	ad, err := netlink.NewAttributeDecoder(b)
	if err != nil {
		return malformed(err)
	}
	for ad.Next() {
		if err := do(ad.Type(), ad.Bytes()); err != nil {
			return err
		}
	}
	if err = ad.Err(); err != nil {
		return malformed(err)
	}
	return nil
}

// IndexAttrs fills index with the payloads of b by kind. Kinds beyond the
// index are skipped; a repeated kind keeps its last payload.
func IndexAttrs(index [][]byte, b []byte) error {
	for i := range index {
		index[i] = nil
	}
	return ForEachAttr(b, func(kind uint16, payload []byte) error {
		if int(kind) < len(index) {
			index[kind] = payload
		}
		return nil
	})
}
