// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package rtnl encodes and decodes the fixed records of rtnetlink messages,
// the interface, address, route and neighbor messages, and the attribute
// payloads that follow them.
//
// Records are packed field after field without padding and in host byte
// order. Decoding a record is all-or-nothing; on failure the destination is
// left as it was.
package rtnl

import (
	"io"
	"strings"

	"github.com/platinasystems/rtnl/nl"
)

func dump(v io.WriterTo) string {
	var sb strings.Builder
	v.WriteTo(&sb)
	return sb.String()
}

// decodeAttr decodes an indexed payload that must be consumed exactly.
func decodeAttr(record, field string, b []byte, v nl.Decoder) error {
	n, err := v.Write(b)
	if err == nil && n != len(b) {
		err = nl.ErrLength
	}
	if err != nil {
		return &nl.Error{Op: "decode", Record: record, Field: field, Err: err}
	}
	return nil
}
