// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

// Field names one member of a fixed record for encoding.
type Field struct {
	Name string
	Encoder
}

// Slot names one member of a fixed record for decoding.
type Slot struct {
	Name string
	Decoder
}

// EncodeFields writes fields back to back, without padding, in the given
// order. On failure the returned *Error names the field and its offset.
func EncodeFields(b []byte, record string, fields ...Field) (int, error) {
	var i int
	for _, f := range fields {
		n, err := f.Read(b[i:])
		if err != nil {
			return 0, relocate("encode", record, f.Name, i, err)
		}
		i += n
	}
	return i, nil
}

// DecodeFields reads slots back to back in the given order. Callers decode
// into a temporary so that a failure leaves the destination record
// untouched.
func DecodeFields(b []byte, record string, slots ...Slot) (int, error) {
	var i int
	for _, s := range slots {
		n, err := s.Write(b[i:])
		if err != nil {
			return 0, relocate("decode", record, s.Name, i, err)
		}
		i += n
	}
	return i, nil
}

// SizeOf sums the sizes of fields.
func SizeOf(fields ...Encoder) int {
	var n int
	for _, f := range fields {
		n += f.Size()
	}
	return n
}
