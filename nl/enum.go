// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"fmt"
	"strconv"
)

// Enum is a closed enumeration of fixed width. Known reports whether the
// value is one of the enumeration's members.
type Enum interface {
	~uint8 | ~uint16 | ~uint32
	Known() bool
}

// EncodeEnum puts e in host byte order. Any value encodes, members or not.
func EncodeEnum[E Enum](b []byte, e E) (int, error) {
	return PutUnsigned(b, e)
}

// DecodeEnum loads *e from b, failing with ErrUnknown, and leaving *e
// untouched, if the value isn't a member.
func DecodeEnum[E Enum](b []byte, e *E) (int, error) {
	v, n, err := GetUnsigned[E](b)
	if err != nil {
		return 0, err
	}
	if !v.Known() {
		return 0, fmt.Errorf("%w: %#x", ErrUnknown, uint64(v))
	}
	*e = v
	return n, nil
}

// Name returns the name of v in names, or its number.
func Name[K Unsigned](names map[K]string, v K) string {
	if s, found := names[v]; found {
		return s
	}
	return strconv.FormatUint(uint64(v), 10)
}

// ByName inverts a name table.
func ByName[K comparable](names map[K]string) map[string]K {
	m := make(map[string]K, len(names))
	for k, s := range names {
		m[s] = k
	}
	return m
}
