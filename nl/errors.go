// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

var (
	// ErrOverflow is returned when an encode runs out of buffer.
	ErrOverflow error = unix.EOVERFLOW
	// ErrTruncated is returned when a decode runs out of input.
	ErrTruncated = io.ErrUnexpectedEOF
	// ErrUnknown is returned for an enumeration value without a member.
	ErrUnknown = errors.New("unknown value")
	// ErrLength is returned for an attribute whose stored length
	// disagrees with its payload.
	ErrLength = errors.New("invalid attribute length")
)

// Error locates a failed encode or decode within a record.
type Error struct {
	Op     string // "encode" or "decode"
	Record string
	Field  string
	Offset int
	Err    error
}

func (e *Error) Error() string {
	where := e.Record
	if len(e.Field) > 0 {
		if len(where) > 0 {
			where += "."
		}
		where += e.Field
	}
	return fmt.Sprintf("%s: %s at offset %d: %v", where, e.Op, e.Offset,
		e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// relocate returns err as an *Error for the given field, shifting the offset
// of an already located inner error to be relative to the outer record.
func relocate(op, record, field string, offset int, err error) error {
	var inner *Error
	if errors.As(err, &inner) {
		f := field
		if len(inner.Record) > 0 {
			f += "." + inner.Record
		}
		if len(inner.Field) > 0 {
			f += "." + inner.Field
		}
		return &Error{
			Op:     op,
			Record: record,
			Field:  f,
			Offset: offset + inner.Offset,
			Err:    inner.Err,
		}
	}
	return &Error{
		Op:     op,
		Record: record,
		Field:  field,
		Offset: offset,
		Err:    err,
	}
}
