// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

/*
Package accumulate sums the bytes written through a Writer.
Use it in a WriteTo like this,

	func (t TYPE) WriteTo(w io.Writer) (int64, error) {
		acc := accumulate.New(w)
		fmt.Fprintln(acc, ...)
		...
		fmt.Fprintln(acc, ...)
		return acc.Tuple()
	}

An accumulator skips subsequent writes after an error.
*/
package accumulate

import "io"

type Accumulator struct {
	w   io.Writer
	n   int64
	err error
}

// New returns an Accumulator for the given Writer.
func New(w io.Writer) *Accumulator {
	return &Accumulator{w: w}
}

// Error records the first non-nil argument, if any, then returns the first
// error encountered by the accumulator.
func (acc *Accumulator) Error(errs ...error) error {
	for _, err := range errs {
		if acc.err == nil {
			acc.err = err
		}
	}
	return acc.err
}

// Total adds any given counts to the accumulator and returns the sum.
func (acc *Accumulator) Total(counts ...int) int64 {
	for _, i := range counts {
		if acc.err == nil {
			acc.n += int64(i)
		}
	}
	return acc.n
}

func (acc *Accumulator) Tuple() (int64, error) {
	return acc.n, acc.err
}

// Dump writes v through the accumulator.
func (acc *Accumulator) Dump(v io.WriterTo) {
	if acc.err != nil {
		return
	}
	_, acc.err = v.WriteTo(acc)
}

func (acc *Accumulator) Write(b []byte) (int, error) {
	var i int
	if acc.err != nil {
		return 0, acc.err
	}
	i, acc.err = acc.w.Write(b)
	acc.n += int64(i)
	return i, acc.err
}

func (acc *Accumulator) WriteString(s string) (int, error) {
	return acc.Write([]byte(s))
}
