// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package accumulate

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test(t *testing.T) {
	var n int64
	acc := New(io.Discard)

	for _, s := range []string{
		"The quick brown fox jumped ",
		"over the lazy dog's back",
	} {
		acc.WriteString(s)
		n += int64(len(s))
	}
	require.NoError(t, acc.Error())
	assert.Equal(t, n, acc.Total())
}

type shortWriter struct{ room int }

var errFull = errors.New("full")

func (w *shortWriter) Write(b []byte) (int, error) {
	if len(b) > w.room {
		n := w.room
		w.room = 0
		return n, errFull
	}
	w.room -= len(b)
	return len(b), nil
}

func TestSkipsAfterError(t *testing.T) {
	acc := New(&shortWriter{room: 4})
	fmt.Fprint(acc, "abc")
	fmt.Fprint(acc, "defg")
	fmt.Fprint(acc, "hij")
	n, err := acc.Tuple()
	assert.Equal(t, int64(4), n)
	assert.ErrorIs(t, err, errFull)
}

type dump string

func (d dump) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(d))
	return int64(n), err
}

func TestDump(t *testing.T) {
	var sb strings.Builder
	acc := New(&sb)
	acc.Dump(dump("family: inet\n"))
	acc.Dump(dump("index: 2\n"))
	n, err := acc.Tuple()
	require.NoError(t, err)
	assert.Equal(t, int64(sb.Len()), n)
	assert.Equal(t, "family: inet\nindex: 2\n", sb.String())
}
