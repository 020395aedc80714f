// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package nl

import "golang.org/x/sys/unix"

const (
	NLMSG  Align = unix.NLMSG_ALIGNTO
	NLATTR Align = unix.RTA_ALIGNTO
)

// Align rounds lengths up to a power of two boundary.
type Align int

func (to Align) Align(i int) int {
	return (i + to.Size() - 1) & ^(to.Size() - 1)
}

func (to Align) Size() int { return int(to) }
