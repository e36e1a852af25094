// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import (
	"fmt"
)

// ErrLengthMismatch means the paired nvmem-cells and nvmem-cell-names
// properties of a node have different lengths.
type ErrLengthMismatch struct {
	Node  string
	Cells int
	Names int
}

func (err *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("node %q: %s has %d entries but %s has %d", err.Node,
		PropNVMEMCells, err.Cells, PropNVMEMCellNames, err.Names)
}

// ErrPass wraps the failure of a single pass.
type ErrPass struct {
	Pass string
	Err  error
}

func (err *ErrPass) Error() string {
	return fmt.Sprintf("%s: %v", err.Pass, err.Err)
}

func (err *ErrPass) Unwrap() error {
	return err.Err
}
