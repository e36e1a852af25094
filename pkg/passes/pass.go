// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package passes implements the SIUL2 to SCMI device tree transformations.
// Each pass mutates a dtb.Tree in place and reports failures as errors; none
// of them exit the process.
package passes

import (
	"fmt"
	"io"

	"github.com/linuxboot/scmidtb/pkg/dtb"
)

// Pass is a single transformation over a device tree.
type Pass interface {
	// Name is a short label used in diagnostics.
	Name() string
	// Run applies the pass to t.
	Run(t *dtb.Tree) error
}

// Execute applies each Pass over the tree in sequence and stops at the first
// failure.
func Execute(t *dtb.Tree, passes ...Pass) error {
	for _, p := range passes {
		if err := p.Run(t); err != nil {
			return &ErrPass{Pass: p.Name(), Err: err}
		}
	}
	return nil
}

func printf(w io.Writer, format string, a ...interface{}) {
	if w != nil {
		fmt.Fprintf(w, format, a...)
	}
}
