// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import (
	"io"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/linuxboot/scmidtb/pkg/dtb"
)

// CellRewrite records one nvmem-cells entry pointed at the SCMI provider.
type CellRewrite struct {
	Node string
	Cell string
	Old  uint32
	New  uint32
}

// RewriteNVMEM points NVMEM consumers at the cells exported by the SCMI
// NVMEM protocol node and enables that node.
//
// Consumers are matched by cell name: an entry whose nvmem-cell-names name
// is known to the SCMI node gets the SCMI phandle, any other entry keeps its
// original phandle.
type RewriteNVMEM struct {
	// Input
	Node string

	// Output
	Consumers int
	Rewrites  []CellRewrite

	// progress is written to this writer.
	W io.Writer
}

// Name implements Pass.
func (v *RewriteNVMEM) Name() string {
	return "rewrite nvmem"
}

// cells reads the paired nvmem-cells and nvmem-cell-names of n.
func cells(n *dt.Node) ([]uint32, []string, error) {
	phandles, err := dtb.U32List(n, PropNVMEMCells)
	if err != nil {
		return nil, nil, err
	}
	names, err := dtb.StringList(n, PropNVMEMCellNames)
	if err != nil {
		return nil, nil, err
	}
	if len(phandles) != len(names) {
		return nil, nil, &ErrLengthMismatch{Node: n.Name, Cells: len(phandles), Names: len(names)}
	}
	return phandles, names, nil
}

// Run implements Pass.
func (v *RewriteNVMEM) Run(t *dtb.Tree) error {
	scmi, err := t.FindExactlyOne(v.Node)
	if err != nil {
		return err
	}
	printf(v.W, "Found SCMI nvmem node %s\n", v.Node)

	phandles, names, err := cells(scmi)
	if err != nil {
		return err
	}
	// Last entry wins on duplicate names.
	byName := make(map[string]uint32, len(names))
	for i, name := range names {
		byName[name] = phandles[i]
	}

	var consumers []*dt.Node
	_ = t.Walk(func(n *dt.Node) error {
		if n == scmi {
			return nil
		}
		if p, ok := dtb.Property(n, PropNVMEMCells); ok && dtb.IsU32List(p) {
			consumers = append(consumers, n)
		}
		return nil
	})

	// Every consumer is checked before the first one is written.
	updates := make([][]uint32, len(consumers))
	var rewrites []CellRewrite
	for i, n := range consumers {
		old, cellNames, err := cells(n)
		if err != nil {
			return err
		}
		updated := append([]uint32(nil), old...)
		for j, name := range cellNames {
			if ph, ok := byName[name]; ok && ph != old[j] {
				updated[j] = ph
				rewrites = append(rewrites, CellRewrite{Node: n.Name, Cell: name, Old: old[j], New: ph})
			}
		}
		updates[i] = updated
	}

	for i, n := range consumers {
		dtb.SetU32List(n, PropNVMEMCells, updates[i])
	}
	for _, r := range rewrites {
		printf(v.W, "Rewriting %s cell %s: %#x -> %#x\n", r.Node, r.Cell, r.Old, r.New)
	}
	v.Consumers = len(consumers)
	v.Rewrites = rewrites

	dtb.SetString(scmi, PropStatus, StatusOkay)
	return nil
}
