// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import (
	"encoding/binary"
	"io"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/linuxboot/scmidtb/pkg/dtb"
)

// Migrate moves every subnode and the phandle of a legacy node into its SCMI
// counterpart, then disables the legacy node and enables the SCMI one.
//
// The subnodes are copied and checked against the target before anything is
// modified, so an error leaves both nodes as they were.
type Migrate struct {
	// Input
	Label string // e.g. "pinctrl"; only used in messages
	From  string
	To    string

	// Output
	Moved        []string
	PhandleMoved bool
	Phandle      uint32

	// progress is written to this writer.
	W io.Writer
}

// Name implements Pass.
func (v *Migrate) Name() string {
	return "migrate " + v.Label
}

// Run implements Pass.
func (v *Migrate) Run(t *dtb.Tree) error {
	from, err := t.FindExactlyOne(v.From)
	if err != nil {
		return err
	}
	printf(v.W, "Found %s node %s\n", v.Label, v.From)

	to, err := t.FindExactlyOne(v.To)
	if err != nil {
		return err
	}
	printf(v.W, "Found SCMI %s node %s\n", v.Label, v.To)

	staged := make([]*dt.Node, 0, len(from.Children))
	for _, c := range from.Children {
		if _, ok := dtb.Child(to, c.Name); ok {
			return &dtb.ErrDuplicateNode{Parent: to.Name, Name: c.Name}
		}
		staged = append(staged, dtb.CopyNode(c))
	}

	v.Moved = v.Moved[:0]
	for _, c := range staged {
		printf(v.W, "Copying subnode: %s\n", c.Name)
		if err := dtb.AppendChild(to, c); err != nil {
			return err
		}
		v.Moved = append(v.Moved, c.Name)
	}
	for _, name := range v.Moved {
		dtb.RemoveChild(from, name)
	}

	v.PhandleMoved = false
	if p, ok := dtb.Property(from, PropPhandle); ok {
		value := append([]byte(nil), p.Value...)
		dtb.SetProperty(to, PropPhandle, value)
		dtb.RemoveProperty(from, PropPhandle)
		v.PhandleMoved = true
		if len(value) == 4 {
			v.Phandle = binary.BigEndian.Uint32(value)
		}
	}

	dtb.SetString(from, PropStatus, StatusDisabled)
	dtb.SetString(to, PropStatus, StatusOkay)
	return nil
}
