// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scmidtb

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/scmidtb/pkg/passes"
)

// Report summarizes what a Transform changed. Passes that were not selected
// are nil.
type Report struct {
	Pinctrl *passes.Migrate
	GPIO    *passes.Migrate
	NVMEM   *passes.RewriteNVMEM

	InputSize  int
	OutputSize int
}

func migrateRow(m *passes.Migrate) table.Row {
	phandle := "-"
	if m.PhandleMoved {
		phandle = fmt.Sprintf("%#x", m.Phandle)
	}
	return table.Row{m.Label, m.From + " -> " + m.To, strings.Join(m.Moved, ", "), phandle}
}

// Render writes the summary tables to w.
func (r *Report) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("SCMI migration")
	t.AppendHeader(table.Row{"Pass", "Nodes", "Moved subnodes", "Phandle"})
	for _, m := range []*passes.Migrate{r.Pinctrl, r.GPIO} {
		if m != nil {
			t.AppendRow(migrateRow(m))
		}
	}
	if r.NVMEM != nil {
		t.AppendRow(table.Row{"nvmem", r.NVMEM.Node, fmt.Sprintf("%d consumers", r.NVMEM.Consumers), "-"})
	}
	t.AppendFooter(table.Row{"size", humanize.IBytes(uint64(r.InputSize)) + " -> " + humanize.IBytes(uint64(r.OutputSize)), "", ""})
	t.Render()

	if r.NVMEM == nil || len(r.NVMEM.Rewrites) == 0 {
		return
	}
	c := table.NewWriter()
	c.SetOutputMirror(w)
	c.SetTitle("NVMEM cells")
	c.AppendHeader(table.Row{"Consumer", "Cell", "Old", "New"})
	for _, rw := range r.NVMEM.Rewrites {
		c.AppendRow(table.Row{rw.Node, rw.Cell, fmt.Sprintf("%#x", rw.Old), fmt.Sprintf("%#x", rw.New)})
	}
	c.Render()
}
