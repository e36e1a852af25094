// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scmidtb is where the implementation of the scmidtb command lives.
// It switches an S32 device tree blob from the SIUL2 pin controller, GPIO
// and NVMEM nodes to their SCMI protocol equivalents.
package scmidtb

import (
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/scmidtb/pkg/dtb"
	"github.com/linuxboot/scmidtb/pkg/log"
	"github.com/linuxboot/scmidtb/pkg/passes"
)

// Options selects the passes to run and the node names they look for.
type Options struct {
	Pinctrl bool
	GPIO    bool
	NVMEM   bool

	Names passes.Config

	// progress is written to this writer.
	W io.Writer
}

// DefaultOptions enables every pass with the S32 node names.
func DefaultOptions() Options {
	return Options{
		Pinctrl: true,
		GPIO:    true,
		NVMEM:   true,
		Names:   passes.DefaultConfig(),
	}
}

func (o Options) logger() log.Logger {
	if o.W == nil {
		return log.New(io.Discard)
	}
	return log.New(o.W)
}

// step is a selected pass and the banner logged before it runs.
type step struct {
	banner string
	pass   passes.Pass
}

// Transform applies the selected passes to a DTB and returns the new blob.
// The order is fixed: pinctrl, GPIO, then NVMEM.
func Transform(data []byte, opts Options) ([]byte, *Report, error) {
	if err := opts.Names.Validate(); err != nil {
		return nil, nil, err
	}
	tree, err := dtb.Parse(data)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{InputSize: len(data)}
	var steps []step
	add := func(banner string, p passes.Pass) {
		steps = append(steps, step{banner: banner, pass: p})
	}
	if opts.Pinctrl {
		report.Pinctrl = &passes.Migrate{Label: "pinctrl", From: opts.Names.LegacyPinctrl, To: opts.Names.SCMIPinctrl, W: opts.W}
		add("Enabling SCMI pinctrl", report.Pinctrl)
	}
	if opts.GPIO {
		report.GPIO = &passes.Migrate{Label: "gpio", From: opts.Names.LegacyGPIO, To: opts.Names.SCMIGPIO, W: opts.W}
		add("Enabling SCMI GPIO", report.GPIO)
	}
	if opts.NVMEM {
		report.NVMEM = &passes.RewriteNVMEM{Node: opts.Names.SCMINVMEM, W: opts.W}
		add("Enabling SCMI NVMEM", report.NVMEM)
	}

	l := opts.logger()
	for _, s := range steps {
		l.Infof("%s", s.banner)
		if err := passes.Execute(tree, s.pass); err != nil {
			return nil, nil, err
		}
	}

	out, err := tree.Bytes()
	if err != nil {
		return nil, nil, err
	}
	report.OutputSize = len(out)
	return out, report, nil
}

// Run transforms the DTB at path and overwrites it. Nothing is written
// unless every selected pass succeeds.
func Run(path string, opts Options) (*Report, error) {
	opts.logger().Infof("Processing: %s", path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	out, report, err := Transform(data, opts)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("cannot write %s: %w", path, err)
	}
	return report, nil
}
