// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// scmidtb switches the S32 SIUL2 pin controller, GPIO and NVMEM nodes of a
// device tree blob to the SCMI protocol nodes. The file is rewritten in place.
//
// Synopsis:
//     scmidtb [--no-pinctrl] [--no-gpio] [--no-nvmem] [--summary] DTB_FILE
//
// Description:
//     pinctrl: move the subnodes and phandle of the SIUL2 pin controller into
//              the SCMI pinctrl protocol node, disable SIUL2 and enable SCMI.
//     gpio:    the same for the SIUL2 GPIO controller and SCMI GPIO protocol.
//     nvmem:   point every nvmem-cells reference whose cell name is exported
//              by the SCMI NVMEM protocol node at that node's cells, and
//              enable it.
//
// Every pass is enabled by default. The file is only written if all of the
// selected passes succeed; otherwise scmidtb exits with status 1.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/scmidtb/pkg/log"
	"github.com/linuxboot/scmidtb/pkg/scmidtb"
)

type config struct {
	scmidtb.Options
	Summary bool
	Path    string
}

// negated is the value behind a --no-X flag: setting it clears *b.
type negated struct {
	b *bool
}

func (n negated) String() string {
	if n.b == nil {
		return "false"
	}
	return strconv.FormatBool(!*n.b)
}

func (n negated) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*n.b = !v
	return nil
}

func (n negated) Type() string {
	return "bool"
}

// toggle registers --name and --no-name on the same variable. The last one
// on the command line wins.
func toggle(fs *flag.FlagSet, p *bool, name, usage string) {
	fs.BoolVar(p, name, *p, usage)
	fs.VarPF(negated{p}, "no-"+name, "", "do not "+usage).NoOptDefVal = "true"
}

func parseArguments(args []string) (config, error) {
	cfg := config{Options: scmidtb.DefaultOptions()}

	fs := flag.NewFlagSet("scmidtb", flag.ContinueOnError)
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		fmt.Fprintf(os.Stdout, "Usage: scmidtb [flags] <dtb file>\n")
		fs.PrintDefaults()
	}
	toggle(fs, &cfg.Pinctrl, "pinctrl", "use SCMI pinctrl protocol")
	toggle(fs, &cfg.GPIO, "gpio", "use SCMI GPIO protocol")
	toggle(fs, &cfg.NVMEM, "nvmem", "use SCMI NVMEM protocol")
	fs.BoolVar(&cfg.Summary, "summary", false, "print a summary table after a successful run")
	fs.StringVar(&cfg.Names.LegacyPinctrl, "siul2-pinctrl-node", cfg.Names.LegacyPinctrl, "name of the SIUL2 pinctrl node")
	fs.StringVar(&cfg.Names.LegacyGPIO, "siul2-gpio-node", cfg.Names.LegacyGPIO, "name of the SIUL2 GPIO node")
	fs.StringVar(&cfg.Names.SCMIPinctrl, "scmi-pinctrl-node", cfg.Names.SCMIPinctrl, "name of the SCMI pinctrl protocol node")
	fs.StringVar(&cfg.Names.SCMIGPIO, "scmi-gpio-node", cfg.Names.SCMIGPIO, "name of the SCMI GPIO protocol node")
	fs.StringVar(&cfg.Names.SCMINVMEM, "scmi-nvmem-node", cfg.Names.SCMINVMEM, "name of the SCMI NVMEM protocol node")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		return config{}, fmt.Errorf("expected exactly one dtb file, got %d arguments", fs.NArg())
	}
	cfg.Path = fs.Arg(0)
	return cfg, nil
}

func main() {
	cfg, err := parseArguments(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	cfg.W = os.Stdout
	report, err := scmidtb.Run(cfg.Path, cfg.Options)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.Summary {
		report.Render(os.Stdout)
	}
}
