// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/scmidtb/pkg/passes"
)

func TestParseArguments(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		args                 []string
		pinctrl, gpio, nvmem bool
	}{
		{"defaults", []string{"a.dtb"}, true, true, true},
		{"no-pinctrl", []string{"--no-pinctrl", "a.dtb"}, false, true, true},
		{"no-gpio", []string{"a.dtb", "--no-gpio"}, true, false, true},
		{"nvmem only", []string{"--no-pinctrl", "--no-gpio", "--nvmem", "a.dtb"}, false, false, true},
		{"last wins", []string{"--no-nvmem", "--nvmem", "--gpio", "--no-gpio", "a.dtb"}, true, false, true},
		{"explicit value", []string{"--pinctrl=false", "a.dtb"}, false, true, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parseArguments(tc.args)
			require.NoError(t, err)
			require.Equal(t, "a.dtb", cfg.Path)
			require.Equal(t, tc.pinctrl, cfg.Pinctrl, "pinctrl")
			require.Equal(t, tc.gpio, cfg.GPIO, "gpio")
			require.Equal(t, tc.nvmem, cfg.NVMEM, "nvmem")
			require.Equal(t, passes.DefaultConfig(), cfg.Names)
			require.False(t, cfg.Summary)
		})
	}
}

func TestParseArgumentsNodeNames(t *testing.T) {
	cfg, err := parseArguments([]string{"--scmi-nvmem-node", "protocol@90", "--summary", "b.dtb"})
	require.NoError(t, err)
	require.Equal(t, "protocol@90", cfg.Names.SCMINVMEM)
	require.Equal(t, passes.SCMIGPIOName, cfg.Names.SCMIGPIO)
	require.True(t, cfg.Summary)
}

func TestParseArgumentsErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a.dtb", "b.dtb"},
		{"--bogus", "a.dtb"},
	} {
		_, err := parseArguments(args)
		require.Error(t, err, "%v", args)
	}
}
