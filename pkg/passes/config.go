// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package passes

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Node names of the S32 SIUL2 blocks and of the SCMI protocols that replace
// them. The SCMI unit addresses are the protocol IDs.
const (
	SIUL2PinctrlName = "siul2-pinctrl@4009c240"
	SIUL2GPIOName    = "siul2-gpio@4009d700"
	SCMIPinctrlName  = "protocol@80"
	SCMIGPIOName     = "protocol@81"
	SCMINVMEMName    = "protocol@82"
)

// Property names and values touched by the passes.
const (
	PropStatus         = "status"
	PropPhandle        = "phandle"
	PropNVMEMCells     = "nvmem-cells"
	PropNVMEMCellNames = "nvmem-cell-names"

	StatusOkay     = "okay"
	StatusDisabled = "disabled"
)

// Config holds the exact node names each pass looks for.
type Config struct {
	LegacyPinctrl string
	LegacyGPIO    string
	SCMIPinctrl   string
	SCMIGPIO      string
	SCMINVMEM     string
}

// DefaultConfig returns the names used by the S32 device trees.
func DefaultConfig() Config {
	return Config{
		LegacyPinctrl: SIUL2PinctrlName,
		LegacyGPIO:    SIUL2GPIOName,
		SCMIPinctrl:   SCMIPinctrlName,
		SCMIGPIO:      SCMIGPIOName,
		SCMINVMEM:     SCMINVMEMName,
	}
}

// Validate reports every empty node name.
func (c Config) Validate() error {
	var result *multierror.Error
	for _, f := range []struct {
		field string
		value string
	}{
		{"legacy pinctrl", c.LegacyPinctrl},
		{"legacy GPIO", c.LegacyGPIO},
		{"SCMI pinctrl", c.SCMIPinctrl},
		{"SCMI GPIO", c.SCMIGPIO},
		{"SCMI NVMEM", c.SCMINVMEM},
	} {
		if f.value == "" {
			result = multierror.Append(result, fmt.Errorf("%s node name is empty", f.field))
		}
	}
	return result.ErrorOrNil()
}
