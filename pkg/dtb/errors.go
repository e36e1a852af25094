// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtb

import (
	"fmt"
)

// ErrNodeCount means a node lookup did not match exactly one node.
type ErrNodeCount struct {
	Name  string
	Count int
}

func (err *ErrNodeCount) Error() string {
	if err.Count == 0 {
		return fmt.Sprintf("can't find node %q", err.Name)
	}
	return fmt.Sprintf("expected exactly one node named %q, got %d", err.Name, err.Count)
}

// ErrDuplicateNode means a child with the same name already exists.
type ErrDuplicateNode struct {
	Parent string
	Name   string
}

func (err *ErrDuplicateNode) Error() string {
	return fmt.Sprintf("node %q already has a subnode named %q", err.Parent, err.Name)
}

// ErrPropertyType means a property value does not decode as the requested
// kind.
type ErrPropertyType struct {
	Node     string
	Property string
	Want     string
	Len      int
}

func (err *ErrPropertyType) Error() string {
	return fmt.Sprintf("property %q of node %q is not a %s (%d bytes)", err.Property, err.Node, err.Want, err.Len)
}
