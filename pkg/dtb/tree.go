// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtb gives name-based access to a flattened device tree blob.
//
// The binary container is handled by u-root's dt package. This package adds
// the lookups and typed property accessors needed to edit a tree in place:
// exact-name search, subtree copy, child removal and cell/string encodings.
package dtb

import (
	"bytes"
	"fmt"

	"github.com/u-root/u-root/pkg/dt"
)

// Tree is a parsed device tree held fully in memory.
type Tree struct {
	fdt *dt.FDT
}

// Parse decodes a DTB.
func Parse(b []byte) (*Tree, error) {
	fdt, err := dt.ReadFDT(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("unable to parse device tree blob: %w", err)
	}
	if fdt.RootNode == nil {
		return nil, fmt.Errorf("device tree blob has no root node")
	}
	return &Tree{fdt: fdt}, nil
}

// NewTree wraps an in-memory root node in a version 17 tree with an empty
// reserve map.
func NewTree(root *dt.Node) *Tree {
	return &Tree{fdt: &dt.FDT{
		Header: dt.Header{
			Magic:           dt.Magic,
			Version:         17,
			LastCompVersion: 16,
		},
		RootNode: root,
	}}
}

// Root returns the root node.
func (t *Tree) Root() *dt.Node {
	return t.fdt.RootNode
}

// Bytes encodes the tree back into a DTB.
func (t *Tree) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.fdt.Write(&buf); err != nil {
		return nil, fmt.Errorf("unable to serialize device tree: %w", err)
	}
	return buf.Bytes(), nil
}

// Walk calls f for every node in depth-first pre-order, stopping at the
// first error.
func (t *Tree) Walk(f func(n *dt.Node) error) error {
	return t.fdt.RootNode.Walk(f)
}

// FindNodes returns every node whose full name, unit address included,
// equals name.
func (t *Tree) FindNodes(name string) []*dt.Node {
	matches, _ := t.fdt.RootNode.FindAll(func(n *dt.Node) bool {
		return n.Name == name
	})
	return matches
}

// FindExactlyOne does a FindNodes and errors unless there is exactly one
// match.
func (t *Tree) FindExactlyOne(name string) (*dt.Node, error) {
	matches := t.FindNodes(name)
	if len(matches) != 1 {
		return nil, &ErrNodeCount{Name: name, Count: len(matches)}
	}
	return matches[0], nil
}
