// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtb

import (
	"github.com/u-root/u-root/pkg/dt"
)

// Child returns the immediate child of n called name.
func Child(n *dt.Node, name string) (*dt.Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// AppendChild adds child as the last immediate child of parent. Sibling
// names are unique, so a clash is an error and parent is left unchanged.
func AppendChild(parent, child *dt.Node) error {
	if _, ok := Child(parent, child.Name); ok {
		return &ErrDuplicateNode{Parent: parent.Name, Name: child.Name}
	}
	parent.Children = append(parent.Children, child)
	return nil
}

// RemoveChild removes the immediate child of parent called name and reports
// whether there was one.
func RemoveChild(parent *dt.Node, name string) bool {
	for i, c := range parent.Children {
		if c.Name == name {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return true
		}
	}
	return false
}

// CopyNode returns a deep copy of n. The copy shares no memory with n, so
// either side can be mutated or dropped afterwards.
func CopyNode(n *dt.Node) *dt.Node {
	c := &dt.Node{Name: n.Name}
	if n.Properties != nil {
		c.Properties = make([]dt.Property, len(n.Properties))
		for i, p := range n.Properties {
			c.Properties[i] = dt.Property{Name: p.Name, Value: append([]byte(nil), p.Value...)}
		}
	}
	if n.Children != nil {
		c.Children = make([]*dt.Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = CopyNode(child)
		}
	}
	return c
}
