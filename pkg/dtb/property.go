// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtb

import (
	"encoding/binary"
	"strings"

	"github.com/u-root/u-root/pkg/dt"
)

// Property returns the property of n called name. The pointer aliases
// n.Properties and is only valid until the next append to it.
func Property(n *dt.Node, name string) (*dt.Property, bool) {
	return n.LookProperty(name)
}

// SetProperty overwrites the value of the property called name, or appends
// a new property when n has none.
func SetProperty(n *dt.Node, name string, value []byte) {
	n.UpdateProperty(name, value)
}

// RemoveProperty deletes the property called name and reports whether it
// existed. Unlike (*dt.Node).RemoveProperty the order of the remaining
// properties is kept.
func RemoveProperty(n *dt.Node, name string) bool {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			n.Properties = append(n.Properties[:i], n.Properties[i+1:]...)
			return true
		}
	}
	return false
}

// IsU32List reports whether p holds one or more 32-bit cells.
func IsU32List(p *dt.Property) bool {
	return len(p.Value) > 0 && len(p.Value)%4 == 0
}

// String returns a single NUL-terminated string property.
func String(n *dt.Node, name string) (string, bool, error) {
	p, ok := n.LookProperty(name)
	if !ok {
		return "", false, nil
	}
	s, err := p.AsString()
	if err != nil {
		return "", true, &ErrPropertyType{Node: n.Name, Property: name, Want: "string", Len: len(p.Value)}
	}
	return s, true, nil
}

// SetString stores s as a NUL-terminated string.
func SetString(n *dt.Node, name, s string) {
	SetProperty(n, name, append([]byte(s), 0))
}

// StringList returns a list of NUL-terminated strings. A missing property
// reads as an empty list. (*dt.Property).AsStringList never advances past
// the first string, so the split is done here.
func StringList(n *dt.Node, name string) ([]string, error) {
	p, ok := n.LookProperty(name)
	if !ok || len(p.Value) == 0 {
		return nil, nil
	}
	if p.Value[len(p.Value)-1] != 0 {
		return nil, &ErrPropertyType{Node: n.Name, Property: name, Want: "string list", Len: len(p.Value)}
	}
	return strings.Split(string(p.Value[:len(p.Value)-1]), "\x00"), nil
}

// SetStringList stores l as consecutive NUL-terminated strings.
func SetStringList(n *dt.Node, name string, l []string) {
	var b []byte
	for _, s := range l {
		b = append(b, s...)
		b = append(b, 0)
	}
	SetProperty(n, name, b)
}

// U32 returns a single-cell property.
func U32(n *dt.Node, name string) (uint32, bool, error) {
	p, ok := n.LookProperty(name)
	if !ok {
		return 0, false, nil
	}
	v, err := p.AsU32()
	if err != nil {
		return 0, true, &ErrPropertyType{Node: n.Name, Property: name, Want: "32-bit cell", Len: len(p.Value)}
	}
	return v, true, nil
}

// SetU32 stores v as a single big-endian cell.
func SetU32(n *dt.Node, name string, v uint32) {
	SetProperty(n, name, EncodeU32List([]uint32{v}))
}

// U32List returns a list of 32-bit cells. A missing property reads as an
// empty list.
func U32List(n *dt.Node, name string) ([]uint32, error) {
	p, ok := n.LookProperty(name)
	if !ok {
		return nil, nil
	}
	if len(p.Value)%4 != 0 {
		return nil, &ErrPropertyType{Node: n.Name, Property: name, Want: "list of 32-bit cells", Len: len(p.Value)}
	}
	l := make([]uint32, len(p.Value)/4)
	for i := range l {
		l[i] = binary.BigEndian.Uint32(p.Value[i*4:])
	}
	return l, nil
}

// SetU32List stores l as big-endian cells.
func SetU32List(n *dt.Node, name string, l []uint32) {
	SetProperty(n, name, EncodeU32List(l))
}

// EncodeU32List returns the big-endian cell encoding of l.
func EncodeU32List(l []uint32) []byte {
	b := make([]byte, 4*len(l))
	for i, v := range l {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return b
}
