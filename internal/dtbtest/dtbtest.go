// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dtbtest builds device tree fixtures for tests. Blobs are encoded
// here by hand, independently of the codec under test.
package dtbtest

import (
	"encoding/binary"

	"github.com/u-root/u-root/pkg/dt"
)

const (
	magic     = 0xd00dfeed
	beginNode = 0x1
	endNode   = 0x2
	prop      = 0x3
	end       = 0x9

	version        = 17
	lastCompatible = 16
	headerLen      = 40
	rsvmapLen      = 16 // terminating all-zero entry only
)

// Node returns a node with the given properties and children.
func Node(name string, props []dt.Property, children ...*dt.Node) *dt.Node {
	return &dt.Node{Name: name, Properties: props, Children: children}
}

// Props is shorthand for a property slice.
func Props(p ...dt.Property) []dt.Property {
	return p
}

// Str returns a NUL-terminated string property.
func Str(name, v string) dt.Property {
	return dt.Property{Name: name, Value: append([]byte(v), 0)}
}

// Strs returns a string-list property.
func Strs(name string, l ...string) dt.Property {
	var b []byte
	for _, s := range l {
		b = append(b, s...)
		b = append(b, 0)
	}
	return dt.Property{Name: name, Value: b}
}

// U32s returns a property of big-endian cells.
func U32s(name string, l ...uint32) dt.Property {
	b := make([]byte, 4*len(l))
	for i, v := range l {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return dt.Property{Name: name, Value: b}
}

// Raw returns a property holding b verbatim.
func Raw(name string, b []byte) dt.Property {
	return dt.Property{Name: name, Value: b}
}

type builder struct {
	structs []byte
	strs    []byte
	offsets map[string]uint32
}

func (b *builder) cell(v uint32) {
	b.structs = binary.BigEndian.AppendUint32(b.structs, v)
}

func (b *builder) align() {
	for len(b.structs)%4 != 0 {
		b.structs = append(b.structs, 0)
	}
}

func (b *builder) stringOffset(name string) uint32 {
	if off, ok := b.offsets[name]; ok {
		return off
	}
	off := uint32(len(b.strs))
	b.strs = append(b.strs, name...)
	b.strs = append(b.strs, 0)
	b.offsets[name] = off
	return off
}

func (b *builder) node(n *dt.Node) {
	b.cell(beginNode)
	b.structs = append(b.structs, n.Name...)
	b.structs = append(b.structs, 0)
	b.align()
	for _, p := range n.Properties {
		b.cell(prop)
		b.cell(uint32(len(p.Value)))
		b.cell(b.stringOffset(p.Name))
		b.structs = append(b.structs, p.Value...)
		b.align()
	}
	for _, c := range n.Children {
		b.node(c)
	}
	b.cell(endNode)
}

// Build encodes root as a version 17 DTB with an empty reserve map.
func Build(root *dt.Node) []byte {
	b := &builder{offsets: map[string]uint32{}}
	b.node(root)
	b.cell(end)

	offStruct := uint32(headerLen + rsvmapLen)
	offStrings := offStruct + uint32(len(b.structs))
	total := offStrings + uint32(len(b.strs))

	out := make([]byte, 0, total)
	for _, v := range []uint32{
		magic,
		total,
		offStruct,
		offStrings,
		headerLen,
		version,
		lastCompatible,
		0, // boot_cpuid_phys
		uint32(len(b.strs)),
		uint32(len(b.structs)),
	} {
		out = binary.BigEndian.AppendUint32(out, v)
	}
	out = append(out, make([]byte, rsvmapLen)...)
	out = append(out, b.structs...)
	out = append(out, b.strs...)
	return out
}

// Board returns a small S32-style tree with the legacy SIUL2 nodes
// populated and their SCMI counterparts disabled and empty.
func Board() *dt.Node {
	return Node("", Props(Str("compatible", "nxp,s32g274a-rdb2"), U32s("#address-cells", 2)),
		Node("firmware", nil,
			Node("scmi", Props(Str("compatible", "arm,scmi-smc")),
				Node("protocol@80", Props(U32s("reg", 0x80), Str("status", "disabled"))),
				Node("protocol@81", Props(U32s("reg", 0x81), Str("status", "disabled"))),
				Node("protocol@82", Props(
					U32s("reg", 0x82),
					U32s("nvmem-cells", 0x20, 0x21),
					Strs("nvmem-cell-names", "soc_revision", "serdes_presence"),
					Str("status", "disabled"),
				)),
			),
		),
		Node("soc", Props(Str("compatible", "simple-bus")),
			Node("siul2-pinctrl@4009c240", Props(
				Str("compatible", "nxp,s32cc-siul2-pinctrl"),
				U32s("phandle", 0x10),
				Str("status", "okay"),
			),
				Node("uart0-pins", Props(U32s("phandle", 0x11)),
					Node("uart0-grp0", Props(U32s("pinmux", 0x122, 0x2a1))),
				),
				Node("i2c0-pins", Props(U32s("phandle", 0x12), Raw("bias-pull-up", nil))),
			),
			Node("siul2-gpio@4009d700", Props(
				Str("compatible", "nxp,s32cc-siul2-gpio"),
				U32s("phandle", 0x13),
				Raw("gpio-controller", nil),
				Str("status", "okay"),
			),
				Node("gpio-hog", Props(U32s("gpios", 4, 0))),
			),
			Node("nvmem@4009c000", Props(U32s("phandle", 0x30)),
				Node("soc_revision@0", Props(U32s("phandle", 0x31))),
				Node("serdes_presence@4", Props(U32s("phandle", 0x32))),
			),
			Node("ethernet@4033c000", Props(
				U32s("nvmem-cells", 0x31, 0x32, 0x33),
				Strs("nvmem-cell-names", "soc_revision", "serdes_presence", "mac_address"),
			)),
			Node("pcie@40400000", Props(
				U32s("nvmem-cells", 0x32),
				Strs("nvmem-cell-names", "serdes_presence"),
			)),
		),
	)
}
