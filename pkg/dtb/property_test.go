// Copyright 2023 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dtb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/scmidtb/internal/dtbtest"
)

func TestStringProperties(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.Str("status", "okay"),
		dtbtest.Raw("bad", []byte("noterm")),
	))

	s, ok, err := String(n, "status")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "okay", s)

	_, ok, err = String(n, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = String(n, "bad")
	var errType *ErrPropertyType
	require.True(t, errors.As(err, &errType))

	SetString(n, "status", "disabled")
	s, _, _ = String(n, "status")
	require.Equal(t, "disabled", s)
	require.Equal(t, "status", n.Properties[0].Name, "overwrite must keep the property in place")

	SetString(n, "new", "x")
	require.Equal(t, "new", n.Properties[len(n.Properties)-1].Name)
}

func TestStringList(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.Strs("names", "a", "b", ""),
		dtbtest.Raw("empty", nil),
		dtbtest.Raw("bad", []byte{'a', 0, 'b'}),
	))

	l, err := StringList(n, "names")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", ""}, l)

	l, err = StringList(n, "empty")
	require.NoError(t, err)
	require.Empty(t, l)

	l, err = StringList(n, "missing")
	require.NoError(t, err)
	require.Empty(t, l)

	_, err = StringList(n, "bad")
	require.Error(t, err)

	SetStringList(n, "names", []string{"x", "y"})
	l, _ = StringList(n, "names")
	require.Equal(t, []string{"x", "y"}, l)
}

func TestU32Properties(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.U32s("phandle", 0x1234),
		dtbtest.U32s("cells", 1, 2, 3),
		dtbtest.Raw("odd", []byte{1, 2, 3}),
		dtbtest.Raw("flag", nil),
	))

	v, ok, err := U32(n, "phandle")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint32(0x1234), v)

	_, _, err = U32(n, "cells")
	require.Error(t, err)

	l, err := U32List(n, "cells")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2, 3}, l)

	_, err = U32List(n, "odd")
	require.Error(t, err)

	SetU32List(n, "cells", []uint32{9})
	l, _ = U32List(n, "cells")
	require.Equal(t, []uint32{9}, l)

	SetU32(n, "phandle", 5)
	v, _, _ = U32(n, "phandle")
	require.Equal(t, uint32(5), v)

	for name, want := range map[string]bool{"cells": true, "phandle": true, "odd": false, "flag": false} {
		p, ok := Property(n, name)
		require.True(t, ok)
		require.Equal(t, want, IsU32List(p), name)
	}
}

func TestRemoveProperty(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.U32s("a", 1), dtbtest.U32s("b", 2), dtbtest.U32s("c", 3), dtbtest.U32s("d", 4)))
	require.True(t, RemoveProperty(n, "b"))
	require.False(t, RemoveProperty(n, "b"))

	var names []string
	for _, p := range n.Properties {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"a", "c", "d"}, names, "remaining properties keep their order")
}

func TestStringListSeveralEntries(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.Strs("nvmem-cell-names", "soc_revision", "serdes_presence", "mac_address")))
	l, err := StringList(n, "nvmem-cell-names")
	require.NoError(t, err)
	require.Equal(t, []string{"soc_revision", "serdes_presence", "mac_address"}, l)
}

func TestSetPropertyKeepsPosition(t *testing.T) {
	n := dtbtest.Node("n", dtbtest.Props(
		dtbtest.Str("compatible", "x"), dtbtest.Str("status", "okay"), dtbtest.U32s("reg", 1)))
	SetString(n, "status", "disabled")
	require.Equal(t, "status", n.Properties[1].Name)
	require.Len(t, n.Properties, 3)
	s, _, err := String(n, "status")
	require.NoError(t, err)
	require.Equal(t, "disabled", s)
}
