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

func TestAppendChild(t *testing.T) {
	parent := dtbtest.Node("parent", nil, dtbtest.Node("a", nil))

	require.NoError(t, AppendChild(parent, dtbtest.Node("b", nil)))
	require.Len(t, parent.Children, 2)
	require.Equal(t, "b", parent.Children[1].Name)

	err := AppendChild(parent, dtbtest.Node("a", nil))
	var errDup *ErrDuplicateNode
	require.True(t, errors.As(err, &errDup))
	require.Equal(t, "a", errDup.Name)
	require.Len(t, parent.Children, 2)
}

func TestRemoveChild(t *testing.T) {
	parent := dtbtest.Node("parent", nil,
		dtbtest.Node("a", nil), dtbtest.Node("b", nil), dtbtest.Node("c", nil))

	require.True(t, RemoveChild(parent, "b"))
	require.False(t, RemoveChild(parent, "b"))
	require.Len(t, parent.Children, 2)
	require.Equal(t, "a", parent.Children[0].Name)
	require.Equal(t, "c", parent.Children[1].Name)

	_, ok := Child(parent, "c")
	require.True(t, ok)
	_, ok = Child(parent, "b")
	require.False(t, ok)
}

func TestCopyNodeIsDeep(t *testing.T) {
	orig := dtbtest.Node("pins", dtbtest.Props(dtbtest.U32s("phandle", 7)),
		dtbtest.Node("grp0", dtbtest.Props(dtbtest.U32s("pinmux", 1, 2))))

	c := CopyNode(orig)
	require.Equal(t, orig, c)

	c.Properties[0].Value[3] = 9
	c.Children[0].Name = "renamed"
	SetString(c.Children[0], "status", "okay")

	v, _, err := U32(orig, "phandle")
	require.NoError(t, err)
	require.Equal(t, uint32(7), v)
	require.Equal(t, "grp0", orig.Children[0].Name)
	require.Len(t, orig.Children[0].Properties, 1)
}
