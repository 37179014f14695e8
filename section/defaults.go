// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package section

import (
	_ "embed"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/stbgeom/stbgeom/base/errors"
)

//go:embed defaults.toml
var defaultsTOML []byte

// DefaultTable holds the per-family default parameters used when a
// normalized dimension record is missing a field.
type DefaultTable struct {
	Rectangle RectangleParams `toml:"rectangle"`
	Circle    CircleParams    `toml:"circle"`
	H         HParams         `toml:"h"`
	Box       BoxParams       `toml:"box"`
	Pipe      PipeParams      `toml:"pipe"`
	C         CParams         `toml:"c"`
	L         LParams         `toml:"l"`
	T         TParams         `toml:"t"`
	CrossH    CrossHParams    `toml:"cross_h"`
}

// defaults returns the embedded default parameter table,
// parsed once.
var defaults = sync.OnceValue(func() DefaultTable {
	var dt DefaultTable
	errors.Log(toml.Unmarshal(defaultsTOML, &dt))
	return dt
})
