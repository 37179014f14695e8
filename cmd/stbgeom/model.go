// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"
	"strings"

	"github.com/stbgeom/stbgeom/dims"
	"github.com/stbgeom/stbgeom/generator"
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/variant"
)

// jsonVec is a 3D point or offset in the model file.
type jsonVec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func (v jsonVec) vec3() math32.Vector3 { return math32.Vec3(v.X, v.Y, v.Z) }

// jsonModel is the JSON structural model: node positions by ID,
// section records, an optional steel-shape catalog, and the element
// list.
type jsonModel struct {
	Nodes       map[string]jsonVec        `json:"nodes"`
	Sections    []jsonSection             `json:"sections"`
	SteelShapes map[string]map[string]any `json:"steel_shapes"`
	Elements    []jsonElement             `json:"elements"`
}

type jsonSection struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Attrs     map[string]any `json:"attrs"`
	SteelType string         `json:"steel_type"`
	Variants  []jsonVariant  `json:"variants"`
	BasePlate map[string]any `json:"base_plate"`
}

type jsonVariant struct {
	Tag      string         `json:"tag"`
	Shape    string         `json:"shape"`
	Pos      string         `json:"pos"`
	Length   float32        `json:"length"`
	Attrs    map[string]any `json:"attrs"`
	Children []jsonVariant  `json:"children"`
}

type jsonElement struct {
	ID                 string    `json:"id"`
	Kind               string    `json:"kind"`
	Name               string    `json:"name"`
	Nodes              []string  `json:"nodes"`
	Coords             []jsonVec `json:"coords"`
	Section            string    `json:"section"`
	StartOffset        jsonVec   `json:"start_offset"`
	EndOffset          jsonVec   `json:"end_offset"`
	Roll               float32   `json:"roll"`
	ReferenceDirection *bool     `json:"is_reference_direction"`
}

// bagOf converts a JSON attribute object into an attribute bag with
// sorted keys, so repeated runs see one deterministic order.
func bagOf(attrs map[string]any) *dims.Bag {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b := dims.NewBag()
	for _, k := range keys {
		b.Add(k, attrs[k])
	}
	return b
}

var kindNames = map[string]generator.Kind{
	"COLUMN":            generator.Column,
	"POST":              generator.Post,
	"GIRDER":            generator.Girder,
	"BEAM":              generator.Beam,
	"BRACE":             generator.Brace,
	"PILE":              generator.Pile,
	"FOUNDATION_COLUMN": generator.FoundationColumn,
	"FOOTING":           generator.Footing,
	"WALL":              generator.Wall,
	"SLAB":              generator.Slab,
}

// parseKind resolves an element kind name. Unknown names map past
// the dispatch table, so the generator skips them with a tagged
// reason instead of the CLI aborting the batch.
func parseKind(name string) generator.Kind {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	if k, ok := kindNames[key]; ok {
		return k
	}
	return generator.KindN
}

var posNames = map[string]variant.Position{
	"BOTTOM": variant.PosBottom,
	"CENTER": variant.PosCenter,
	"TOP":    variant.PosTop,
}

func parsePos(name string) variant.Position {
	if p, ok := posNames[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return p
	}
	return variant.PosUnset
}

func variantRecord(vs []jsonVariant) *variant.Record {
	if len(vs) == 0 {
		return nil
	}
	root := &variant.Record{}
	for _, v := range vs {
		root.Children = append(root.Children, variantOf(v))
	}
	return root
}

func variantOf(v jsonVariant) *variant.Record {
	r := &variant.Record{
		Tag:   v.Tag,
		Shape: v.Shape,
		Pos:   parsePos(v.Pos),
		Attrs: bagOf(v.Attrs),
	}
	// an explicit segment length rides along as an attribute
	if v.Length > 0 {
		if r.Attrs == nil {
			r.Attrs = dims.NewBag()
		}
		r.Attrs.Add("length", v.Length)
	}
	for _, c := range v.Children {
		r.Children = append(r.Children, variantOf(c))
	}
	return r
}

// convert builds the generator inputs from the parsed model.
func (m *jsonModel) convert() (generator.NodeMap, generator.SectionMap, generator.SteelShapeMap, []generator.Element) {
	nodes := generator.NodeMap{}
	for id, v := range m.Nodes {
		nodes[id] = v.vec3()
	}

	sections := generator.SectionMap{}
	for i := range m.Sections {
		s := &m.Sections[i]
		sections[s.ID] = &generator.SectionRecord{
			ID:        s.ID,
			Name:      s.Name,
			Attrs:     bagOf(s.Attrs),
			SteelType: s.SteelType,
			Variants:  variantRecord(s.Variants),
			BasePlate: bagOf(s.BasePlate),
		}
	}

	shapes := generator.SteelShapeMap{}
	for name, attrs := range m.SteelShapes {
		shapes[name] = bagOf(attrs)
	}

	elems := make([]generator.Element, 0, len(m.Elements))
	for _, e := range m.Elements {
		coords := make([]math32.Vector3, 0, len(e.Coords))
		for _, c := range e.Coords {
			coords = append(coords, c.vec3())
		}
		ref := dims.Unset
		if e.ReferenceDirection != nil {
			ref = dims.TristateOf(*e.ReferenceDirection)
		}
		elems = append(elems, generator.Element{
			ID:                 e.ID,
			Kind:               parseKind(e.Kind),
			Name:               e.Name,
			NodeIDs:            e.Nodes,
			Coords:             coords,
			SectionID:          e.Section,
			StartOffset:        e.StartOffset.vec3(),
			EndOffset:          e.EndOffset.vec3(),
			Roll:               e.Roll,
			ReferenceDirection: ref,
		})
	}
	return nodes, sections, shapes, elems
}
