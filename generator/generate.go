// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package generator

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/stbgeom/stbgeom/dims"
	"github.com/stbgeom/stbgeom/loft"
	"github.com/stbgeom/stbgeom/math32"
	"github.com/stbgeom/stbgeom/placement"
	"github.com/stbgeom/stbgeom/profile"
	"github.com/stbgeom/stbgeom/section"
	"github.com/stbgeom/stbgeom/variant"
)

// Generate runs the pipeline over a batch of elements. Elements are
// independent; any data problem surfaces as a reason-tagged skip and
// processing continues with the next element. The only non-nil error
// is context cancellation, checked between elements; the partial
// batch built so far is returned alongside it.
func Generate(ctx context.Context, gc *Context, elems []Element) (*Batch, error) {
	batch := &Batch{}
	log := gc.logger()
	for i := range elems {
		select {
		case <-ctx.Done():
			return batch, ctx.Err()
		default:
		}
		el := &elems[i]
		solids, skip := gc.generate(el)
		if skip != nil {
			log.Warn("skipping element",
				"element", el.ID, "kind", el.Kind.String(),
				"reason", skip.Reason.String(), "err", skip.Err)
			batch.Skipped = append(batch.Skipped, *skip)
			continue
		}
		log.Debug("generated element",
			"element", el.ID, "kind", el.Kind.String(), "solids", len(solids))
		batch.Solids = append(batch.Solids, solids...)
	}
	return batch, nil
}

// generate dispatches one element by kind.
func (gc *Context) generate(el *Element) ([]*Solid, *Skip) {
	switch {
	case el.Kind < 0 || el.Kind >= KindN:
		return nil, skipOf(el, SkipUnknownKind, ErrUnknownKind)
	case el.Kind.planar():
		return gc.planar(el)
	default:
		return gc.linear(el)
	}
}

func skipOf(el *Element, reason SkipReason, err error) *Skip {
	return &Skip{ElementID: el.ID, Kind: el.Kind, Reason: reason, Err: err}
}

// anchors resolves the element's spatial points: node references
// through the node map, or raw coordinates for JSON-sourced input.
func (gc *Context) anchors(el *Element) ([]math32.Vector3, bool) {
	if len(el.NodeIDs) > 0 {
		if gc.Nodes == nil {
			return nil, false
		}
		pts := make([]math32.Vector3, len(el.NodeIDs))
		for i, id := range el.NodeIDs {
			p, ok := gc.Nodes.Node(id)
			if !ok {
				return nil, false
			}
			pts[i] = p
		}
		return pts, true
	}
	return el.Coords, len(el.Coords) > 0
}

func (gc *Context) sectionOf(el *Element) (*SectionRecord, bool) {
	if gc.Sections == nil {
		return nil, false
	}
	sec, ok := gc.Sections.Section(el.SectionID)
	return sec, ok && sec != nil
}

// resolveDims produces the normalized dimensions for one section
// descriptor, trying the named steel-shape catalog first, then the
// descriptor's own attributes, then the section record's.
func (gc *Context) resolveDims(sec *SectionRecord, desc *variant.Descriptor) (*dims.Dimensions, ProfileSource) {
	if desc != nil && desc.Shape != "" && gc.SteelShapes != nil {
		if bag, ok := gc.SteelShapes.SteelShape(desc.Shape); ok {
			if d := dims.Normalize(bag); d != nil {
				return d, SourceIFCEquivalent
			}
		}
	}
	if desc != nil {
		if d := dims.Normalize(desc.Attrs); d != nil {
			return d, SourceCalculator
		}
	}
	if d := dims.Normalize(sec.Attrs); d != nil {
		return d, SourceCalculator
	}
	return nil, SourceFallback
}

// primaryDescriptor picks the descriptor the primary profile is built
// from: the uniform one, else the first positioned variant.
func primaryDescriptor(ex *variant.Expansion) *variant.Descriptor {
	switch {
	case ex.Uniform != nil:
		return ex.Uniform
	case len(ex.Variants) > 0:
		return &ex.Variants[0]
	case len(ex.MultiSection) > 0:
		return &ex.MultiSection[0]
	}
	return nil
}

func (gc *Context) metaOf(el *Element, sec *SectionRecord, fam section.Family, src ProfileSource) Meta {
	return Meta{
		ID:          uuid.New(),
		ElementID:   el.ID,
		ElementName: el.Name,
		Kind:        el.Kind,
		Family:      fam,
		Source:      src,
		Raw:         sec.Attrs,
	}
}

// linear generates a two-anchor member: columns, posts, beams,
// girders, braces, and piles.
func (gc *Context) linear(el *Element) ([]*Solid, *Skip) {
	pts, ok := gc.anchors(el)
	if !ok || len(pts) < 2 {
		return nil, skipOf(el, SkipMissingNodes, ErrMissingNodes)
	}
	sec, ok := gc.sectionOf(el)
	if !ok {
		return nil, skipOf(el, SkipMissingSection, ErrMissingSection)
	}

	ex := variant.Expand(sec.Variants)
	d, src := gc.resolveDims(sec, primaryDescriptor(ex))
	if d == nil || ex.Source == variant.SourceFallback {
		src = SourceFallback
	}
	fam := section.Classify(d, sec.SteelType)
	prof := profile.Build(section.MapParams(d, fam))
	if !prof.NonDegenerate() {
		return nil, skipOf(el, SkipDegenerateProfile, ErrDegenerateProfile)
	}

	roll := el.Roll + section.ReferenceRotation(el.ReferenceDirection)
	var pl *placement.Placement
	var err error
	if el.Kind.vertical() {
		pl, err = placement.Vertical(pts[0], pts[1],
			math32.Vec2(el.StartOffset.X, el.StartOffset.Y),
			math32.Vec2(el.EndOffset.X, el.EndOffset.Y), roll)
	} else {
		mode := placement.AlignCenter
		if el.Kind == Girder || el.Kind == Beam {
			mode = placement.AlignTop
		}
		pl, err = placement.Horizontal(pts[0], pts[1],
			el.StartOffset, el.EndOffset, roll, mode, prof.Height())
	}
	if err != nil {
		if errors.Is(err, placement.ErrZeroLength) {
			return nil, skipOf(el, SkipInvalidLength, err)
		}
		return nil, skipOf(el, SkipDegenerateGeometry, err)
	}

	solid := &Solid{
		Profile:   prof,
		Placement: pl,
		Family:    fam,
		Meta:      gc.metaOf(el, sec, fam, src),
	}

	switch {
	case el.Kind == Pile && d != nil && d.Pile != dims.PileStraight:
		lsol, err := pileLoft(d, pl.Length)
		if err != nil {
			return nil, skipOf(el, SkipDegenerateGeometry, err)
		}
		solid.Loft = lsol
	case ex.Source == variant.SourceMultiSection ||
		(ex.Source == variant.SourceNotSame && len(ex.Variants) > 1):
		lsol, err := gc.variantLoft(sec, ex, fam, pl.Length)
		if err != nil {
			return nil, skipOf(el, SkipDegenerateProfile, err)
		}
		solid.Loft = lsol
	}

	solids := []*Solid{solid}
	if sec.BasePlate != nil && (el.Kind == Column || el.Kind == FoundationColumn) {
		if bp := gc.basePlate(el, sec, pts[0]); bp != nil {
			solids = append(solids, bp)
		}
	}
	return solids, nil
}

// posT maps a variant axial position to a normalized station
// parameter.
func posT(p variant.Position) float32 {
	switch p {
	case variant.PosBottom:
		return 0
	case variant.PosCenter:
		return 0.5
	default:
		return 1
	}
}

// segmentLengthKeys are the descriptor attributes carrying an
// explicit axial run length for the segment starting at that station
// (the haunch/joint transition zone), in priority order.
var segmentLengthKeys = []string{"length", "Length", "length_haunch", "segment_length"}

func descriptorSegmentLength(b *dims.Bag) float32 {
	for _, key := range segmentLengthKeys {
		if v, ok := b.Float(key); ok && v > 0 {
			return v
		}
	}
	return 0
}

// variantLoft lofts a multi-section member from its positioned
// variant descriptors. Every station profile is regenerated through
// the primary family so consecutive cross-sections share vertex
// counts. Members whose markup does not reach both ends get the
// nearest profile extended to the end (uniform outer segments). A
// descriptor carrying an explicit length attribute fixes the axial
// run of the segment starting at its station; segments without one
// share the remaining span.
func (gc *Context) variantLoft(sec *SectionRecord, ex *variant.Expansion, fam section.Family, length float32) (*loft.Solid, error) {
	descs := ex.MultiSection
	if ex.Source == variant.SourceNotSame {
		descs = ex.Variants
	}

	type station struct {
		loft.Station
		segLen float32
	}
	var sts []station
	for i := range descs {
		d, _ := gc.resolveDims(sec, &descs[i])
		prof := profile.Build(section.MapParams(d, fam))
		if !prof.NonDegenerate() {
			continue
		}
		sts = append(sts, station{
			Station: loft.At(posT(descs[i].Pos), prof),
			segLen:  descriptorSegmentLength(descs[i].Attrs),
		})
	}
	sort.SliceStable(sts, func(i, j int) bool {
		return sts[i].T < sts[j].T
	})
	// first descriptor wins when two share one position
	uniq := sts[:0]
	for _, st := range sts {
		if len(uniq) > 0 && st.T == uniq[len(uniq)-1].T {
			continue
		}
		uniq = append(uniq, st)
	}
	sts = uniq

	if len(sts) < 2 {
		return nil, loft.ErrTooFewStations
	}
	if sts[0].T > 0 {
		sts = append([]station{{Station: loft.Bottom(sts[0].Profile)}}, sts...)
	}
	if last := sts[len(sts)-1]; last.T < 1 {
		sts = append(sts, station{Station: loft.Top(last.Profile), segLen: 0})
	}

	spec := &loft.Spec{Stations: make([]loft.Station, len(sts))}
	overrides := make([]float32, len(sts)-1)
	hasOverride := false
	for i, st := range sts {
		spec.Stations[i] = st.Station
		if i < len(sts)-1 {
			overrides[i] = st.segLen
			if st.segLen > 0 {
				hasOverride = true
			}
		}
	}
	if hasOverride {
		spec.SegmentLengths = overrides
	}
	return loft.Build(spec, length)
}

// basePlate emits the rectangular base-plate solid at the column
// foot, or nil when the base-plate attributes are unusable.
func (gc *Context) basePlate(el *Element, sec *SectionRecord, bottom math32.Vector3) *Solid {
	d := dims.Normalize(sec.BasePlate)
	if d == nil {
		return nil
	}
	w := d.Width.Or(0)
	h := d.Height.Or(w)
	t := d.Thickness.Or(0)
	if w <= 0 || h <= 0 || t <= 0 {
		gc.logger().Debug("unusable base plate", "element", el.ID)
		return nil
	}
	prof := profile.Build(section.RectangleParams{Width: w, Height: h})
	if !prof.NonDegenerate() {
		return nil
	}
	pl, err := placement.Vertical(bottom, bottom.Add(math32.Vec3(0, 0, t)),
		math32.Vector2{}, math32.Vector2{}, 0)
	if err != nil {
		return nil
	}
	meta := gc.metaOf(el, sec, section.Rectangle, SourceCalculator)
	meta.Raw = sec.BasePlate
	return &Solid{
		Profile:   prof,
		Placement: pl,
		Family:    section.Rectangle,
		Meta:      meta,
	}
}
