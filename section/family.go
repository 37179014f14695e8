// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package section resolves the canonical cross-section family of a
// structural member and maps normalized dimensions into the named
// parameter record each profile builder expects, filling
// engineering-plausible defaults for missing fields.
package section

//go:generate stringer -type=Family

// Family is the closed set of cross-section families. Exactly one
// family is assigned per section; unknown or ambiguous input resolves
// to [Rectangle], the documented default, never to an error.
type Family int32

const (
	// Rectangle is a solid rectangular section, and the default for
	// anything unrecognized.
	Rectangle Family = iota

	// Circle is a solid round section.
	Circle

	// H is a wide-flange (I/H) steel section.
	H

	// Box is a hollow rectangular section.
	Box

	// Pipe is a hollow round section.
	Pipe

	// C is a channel section.
	C

	// L is an angle section.
	L

	// T is a tee section.
	T

	// CrossH is two perpendicular H arms (cross column).
	CrossH

	FamilyN
)
