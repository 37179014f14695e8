// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stbgeom is the command line front end of the geometry engine: it
// reads a JSON structural model (nodes, sections, elements), runs the
// generator, and reports the resulting solids and skips.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
