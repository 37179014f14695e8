// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "stbgeom",
	Short:         "Structural element geometry generation engine",
	Long:          "stbgeom converts ST-Bridge derived structural models into placed 3D solids.",
	SilenceUsage:  true,
	SilenceErrors: false,
}
