// Copyright (c) 2026, The StbGeom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stbgeom/stbgeom/generator"
)

var (
	flagOut     string
	flagVerbose bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <model.json>",
	Short: "Generate placed solids from a JSON structural model",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write generated solids as JSON to this file")
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log per-element detail")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var model jsonModel
	if err := json.Unmarshal(data, &model); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	nodes, sections, shapes, elems := model.convert()
	gc := &generator.Context{
		Nodes:       nodes,
		Sections:    sections,
		SteelShapes: shapes,
		Logger:      logger,
	}
	batch, err := generator.Generate(cmd.Context(), gc, elems)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d elements: %d solids, %d skipped\n",
		len(elems), len(batch.Solids), len(batch.Skipped))
	counts := batch.SkipCounts()
	for r := generator.SkipReason(0); r < generator.SkipReasonN; r++ {
		if n := counts[r]; n > 0 {
			fmt.Fprintf(out, "  %s: %d\n", r, n)
		}
	}

	if flagOut == "" {
		return nil
	}
	return writeSolids(flagOut, batch)
}

// jsonSolid is the flat JSON rendition of one generated solid.
type jsonSolid struct {
	ID        string  `json:"id"`
	Element   string  `json:"element"`
	Kind      string  `json:"kind"`
	Family    string  `json:"family"`
	Source    string  `json:"source"`
	Center    jsonVec `json:"center"`
	Direction jsonVec `json:"direction"`
	Length    float32 `json:"length"`
	Roll      float32 `json:"roll"`
	Lofted    bool    `json:"lofted"`
}

func writeSolids(path string, batch *generator.Batch) error {
	solids := make([]jsonSolid, 0, len(batch.Solids))
	for _, s := range batch.Solids {
		solids = append(solids, jsonSolid{
			ID:        s.Meta.ID.String(),
			Element:   s.Meta.ElementID,
			Kind:      s.Meta.Kind.String(),
			Family:    s.Family.String(),
			Source:    s.Meta.Source.String(),
			Center:    jsonVec{s.Placement.Center.X, s.Placement.Center.Y, s.Placement.Center.Z},
			Direction: jsonVec{s.Placement.Direction.X, s.Placement.Direction.Y, s.Placement.Direction.Z},
			Length:    s.Placement.Length,
			Roll:      s.Placement.RollAngle,
			Lofted:    s.Loft != nil,
		})
	}
	data, err := json.MarshalIndent(solids, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o666)
}
