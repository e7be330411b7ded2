// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for norman/core.
//
// Purpose:
//   - Provide small, deterministic AMR fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/norman/core"
)

// Common variables used across core tests.
const (
	VarW = "w"
	VarB = "b"
	VarG = "g"
)

// wantBoyGo builds "(w / want-01 :ARG0 (b / boy) :ARG1 (g / go-02 :ARG0 b :polarity -))".
func wantBoyGo() *core.Graph {
	return core.NewBuilder(VarW).
		Instance(VarW, "want-01").
		Add(VarW, "ARG0", VarB).
		Instance(VarB, "boy").
		Add(VarW, "ARG1", VarG).
		Instance(VarG, "go-02").
		Add(VarG, "ARG0", VarB).
		Add(VarG, "polarity", "-").
		Graph()
}
