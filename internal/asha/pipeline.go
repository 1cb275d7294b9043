package asha

// Pseudocode runs the full pipeline (block building, CFG resolution,
// abstract-graph mirroring, and structural reduction) and returns the
// emitter's output lines for a decoded Program.
func Pseudocode(prog Program) []string {
	blocks := BuildBlocks(prog)
	cfg := BuildCFG(prog, blocks)
	g := NewAbstractGraph(cfg)

	byID := make(map[int]*Block, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}

	if len(blocks) > 0 {
		Reduce(g, blocks[0].ID)
	}

	return Emit(g, prog, byID)
}
