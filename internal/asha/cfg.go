package asha

import "sort"

// Jump Resolver (spec.md §4.4): computes each block's successor edges.
//
//   - BranchConditional: branch-target edge first (if resolvable), then
//     the fallthrough edge to the next block in address order.
//   - BranchUnconditional (J-type): the target edge if resolvable,
//     otherwise the fallthrough edge (this also covers the call/goto
//     supplement, SPEC_FULL.md §9: an unresolved call target still
//     gets a fallthrough edge modeling "returns here").
//   - BranchNone: a single fallthrough edge to the next block, if one
//     exists (this is the common case after target-splitting, and also
//     covers a program that simply runs off the end of .text).
//
// A target that doesn't land inside any known block's [Start,End] range
// (over/underflowed already by addSigned, or simply outside the decoded
// program) resolves to no target edge; the rules above then decide
// whether a fallthrough edge is added.
type CFG struct {
	Blocks []*Block
	byID   map[int]*Block
}

// BuildCFG resolves successor edges for an address-ordered slice of
// blocks (as returned by BuildBlocks) and returns the assembled graph.
func BuildCFG(prog Program, blocks []*Block) *CFG {
	cfg := &CFG{Blocks: blocks, byID: make(map[int]*Block, len(blocks))}
	for _, b := range blocks {
		cfg.byID[b.ID] = b
	}

	starts := make([]uint64, len(blocks))
	for i, b := range blocks {
		starts[i] = b.Start
	}

	blockContaining := func(addr uint64) (*Block, bool) {
		i := sort.Search(len(blocks), func(i int) bool { return starts[i] > addr })
		if i == 0 {
			return nil, false
		}
		b := blocks[i-1]
		if addr >= b.Start && addr <= b.End {
			return b, true
		}
		return nil, false
	}

	for i, b := range blocks {
		var fallthroughID = -1
		if i+1 < len(blocks) {
			fallthroughID = blocks[i+1].ID
		}

		var target *Block
		var hasTarget bool
		if b.BranchKind == BranchConditional || b.BranchKind == BranchUnconditional {
			last := b.Last(prog)
			var imm int32
			switch t := last.Insn.(type) {
			case BType:
				imm = t.Imm
			case JType:
				imm = t.Imm
			}
			if tgt, ok := addSigned(last.Address, int64(imm)); ok {
				target, hasTarget = blockContaining(tgt)
			}
		}

		var succ []int
		switch b.BranchKind {
		case BranchConditional:
			if hasTarget {
				succ = append(succ, target.ID)
			}
			if fallthroughID != -1 {
				succ = append(succ, fallthroughID)
			}
		case BranchUnconditional:
			if hasTarget {
				succ = append(succ, target.ID)
			} else if fallthroughID != -1 {
				succ = append(succ, fallthroughID)
			}
		case BranchNone:
			if fallthroughID != -1 {
				succ = append(succ, fallthroughID)
			}
		}
		b.Successors = succ
	}

	return cfg
}

// Block looks up a block by id.
func (c *CFG) Block(id int) (*Block, bool) {
	b, ok := c.byID[id]
	return b, ok
}
