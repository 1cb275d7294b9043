package asha

import "testing"

// buildTestProgram decodes a slice of words at 4-byte-aligned, 0-based
// addresses into a Program, skipping anything that fails to decode.
func buildTestProgram(words []uint32) Program {
	prog := make(Program)
	for i, w := range words {
		addr := uint64(i * 4)
		if insn, ok := Decode(w); ok {
			prog[addr] = Decoded{Address: addr, Word: w, Insn: insn}
		}
	}
	return prog
}

// TestBuildBlocksSplitsAtBranchTargets exercises the REDESIGN FLAG 1 fix:
// a block must split before an address some other instruction branches
// into, even when that address falls in the middle of what would
// otherwise be one straight-line run.
//
//	addr 0:  addi x0, x0, 0
//	addr 4:  addi x0, x0, 0
//	addr 8:  beq  x0, x0, 8   -> target addr 16
//	addr 12: addi x0, x0, 0
//	addr 16: addi x0, x0, 0   (branch target; must start its own block)
func TestBuildBlocksSplitsAtBranchTargets(t *testing.T) {
	words := []uint32{0x00000013, 0x00000013, 0x00000463, 0x00000013, 0x00000013}
	prog := buildTestProgram(words)

	blocks := BuildBlocks(prog)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(blocks), blocks)
	}

	if blocks[0].Start != 0 || blocks[0].End != 8 || blocks[0].BranchKind != BranchConditional {
		t.Errorf("block 0: %+v", blocks[0])
	}
	if blocks[1].Start != 12 || blocks[1].End != 12 || blocks[1].BranchKind != BranchNone {
		t.Errorf("block 1 should be the artificially-split [12,12] block: %+v", blocks[1])
	}
	if blocks[2].Start != 16 || blocks[2].End != 16 {
		t.Errorf("block 2 should start at the branch target, address 16: %+v", blocks[2])
	}
}

func TestBuildBlocksSplitsAfterUnconditionalJump(t *testing.T) {
	// jal x0, 8 at address 0 (goto-style, rd=zero): target = 0+8 = 8.
	// The block ends after the jal, and address 8, being the jump target,
	// starts a block of its own: [0,0], [4,4], [8,8].
	jal := uint32(0x0080006f)
	words := []uint32{jal, 0x00000013, 0x00000013}
	prog := buildTestProgram(words)

	blocks := BuildBlocks(prog)
	if len(blocks) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(blocks), blocks)
	}
	if blocks[0].BranchKind != BranchUnconditional {
		t.Errorf("block 0 should end in an unconditional branch: %+v", blocks[0])
	}
}
