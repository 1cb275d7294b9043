package asha

import (
	"reflect"
	"testing"
)

func TestBuildCFGSuccessorOrder(t *testing.T) {
	// Same program as TestBuildBlocksSplitsAtBranchTargets: a conditional
	// branch at addr 8 targets addr 16, producing three blocks.
	words := []uint32{0x00000013, 0x00000013, 0x00000463, 0x00000013, 0x00000013}
	prog := buildTestProgram(words)
	blocks := BuildBlocks(prog)
	BuildCFG(prog, blocks)

	// block 0 (ends in beq): branch target first, then fallthrough.
	if !reflect.DeepEqual(blocks[0].Successors, []int{2, 1}) {
		t.Errorf("block 0 successors = %v, want [2 1] (target then fallthrough)", blocks[0].Successors)
	}
	// block 1 (plain fallthrough block): single successor, the next block.
	if !reflect.DeepEqual(blocks[1].Successors, []int{2}) {
		t.Errorf("block 1 successors = %v, want [2]", blocks[1].Successors)
	}
	// block 2 is the last block in the program: no fallthrough exists.
	if len(blocks[2].Successors) != 0 {
		t.Errorf("block 2 successors = %v, want none", blocks[2].Successors)
	}
}

func TestBuildCFGUnresolvedCallFallsThrough(t *testing.T) {
	// jal ra, a forward offset landing well outside the two-instruction
	// program below: no block contains the target address, so the call
	// still gets a fallthrough edge modeling "returns here" (SPEC_FULL.md §9).
	jalRa := uint32(0x7ffff0ef) // jal ra, <offset outside the program>
	words := []uint32{jalRa, 0x00000013}
	prog := buildTestProgram(words)
	blocks := BuildBlocks(prog)
	BuildCFG(prog, blocks)

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if !reflect.DeepEqual(blocks[0].Successors, []int{1}) {
		t.Errorf("block 0 successors = %v, want [1] (fallthrough after unresolved call)", blocks[0].Successors)
	}
}
