package asha

import (
	"encoding/binary"
	"log"
	"sort"
)

// Decoded pairs a decoded instruction with its address and raw word, the
// unit the listing mode prints a line for.
type Decoded struct {
	Address uint64
	Word    uint32
	Insn    Instruction
}

// Program is the ordered mapping from code address to decoded
// instruction (spec.md §3). Addresses not present were skipped during
// decode (DecodeSkip) or fell outside a 4-byte-aligned, fully-decoded
// word.
type Program map[uint64]Decoded

// Addresses returns the program's addresses in ascending order.
func (p Program) Addresses() []uint64 {
	addrs := make([]uint64, 0, len(p))
	for a := range p {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// DecodeText decodes a `.text`-style byte slice loaded at base into a
// Program, walking it four bytes at a time as little-endian words.
// Trailing bytes that don't fill a whole word are ignored. Words that
// fail to decode are simply absent from the result (DecodeSkip); this
// is non-fatal, so it's reported with a single summary line rather than
// one log line per word.
func DecodeText(base uint64, data []byte) Program {
	prog := make(Program)
	n := len(data) - len(data)%4
	skipped := 0
	for i := 0; i < n; i += 4 {
		w := binary.LittleEndian.Uint32(data[i : i+4])
		addr := base + uint64(i)
		if insn, ok := Decode(w); ok {
			prog[addr] = Decoded{Address: addr, Word: w, Insn: insn}
		} else {
			skipped += 4
		}
	}
	if skipped > 0 {
		log.Printf("decode: skipped %d bytes while decoding", skipped)
	}
	return prog
}
