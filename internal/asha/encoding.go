package asha

// Bit-field extraction and sign extension for 32-bit RISC-V instruction
// words. Grounded on original_source/src/fields.rs's retrieve! macro and
// disassembly.rs's convert_to_signed.

// validWord rejects the all-zero and all-one words plus anything whose
// low two bits are not 0b11 (we only decode the 32-bit instruction form).
func validWord(w uint32) bool {
	if w == 0 || w == 0xFFFFFFFF {
		return false
	}
	return w&0b11 == 0b11
}

func opcodeOf(w uint32) uint32 { return (w >> 2) & 0b11111 }
func rdOf(w uint32) uint32     { return (w >> 7) & 0b11111 }
func rs1Of(w uint32) uint32    { return (w >> 15) & 0b11111 }
func rs2Of(w uint32) uint32    { return (w >> 20) & 0b11111 }
func funct3Of(w uint32) uint32 { return (w >> 12) & 0b111 }
func funct7Of(w uint32) uint32 { return (w >> 25) & 0b1111111 }

func iImmRaw(w uint32) uint32 { return (w >> 20) & 0xfff }

func sImmRaw(w uint32) uint32 {
	return ((w >> 25) & 0x7f << 5) | ((w >> 7) & 0x1f)
}

func bImmRaw(w uint32) uint32 {
	return ((w >> 31 & 0x1) << 12) |
		((w >> 7 & 0x1) << 11) |
		((w >> 25 & 0x3f) << 5) |
		((w >> 8 & 0xf) << 1)
}

func uImmRaw(w uint32) uint32 { return (w >> 12) & 0xfffff }

func jImmRaw(w uint32) uint32 {
	return ((w >> 31 & 0x1) << 20) |
		((w >> 12 & 0xff) << 12) |
		((w >> 20 & 0x1) << 11) |
		((w >> 21 & 0x3ff) << 1)
}

// signExtend treats v as the low `bits` bits of a two's-complement value
// and sign-extends it to an int64: v - 2^bits when v's sign bit is set,
// v unchanged otherwise.
func signExtend(v uint32, bits uint) int64 {
	v &= uint32(1)<<bits - 1
	if v >= uint32(1)<<(bits-1) {
		return int64(v) - int64(uint32(1)<<bits)
	}
	return int64(v)
}
