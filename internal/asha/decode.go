package asha

// Decoder: classifies a 32-bit word by opcode into one of six instruction
// formats, then looks up its mnemonic in a static table keyed by
// (opcode, funct3, funct7), with funct3/funct7 forced to zero wherever
// the format doesn't carry them. Grounded on
// original_source/src/fields.rs's Opcode enum and disassembly.rs's
// determine_type/from_bits, and cross-checked against
// LMMilewski-riscv-emu/decode.go's baseOpcode table for the RV32M
// extension this adds as a supplemental feature (see SPEC_FULL.md §9).

type instFormat int

const (
	fmtNone instFormat = iota
	fmtR
	fmtI
	fmtS
	fmtB
	fmtU
	fmtJ
)

// Opcode values, five bits wide (bits[6:2] of the word).
const (
	opLoad    = 0b00000
	opOpImm   = 0b00100
	opOpImm32 = 0b00110
	opStore   = 0b01000
	opOp      = 0b01100
	opLUI     = 0b01101
	opOp32    = 0b01110
	opBranch  = 0b11000
	opJALR    = 0b11001
	opJAL     = 0b11011
	opSystem  = 0b11100
	opAUIPC   = 0b00101
)

var opcodeFormat = map[uint32]instFormat{
	opLoad:    fmtI,
	opOpImm:   fmtI,
	opOpImm32: fmtI,
	opJALR:    fmtI,
	opSystem:  fmtI,
	opStore:   fmtS,
	opBranch:  fmtB,
	opAUIPC:   fmtU,
	opLUI:     fmtU,
	opJAL:     fmtJ,
	opOp:      fmtR,
	opOp32:    fmtR,
}

type decodeKey struct {
	opcode, funct3, funct7 uint32
}

// mnemonics is exhaustive over the RV32I/RV64I/Zicsr base instructions
// named in spec.md §4.2, plus the RV32M/RV64M multiply/divide extension
// (a supplement: the emitter's operator-lowering table already names
// mul/div/rem, so the decoder gives them a home rather than leaving that
// lowering rule permanently unreachable).
var mnemonics = map[decodeKey]string{
	// LOAD
	{opLoad, 0b000, 0}: "lb",
	{opLoad, 0b001, 0}: "lh",
	{opLoad, 0b010, 0}: "lw",
	{opLoad, 0b011, 0}: "ld",
	{opLoad, 0b100, 0}: "lbu",
	{opLoad, 0b101, 0}: "lhu",
	{opLoad, 0b110, 0}: "lwu",

	// OP_IMM (srli/srai disambiguated by funct7; all other funct3 force funct7=0)
	{opOpImm, 0b000, 0}:         "addi",
	{opOpImm, 0b010, 0}:         "slti",
	{opOpImm, 0b011, 0}:         "sltiu",
	{opOpImm, 0b100, 0}:         "xori",
	{opOpImm, 0b110, 0}:         "ori",
	{opOpImm, 0b111, 0}:         "andi",
	{opOpImm, 0b001, 0}:         "slli",
	{opOpImm, 0b101, 0b0000000}: "srli",
	{opOpImm, 0b101, 0b0100000}: "srai",

	// OP_IMM_32 (RV64 word-sized immediate ops)
	{opOpImm32, 0b000, 0}:         "addiw",
	{opOpImm32, 0b001, 0}:         "slliw",
	{opOpImm32, 0b101, 0b0000000}: "srliw",
	{opOpImm32, 0b101, 0b0100000}: "sraiw",

	// JALR
	{opJALR, 0b000, 0}: "jalr",

	// SYSTEM: ecall/ebreak collapsed to "syscall", plus the Zicsr surface
	{opSystem, 0b000, 0}: "syscall",
	{opSystem, 0b001, 0}: "csrrw",
	{opSystem, 0b010, 0}: "csrrs",
	{opSystem, 0b011, 0}: "csrrc",
	{opSystem, 0b101, 0}: "csrrwi",
	{opSystem, 0b110, 0}: "csrrsi",
	{opSystem, 0b111, 0}: "csrrci",

	// STORE
	{opStore, 0b000, 0}: "sb",
	{opStore, 0b001, 0}: "sh",
	{opStore, 0b010, 0}: "sw",
	{opStore, 0b011, 0}: "sd",

	// BRANCH
	{opBranch, 0b000, 0}: "beq",
	{opBranch, 0b001, 0}: "bne",
	{opBranch, 0b100, 0}: "blt",
	{opBranch, 0b101, 0}: "bge",
	{opBranch, 0b110, 0}: "bltu",
	{opBranch, 0b111, 0}: "bgeu",

	// OP (R-type, base + M extension)
	{opOp, 0b000, 0b0000000}: "add",
	{opOp, 0b000, 0b0100000}: "sub",
	{opOp, 0b001, 0b0000000}: "sll",
	{opOp, 0b010, 0b0000000}: "slt",
	{opOp, 0b011, 0b0000000}: "sltu",
	{opOp, 0b100, 0b0000000}: "xor",
	{opOp, 0b101, 0b0000000}: "srl",
	{opOp, 0b101, 0b0100000}: "sra",
	{opOp, 0b110, 0b0000000}: "or",
	{opOp, 0b111, 0b0000000}: "and",
	{opOp, 0b000, 0b0000001}: "mul",
	{opOp, 0b001, 0b0000001}: "mulh",
	{opOp, 0b010, 0b0000001}: "mulhsu",
	{opOp, 0b011, 0b0000001}: "mulhu",
	{opOp, 0b100, 0b0000001}: "div",
	{opOp, 0b101, 0b0000001}: "divu",
	{opOp, 0b110, 0b0000001}: "rem",
	{opOp, 0b111, 0b0000001}: "remu",

	// OP_32 (RV64 word-sized register ops, base + M extension)
	{opOp32, 0b000, 0b0000000}: "addw",
	{opOp32, 0b000, 0b0100000}: "subw",
	{opOp32, 0b001, 0b0000000}: "sllw",
	{opOp32, 0b101, 0b0000000}: "srlw",
	{opOp32, 0b101, 0b0100000}: "sraw",
	{opOp32, 0b000, 0b0000001}: "mulw",
	{opOp32, 0b100, 0b0000001}: "divw",
	{opOp32, 0b101, 0b0000001}: "divuw",
	{opOp32, 0b110, 0b0000001}: "remw",
	{opOp32, 0b111, 0b0000001}: "remuw",
}

// usesFullFunct7 reports whether the I-format instruction at this
// (opcode, funct3) needs its real funct7 bits to disambiguate a
// shift-right mnemonic (srli/srai, srliw/sraiw); every other I-format
// entry is keyed with funct7 forced to zero.
func usesFullFunct7(opcode, funct3 uint32) bool {
	return (opcode == opOpImm || opcode == opOpImm32) && funct3 == 0b101
}

// Decode classifies and decodes a single 32-bit instruction word. It
// returns (nil, false) for invalid words and for opcode/funct3/funct7
// combinations outside the supported mnemonic table (spec.md's
// DecodeSkip: absorbed in place, not an error).
func Decode(w uint32) (Instruction, bool) {
	if !validWord(w) {
		return nil, false
	}

	op := opcodeOf(w)
	format, ok := opcodeFormat[op]
	if !ok {
		return nil, false
	}

	f3 := funct3Of(w)

	switch format {
	case fmtR:
		key := decodeKey{op, f3, funct7Of(w)}
		name, ok := mnemonics[key]
		if !ok {
			return nil, false
		}
		return RType{baseInsn{name}, Register(rdOf(w)), Register(rs1Of(w)), Register(rs2Of(w))}, true

	case fmtI:
		var f7 uint32
		if usesFullFunct7(op, f3) {
			f7 = funct7Of(w)
		}
		name, ok := mnemonics[decodeKey{op, f3, f7}]
		if !ok {
			return nil, false
		}
		var imm int32
		if usesFullFunct7(op, f3) || (op == opOpImm && f3 == 0b001) || (op == opOpImm32 && f3 == 0b001) {
			// shift-immediate forms encode a shift amount, not a
			// sign-extended 12-bit immediate, in the rs2/shamt field.
			imm = int32(rs2Of(w))
		} else {
			imm = int32(signExtend(iImmRaw(w), 12))
		}
		return IType{baseInsn{name}, Register(rdOf(w)), Register(rs1Of(w)), imm}, true

	case fmtS:
		name, ok := mnemonics[decodeKey{op, f3, 0}]
		if !ok {
			return nil, false
		}
		imm := int32(signExtend(sImmRaw(w), 12))
		return SType{baseInsn{name}, Register(rs1Of(w)), Register(rs2Of(w)), imm}, true

	case fmtB:
		name, ok := mnemonics[decodeKey{op, f3, 0}]
		if !ok {
			return nil, false
		}
		imm := int32(signExtend(bImmRaw(w), 13))
		return BType{baseInsn{name}, Register(rs1Of(w)), Register(rs2Of(w)), imm}, true

	case fmtU:
		name := "lui"
		if op == opAUIPC {
			name = "auipc"
		}
		raw := uImmRaw(w)
		return UType{baseInsn{name}, Register(rdOf(w)), raw, raw << 12}, true

	case fmtJ:
		raw := jImmRaw(w)
		imm := int32(signExtend(raw, 21))
		rd := rdOf(w)
		return JType{baseInsn{"jal"}, Register(rd), imm, rd != 0}, true
	}

	return nil, false
}
