package asha

import "fmt"

// Instruction is one of the six decoded RISC-V instruction variants: RType,
// IType, SType, BType, UType, JType. Grounded on
// original_source/src/instructions.rs's InstructionType enum, reshaped
// into idiomatic Go as six concrete structs behind an interface rather
// than a tagged union.
type Instruction interface {
	Mnemonic() string
	String() string
}

type baseInsn struct{ Name string }

func (b baseInsn) Mnemonic() string { return b.Name }

// RType is a register-register instruction: name, rd, rs1, rs2.
type RType struct {
	baseInsn
	Rd, Rs1, Rs2 Register
}

func (r RType) String() string {
	return fmt.Sprintf("%-7s %s, %s, %s", r.Name, r.Rd, r.Rs1, r.Rs2)
}

// IType is an immediate instruction: name, rd, rs1, imm (12-bit signed).
type IType struct {
	baseInsn
	Rd, Rs1 Register
	Imm     int32
}

func (i IType) String() string {
	return fmt.Sprintf("%-7s %s, %s, %d", i.Name, i.Rd, i.Rs1, i.Imm)
}

// SType is a store instruction: name, rs1, rs2, imm (12-bit signed).
type SType struct {
	baseInsn
	Rs1, Rs2 Register
	Imm      int32
}

func (s SType) String() string {
	return fmt.Sprintf("%-7s %s, %s, %d", s.Name, s.Rs1, s.Rs2, s.Imm)
}

// BType is a branch instruction: name, rs1, rs2, imm (13-bit signed, LSB
// implicitly zero).
type BType struct {
	baseInsn
	Rs1, Rs2 Register
	Imm      int32
}

func (b BType) String() string {
	return fmt.Sprintf("%-7s %s, %s, %d", b.Name, b.Rs1, b.Rs2, b.Imm)
}

// UType is an upper-immediate instruction: name, rd, and the 20-bit raw
// immediate plus its use-site value (Imm shifted left by 12).
type UType struct {
	baseInsn
	Rd    Register
	Imm   uint32
	Upper uint32
}

func (u UType) String() string {
	return fmt.Sprintf("%-7s %s, %d", u.Name, u.Rd, u.Imm)
}

// JType is a jump instruction: name, rd, imm (21-bit signed, LSB
// implicitly zero). IsCall is a REDESIGN-FLAG addition: rd != zero marks
// this as a call-style jump rather than a plain goto.
type JType struct {
	baseInsn
	Rd     Register
	Imm    int32
	IsCall bool
}

func (j JType) String() string {
	return fmt.Sprintf("%-7s %s, %d", j.Name, j.Rd, j.Imm)
}
