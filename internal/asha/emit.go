package asha

import "fmt"

// Emitter (spec.md §4.6): walks the reduced abstract graph and produces
// indented pseudocode lines. Branch conditions are lowered to C-style
// comparison operators; a handful of common instruction forms are
// lowered to assignment/call statements; everything else falls back to
// its disassembly text. Any outgoing edge reduction couldn't consume is
// printed as a trailing `GOTO section N;` at the node's indent.

var branchOps = map[string]string{
	"beq": "==", "bne": "!=",
	"blt": "<", "bltu": "<",
	"bgt": ">", "bgtu": ">",
	"ble": "<=", "bleu": "<=",
	"bge": ">=", "bgeu": ">=",
}

func lowerCondition(d Decoded) string {
	b, ok := d.Insn.(BType)
	if !ok {
		return "true"
	}
	op, ok := branchOps[b.Name]
	if !ok {
		return "true"
	}
	return fmt.Sprintf("%s %s %s", b.Rs1, op, b.Rs2)
}

func lowerOperator(d Decoded) string {
	switch t := d.Insn.(type) {
	case RType:
		if op, ok := arithOp[t.Name]; ok {
			return fmt.Sprintf("%s = %s %s %s;", t.Rd, t.Rs1, op, t.Rs2)
		}
	case IType:
		switch t.Name {
		case "addi", "addiw":
			return fmt.Sprintf("%s = %s + %d;", t.Rd, t.Rs1, t.Imm)
		case "lb", "lh", "lw", "lbu", "lhu", "lwu", "ld":
			return fmt.Sprintf("%s = %s;", t.Rd, t.Rs1)
		}
		if op, ok := arithOp[immOpName(t.Name)]; ok {
			return fmt.Sprintf("%s = %s %s %d;", t.Rd, t.Rs1, op, t.Imm)
		}
		if t.Name == "syscall" {
			return "ecall();"
		}
	case UType:
		if t.Name == "lui" {
			return fmt.Sprintf("%s = %d;", t.Rd, t.Upper)
		}
	}
	return d.Insn.String()
}

// arithOp maps an R-type or de-immediate'd I-type mnemonic to its C
// operator for the common forms named in spec.md §4.6.
var arithOp = map[string]string{
	"add": "+", "sub": "-", "and": "&", "or": "|", "xor": "^",
	"addw": "+", "subw": "-",
	"mul": "*", "mulw": "*",
	"div": "/", "divu": "/", "divw": "/", "divuw": "/",
	"rem": "%", "remu": "%", "remw": "%", "remuw": "%",
}

// immOpName maps the immediate logical forms to their register-register
// counterparts so they can share arithOp (andi -> and, ori -> or, xori ->
// xor); any other name is returned unchanged.
func immOpName(name string) string {
	switch name {
	case "andi":
		return "and"
	case "ori":
		return "or"
	case "xori":
		return "xor"
	default:
		return name
	}
}

type lineWriter struct{ lines []string }

func (w *lineWriter) write(indent int, s string) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "    "
	}
	w.lines = append(w.lines, prefix+s)
}

// Emit produces the full `void main() { ... }` pseudocode listing for a
// (possibly only partially) reduced abstract graph.
func Emit(g *AbstractGraph, prog Program, blocks map[int]*Block) []string {
	w := &lineWriter{}
	w.write(0, "void main() {")
	for _, id := range sortedVertexIDs(g) {
		emitNode(w, g, prog, blocks, g.Vertices[id], 1)
	}
	w.write(0, "}")
	return w.lines
}

func sortedVertexIDs(g *AbstractGraph) []int {
	ids := make([]int, 0, len(g.Vertices))
	for id := range g.Vertices {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

func blockInsns(prog Program, b *Block) []Decoded {
	out := make([]Decoded, 0, len(b.Order))
	for _, addr := range b.Order {
		out = append(out, prog[addr])
	}
	return out
}

func emitNode(w *lineWriter, g *AbstractGraph, prog Program, blocks map[int]*Block, node *AbstractNode, indent int) {
	insns := blockInsns(prog, blocks[node.ConcreteBlockID])
	n := len(insns)

	switch node.RegionKind {
	case RegionIf:
		for _, d := range insns[:n-1] {
			w.write(indent, lowerOperator(d))
		}
		w.write(indent, fmt.Sprintf("if (%s) {", lowerCondition(insns[n-1])))
		if len(node.Nested) > 0 {
			emitNode(w, g, prog, blocks, node.Nested[0], indent+1)
		}
		w.write(indent, "}")
		for _, sib := range node.Nested[1:] {
			emitNode(w, g, prog, blocks, sib, indent)
		}

	case RegionIfElse:
		for _, d := range insns[:n-1] {
			w.write(indent, lowerOperator(d))
		}
		w.write(indent, fmt.Sprintf("if (%s) {", lowerCondition(insns[n-1])))
		if len(node.Nested) > 0 {
			emitNode(w, g, prog, blocks, node.Nested[0], indent+1)
		}
		w.write(indent, "}")
		w.write(indent, "else {")
		if len(node.Nested) > 1 {
			emitNode(w, g, prog, blocks, node.Nested[1], indent+1)
		}
		w.write(indent, "}")
		for _, sib := range node.Nested[2:] {
			emitNode(w, g, prog, blocks, sib, indent)
		}

	case RegionSingleWhile:
		for _, d := range insns[:n-1] {
			w.write(indent, lowerOperator(d))
		}
		w.write(indent, fmt.Sprintf("while (%s) {", lowerCondition(insns[n-1])))
		for _, child := range node.Nested {
			emitNode(w, g, prog, blocks, child, indent+1)
		}
		w.write(indent, "}")

	default: // RegionUnbranching
		for _, d := range insns {
			w.write(indent, lowerOperator(d))
		}
		for _, child := range node.Nested {
			emitNode(w, g, prog, blocks, child, indent)
		}
	}

	for _, dst := range g.outEdges(node.ID) {
		w.write(indent, fmt.Sprintf("GOTO section %d;", dst))
	}
}
