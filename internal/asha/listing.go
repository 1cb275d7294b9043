package asha

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Listing prints the raw disassembly line format spec.md §6 specifies:
//
//	  0xADDR: HHHHHHHH    MNEMONIC OPERANDS
//
// one line per decoded word, in address order. Grounded on the teacher's
// Disassemble, keeping its header-template-then-cursor-loop shape.
func Listing(w io.Writer, prog Program) {
	hdrTmpl, _ := template.New("listing").Parse(listingHeader)
	hdrTmpl.Execute(w, nil)

	for _, addr := range prog.Addresses() {
		d := prog[addr]
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("  0x%08X: %08X    ", addr, d.Word))
		sb.WriteString(d.Insn.String())
		sb.WriteByte('\n')
		io.WriteString(w, sb.String())
	}
}

var listingHeader = `; disassembly listing
;
`
