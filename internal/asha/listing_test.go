package asha

import (
	"bytes"
	"strings"
	"testing"
)

func TestListingFormatsOneLinePerInstruction(t *testing.T) {
	prog := Program{
		0: {Address: 0, Word: 0x00000013, Insn: IType{baseInsn{"addi"}, 0, 0, 0}},
		4: {Address: 4, Word: 0x00100193, Insn: IType{baseInsn{"addi"}, 3, 0, 1}},
	}

	var buf bytes.Buffer
	Listing(&buf, prog)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	var body []string
	for _, l := range lines {
		if strings.HasPrefix(l, "  0x") {
			body = append(body, l)
		}
	}
	if len(body) != 2 {
		t.Fatalf("got %d instruction lines, want 2:\n%s", len(body), out)
	}
	if !strings.HasPrefix(body[0], "  0x00000000: 00000013    ") {
		t.Errorf("line 0 = %q", body[0])
	}
	if !strings.HasPrefix(body[1], "  0x00000004: 00100193    ") {
		t.Errorf("line 1 = %q", body[1])
	}
	if !strings.Contains(body[1], "addi") {
		t.Errorf("line 1 missing mnemonic: %q", body[1])
	}
}
