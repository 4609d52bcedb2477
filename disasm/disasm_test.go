package disasm

import "testing"

func TestARMDataProcessing(t *testing.T) {
	got := ARM(0xE0922001)
	want := "ADDS r2, r2, r1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestARMBranchWithLink(t *testing.T) {
	got := ARM(0xEB000000)
	if got[:2] != "BL" {
		t.Errorf("got %q, want a BL mnemonic", got)
	}
}

func TestARMConditionElidedForAlways(t *testing.T) {
	got := ARM(0xE1A00000) // MOV r0, r0, cond=AL
	if got != "MOV r0, r0" {
		t.Errorf("got %q, want %q", got, "MOV r0, r0")
	}
}

func TestARMUnknownRendersHex(t *testing.T) {
	got := ARM(0x06000010) // Undefined family
	if got != "UDF (0x06000010)" {
		t.Errorf("got %q", got)
	}
}
