package exec

import (
	"testing"

	"arm7tdmi/bus"
	"arm7tdmi/core"
)

func writeARM(t *testing.T, m *bus.Memory, addr, inst uint32) {
	t.Helper()
	if err := m.WriteU32(addr, inst); err != nil {
		t.Fatalf("seed instruction at %#x: %v", addr, err)
	}
}

func TestRunInstructionAdvancesPCSequentially(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	const base = 0x08000000
	c.Write(core.PC, base)
	writeARM(t, m, base, 0xE0922001) // ADDS r2, r2, r1, no shift, dest != PC

	if _, err := RunInstruction(c, m); err != nil {
		t.Fatalf("RunInstruction: %v", err)
	}
	if got := c.Read(core.PC); got != base+4 {
		t.Errorf("PC = %#x, want %#x", got, base+4)
	}
}

func TestRunInstructionCondFalseStillAdvancesPC(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	const base = 0x08000000
	c.Write(core.PC, base)
	c.CPSR.Z = false
	writeARM(t, m, base, 0x00922001) // same op, cond=EQ, Z clear so condition fails

	if _, err := RunInstruction(c, m); err != nil {
		t.Fatalf("RunInstruction: %v", err)
	}
	if got := c.Read(core.PC); got != base+4 {
		t.Errorf("PC = %#x, want %#x", got, base+4)
	}
}

func TestRunInstructionBranchLeavesPCWhereTheBranchPutIt(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	const base = 0x08000000
	c.Write(core.PC, base)
	writeARM(t, m, base, 0xEAFFFFFE) // B . (offset -2 words = branch to self)

	if _, err := RunInstruction(c, m); err != nil {
		t.Fatalf("RunInstruction: %v", err)
	}
	if got := c.Read(core.PC); got != base {
		t.Errorf("PC = %#x, want %#x (branch target)", got, base)
	}
}

func TestFetchNextTranslatesThumb(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	c.CPSR.State = true
	const base = 0x08000000
	c.Write(core.PC, base)
	if err := m.WriteU16(base, 0xDF45); err != nil { // SWI 0x45
		t.Fatalf("seed thumb instruction: %v", err)
	}

	inst, err := FetchNext(c, m)
	if err != nil {
		t.Fatalf("FetchNext: %v", err)
	}
	if inst != 0xEF000045 {
		t.Errorf("translated inst = %#08x, want %#08x", inst, 0xEF000045)
	}
}
