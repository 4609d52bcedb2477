package exec

import (
	"testing"

	"arm7tdmi/bus"
	"arm7tdmi/core"
)

func TestMRSReadsCPSRIntoDestinationRegister(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	c.CPSR.N = true
	c.CPSR.Z = true

	runToCompletion(t, c, m, 0xE10F0000) // MRS r0, CPSR

	if got, want := c.Read(0), c.CPSR.ToWord(); got != want {
		t.Errorf("r0 = %#08x, want CPSR word %#08x", got, want)
	}
	if c.Read(core.PC) != 0 {
		t.Error("MRS must not disturb PC")
	}
}

func TestMSRWritesRegisterIntoCPSR(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	c.Write(0, core.StatusFromWord(0).ToWord()|0x20000000) // C flag set, all else clear

	runToCompletion(t, c, m, 0xE129F000) // MSR CPSR, r0

	if !c.CPSR.C {
		t.Error("C flag should be set from the MSR source register")
	}
	if c.CPSR.N || c.CPSR.Z || c.CPSR.V {
		t.Error("unrelated flags should be clear after MSR")
	}
}
