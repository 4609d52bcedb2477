package exec

import (
	"testing"

	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// runToCompletion drives inst through Step until it reports Complete,
// returning the number of Step calls (cycles) consumed.
func runToCompletion(t *testing.T, c *core.Core, b bus.Bus, inst uint32) int {
	t.Helper()
	cycles := 0
	for {
		res, err := Step(c, b, inst)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		cycles++
		if res == Complete {
			return cycles
		}
		if res == CondFalse {
			return cycles
		}
		c.CycleInInst++
	}
}

func TestDataProcessingCycleTiming(t *testing.T) {
	cases := []struct {
		inst  uint32
		want  int
		label string
	}{
		{0xE0922001, 1, "normal"},
		{0xE0922301, 2, "immediate shift amount 6"},
		{0xE092F001, 3, "dest PC"},
		{0xE092F301, 4, "dest PC and shift amount 6"},
	}
	for _, tc := range cases {
		c := core.NewCore()
		m := bus.NewMemory()
		c.CycleInInst = 0
		got := runToCompletion(t, c, m, tc.inst)
		if got != tc.want {
			t.Errorf("%s (%#08x): got %d cycles, want %d", tc.label, tc.inst, got, tc.want)
		}
	}
}

func TestBranchAndExchangeCycleTiming(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	got := runToCompletion(t, c, m, 0xE12FFF12)
	if got != 3 {
		t.Errorf("got %d cycles, want 3", got)
	}
}

func TestBranchCycleTiming(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	got := runToCompletion(t, c, m, 0xEB14A94C)
	if got != 3 {
		t.Errorf("got %d cycles, want 3", got)
	}
}

func TestBranchLinkWritesCanonicalReturnAddress(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	c.Write(core.PC, 0x1008) // simulated pipeline-ahead PC (branch at 0x1000, width 4)
	runToCompletion(t, c, m, 0xEB14A94C)
	want := uint32(0x1008 - 2*4)
	if got := c.Read(core.LR); got != want {
		t.Errorf("LR = %#x, want %#x", got, want)
	}
}

func TestSingleDataTransferCycleTiming(t *testing.T) {
	cases := []struct {
		inst  uint32
		want  int
		label string
	}{
		{0xE5B222D5, 3, "load normal"},
		{0xE5B2F2D5, 5, "load dest PC"},
		{0xE5A222D5, 2, "store"},
	}
	for _, tc := range cases {
		c := core.NewCore()
		m := bus.NewMemory()
		got := runToCompletion(t, c, m, tc.inst)
		if got != tc.want {
			t.Errorf("%s (%#08x): got %d cycles, want %d", tc.label, tc.inst, got, tc.want)
		}
	}
}

func TestSingleDataSwapCycleTiming(t *testing.T) {
	c := core.NewCore()
	m := bus.NewMemory()
	const addr = 0x02000010
	c.Write(2, addr)
	if err := m.WriteU32(addr, 0xCAFEBABE); err != nil {
		t.Fatalf("seed memory: %v", err)
	}

	reads, writes := 0, 0
	cycles := 0
	for {
		before := dump(m, addr)
		res, err := Step(c, m, 0xE1028092)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		after := dump(m, addr)
		if after != before {
			writes++
		}
		if cycles == 1 { // the cycle that performs the read
			reads++
		}
		cycles++
		if res == Complete {
			break
		}
		c.CycleInInst++
	}
	if cycles != 4 {
		t.Errorf("got %d cycles, want 4", cycles)
	}
	if writes != 1 {
		t.Errorf("got %d writes, want 1", writes)
	}
}

func dump(m *bus.Memory, addr uint32) uint32 {
	v, _ := m.ReadU32(addr)
	return v
}
