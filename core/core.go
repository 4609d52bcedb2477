// Package core implements the ARM7TDMI datapath: the banked register file,
// the status word, the ALU and barrel shifter, and the three-slot
// instruction pipeline. It holds no notion of memory or instruction timing;
// that belongs to the exec package, which drives a Core one cycle at a time.
package core

// Core is the processor datapath. An embedding owns exactly one Core and
// drives it; there is no hidden global state.
type Core struct {
	CPSR Status

	// SPSR holds the saved status word for each privileged mode, indexed by
	// Mode. Index ModeUser is never written (mode 0 has no SPSR).
	SPSR [6]Status

	// gp holds registers 0-7 and 15 always, plus 8-12 and 13-14 whenever the
	// current mode does not bank them.
	gp [16]uint32
	// fiq banks registers 8-14 (7 slots) while CPSR.Mode == ModeFIQ.
	fiq [7]uint32
	// r13, r14 bank register 13/14 for the four non-FIQ privileged modes,
	// indexed directly by Mode (slots for ModeUser/ModeFIQ are unused).
	r13 [6]uint32
	r14 [6]uint32

	// Pipeline holds the three most recently fetched instruction words;
	// index 0 is most recent, index 2 is next to execute.
	Pipeline [3]uint32

	// Datapath latches, named as in the spec: working buses an instruction
	// state machine reads and writes across its cycles.
	ABus      uint32
	BBus      uint32
	BarrelBus uint32
	ALUBus    uint32
	AddrBus   uint32
	IncBus    uint32
	DataBus   uint32

	ALUOp       uint32
	ShiftFunc   uint32
	ShiftAmt    uint32
	SetCond     bool
	CycleInInst uint32
}

// NewCore returns a Core in its reset state: all registers, flags, and the
// pipeline zeroed, mode User.
func NewCore() *Core {
	return &Core{}
}

// Reset zeros the entire datapath, equivalent to a fresh NewCore.
func (c *Core) Reset() {
	*c = Core{}
}
