package core

// PC is the index of the program counter within the visible register file.
const (
	PC = 15
	LR = 14
	SP = 13
)

// Read returns register i (0-15) using the bank selected by the current
// mode. Indices 0-7 are never banked.
func (c *Core) Read(i uint32) uint32 {
	switch {
	case i <= 7:
		return c.gp[i]
	case c.CPSR.Mode == ModeFIQ && i >= 8 && i <= 14:
		return c.fiq[i-8]
	case i == 13 && bankedByMode(c.CPSR.Mode):
		return c.r13[c.CPSR.Mode]
	case i == 14 && bankedByMode(c.CPSR.Mode):
		return c.r14[c.CPSR.Mode]
	default:
		return c.gp[i]
	}
}

// Write stores v into register i (0-15) using the bank selected by the
// current mode.
func (c *Core) Write(i uint32, v uint32) {
	switch {
	case i <= 7:
		c.gp[i] = v
	case c.CPSR.Mode == ModeFIQ && i >= 8 && i <= 14:
		c.fiq[i-8] = v
	case i == 13 && bankedByMode(c.CPSR.Mode):
		c.r13[c.CPSR.Mode] = v
	case i == 14 && bankedByMode(c.CPSR.Mode):
		c.r14[c.CPSR.Mode] = v
	default:
		c.gp[i] = v
	}
}

// bankedByMode reports whether mode m has its own R13/R14 bank distinct
// from the visible registers (every privileged mode except FIQ, which
// instead banks 8-14 as a block).
func bankedByMode(m Mode) bool {
	switch m {
	case ModeSupervisor, ModeAbort, ModeIRQ, ModeUndefined:
		return true
	default:
		return false
	}
}

// ReadPSR addresses the current status word (sel 0) or the saved status
// word of the current mode (sel 1). User mode has no SPSR; sel 1 in user
// mode returns the current status word.
func (c *Core) ReadPSR(sel int) uint32 {
	if sel == 0 {
		return c.CPSR.ToWord()
	}
	if c.CPSR.Mode == ModeUser {
		return c.CPSR.ToWord()
	}
	return c.SPSR[c.CPSR.Mode].ToWord()
}

// WritePSR writes word into the current status word (sel 0) or the saved
// status word of the current mode (sel 1); a sel-1 write in user mode is a
// no-op, mirroring the absence of a user-mode SPSR.
func (c *Core) WritePSR(sel int, word uint32) {
	if sel == 0 {
		c.CPSR = StatusFromWord(word)
		return
	}
	if c.CPSR.Mode == ModeUser {
		return
	}
	c.SPSR[c.CPSR.Mode] = StatusFromWord(word)
}

// TransferSPSR atomically replaces CPSR with the saved status word of the
// current mode. In user mode this is a no-op: there is nothing to restore
// from, and the mode field driving subsequent bank selection is unchanged.
func (c *Core) TransferSPSR() {
	if c.CPSR.Mode == ModeUser {
		return
	}
	c.CPSR = c.SPSR[c.CPSR.Mode]
}
