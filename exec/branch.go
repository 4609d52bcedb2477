package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// signExtend24 sign-extends a 24-bit two's-complement value to 32 bits.
func signExtend24(v uint32) int32 {
	v &= 0xFFFFFF
	if v&0x00800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v)
}

// stepBranch implements B/BL: 3 cycles. Cycle 0 computes the target from
// the current (pipeline-ahead) PC and the signed word offset; cycle 1
// writes LR when linking and redirects PC; cycle 2 is the second pipeline
// refill fetch. LR, when written, holds the address of the instruction
// following the branch minus one instruction width (the canonical return
// address for this core's PC-ahead convention).
func stepBranch(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	switch c.CycleInInst {
	case 0:
		offset := signExtend24(f.boff) * 4
		c.AddrBus = uint32(int32(c.Read(core.PC)) + offset)
		return MoreCycles, nil

	case 1:
		if f.p == 1 { // bit 24, the link bit
			width := c.CPSR.InstructionWidth()
			c.Write(core.LR, c.Read(core.PC)-2*width)
		}
		c.Write(core.PC, c.AddrBus)
		c.FlushPipeline()
		c.Fetch()
		return MoreCycles, nil

	case 2:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "branch cycle", Got: c.CycleInInst}
	}
}

// stepBranchAndExchange implements BX: 3 cycles. The target's bit 0
// selects Thumb state and is then cleared before the redirect.
func stepBranchAndExchange(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	switch c.CycleInInst {
	case 0:
		target := c.Read(f.rm)
		c.CPSR.State = target&1 != 0
		c.AddrBus = target &^ 1
		return MoreCycles, nil

	case 1:
		c.Write(core.PC, c.AddrBus)
		c.FlushPipeline()
		c.Fetch()
		return MoreCycles, nil

	case 2:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "branch and exchange cycle", Got: c.CycleInInst}
	}
}
