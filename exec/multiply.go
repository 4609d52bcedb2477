package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// stepMultiply implements 32x32->32 MUL/MLA: 4 cycles, +1 when the
// accumulate bit is set. The family reuses the DataProcessing field
// layout: destination is Rn's position (bits 19-16), the accumulate
// operand is Rd's position (bits 15-12), and the set-flags bit shares L's
// position (bit 20).
func stepMultiply(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	accumulate := f.a == 1
	total := uint32(4)
	if accumulate {
		total++
	}

	if c.CycleInInst+1 < total {
		return MoreCycles, nil
	}

	result := c.Read(f.rm) * c.Read(f.rs)
	if accumulate {
		result += c.Read(f.rd)
	}
	c.Write(f.rn, result)
	if f.l == 1 {
		c.CPSR.N = int32(result) < 0
		c.CPSR.Z = result == 0
	}
	return Complete, nil
}

// stepMultiplyLong implements 32x32->64 UMULL/UMLAL/SMULL/SMLAL: 6 cycles,
// +1 when accumulating. Unlike the reference this core is derived from,
// the accumulate path's 64-bit sum is written back to RdHi:RdLo rather
// than only computed and discarded.
func stepMultiplyLong(c *core.Core, b bus.Bus, f fields, inst uint32) (StepResult, error) {
	signed := (inst & 0x00400000) != 0
	accumulate := (inst & 0x00200000) != 0
	setCond := (inst & 0x00100000) != 0
	rdHi := (inst & 0x000F0000) >> 16
	rdLo := (inst & 0x0000F000) >> 12
	rs := (inst & 0x00000F00) >> 8
	rm := inst & 0x0000000F

	total := uint32(6)
	if accumulate {
		total++
	}

	if c.CycleInInst+1 < total {
		return MoreCycles, nil
	}

	var result uint64
	if signed {
		result = uint64(int64(int32(c.Read(rm))) * int64(int32(c.Read(rs))))
	} else {
		result = uint64(c.Read(rm)) * uint64(c.Read(rs))
	}
	if accumulate {
		acc := uint64(c.Read(rdHi))<<32 | uint64(c.Read(rdLo))
		result += acc
	}

	c.Write(rdLo, uint32(result))
	c.Write(rdHi, uint32(result>>32))

	if setCond {
		c.CPSR.N = int64(result) < 0
		c.CPSR.Z = result == 0
	}
	return Complete, nil
}
