package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// stepSingleDataSwap implements SWP/SWPB: 4 cycles, reading the old value
// at [Rn] on cycle 1 and writing Rm's value to the same address on cycle
// 2 before the load lands in Rd. The reference implementation this core
// is derived from writes its final result to the address-bus register
// rather than Rd; that is a transcription bug and is not reproduced here.
func stepSingleDataSwap(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	byteAccess := f.b == 1

	switch c.CycleInInst {
	case 0:
		c.AddrBus = c.Read(f.rn)
		return MoreCycles, nil

	case 1:
		var v uint32
		var err error
		if byteAccess {
			var b8 uint8
			b8, err = b.ReadU8(c.AddrBus)
			v = uint32(b8)
		} else {
			v, err = b.ReadU32(c.AddrBus)
		}
		c.DataBus = v
		return MoreCycles, err

	case 2:
		var err error
		if byteAccess {
			err = b.WriteU8(c.AddrBus, uint8(c.Read(f.rm)))
		} else {
			err = b.WriteU32(c.AddrBus, c.Read(f.rm))
		}
		return MoreCycles, err

	case 3:
		c.Write(f.rd, c.DataBus)
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "single data swap cycle", Got: c.CycleInInst}
	}
}
