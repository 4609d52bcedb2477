package exec

import (
	"math/bits"

	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// nthSetBit returns the register index of the n-th (0-indexed, ascending)
// set bit in rlist.
func nthSetBit(rlist uint32, n int) (uint32, bool) {
	count := 0
	for i := uint32(0); i < 16; i++ {
		if rlist&(1<<i) != 0 {
			if count == n {
				return i, true
			}
			count++
		}
	}
	return 0, false
}

// stepBlockDataTransfer implements LDM/STM: 2+n cycles for an n-register
// list, plus two further refill cycles when a load includes PC. Cycle 0
// is setup; cycles 1..n each perform one register's transfer via an
// explicit index into the register list (no cycle-counter self-decrement
// trick); the next cycle applies write-back and, if needed, begins the
// PC refill.
func stepBlockDataTransfer(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	up := f.u == 1
	preIndex := f.p == 1
	writeBack := f.a == 1 // bit 21 (W)
	load := f.l == 1
	n := bits.OnesCount32(f.rlist)
	loadsPC := load && f.rlist&(1<<core.PC) != 0

	switch {
	case c.CycleInInst == 0:
		return MoreCycles, nil

	case c.CycleInInst >= 1 && c.CycleInInst <= uint32(n):
		k := c.CycleInInst - 1
		idx, _ := nthSetBit(f.rlist, int(k))
		base := c.Read(f.rn)
		if !up {
			base -= 4 * uint32(n)
		}
		addr := base + 4*k
		if preIndex {
			addr += 4
		}
		if load {
			v, err := b.ReadU32(addr)
			if err != nil {
				return Complete, err
			}
			c.Write(idx, v)
		} else {
			if err := b.WriteU32(addr, c.Read(idx)); err != nil {
				return Complete, err
			}
		}
		return MoreCycles, nil

	case c.CycleInInst == uint32(n)+1:
		if writeBack {
			delta := 4 * uint32(n)
			if up {
				c.Write(f.rn, c.Read(f.rn)+delta)
			} else {
				c.Write(f.rn, c.Read(f.rn)-delta)
			}
		}
		if loadsPC {
			c.FlushPipeline()
			return MoreCycles, nil
		}
		return Complete, nil

	case c.CycleInInst == uint32(n)+2:
		c.Fetch()
		return MoreCycles, nil

	case c.CycleInInst == uint32(n)+3:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "block data transfer cycle", Got: c.CycleInInst}
	}
}
