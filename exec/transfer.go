package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
	"arm7tdmi/decode"
)

func transferOffset(c *core.Core, f fields, immediateForm bool) uint32 {
	if immediateForm {
		return f.off
	}
	c.BBus = c.Read(f.rm)
	c.SetCond = false
	c.DecodeRegisterShift(f.shift)
	c.Shift()
	return c.BarrelBus
}

func effectiveAddress(c *core.Core, base, offset uint32, up bool) uint32 {
	c.ABus = base
	c.BBus = offset
	c.SetCond = false
	if up {
		c.ALUOp = core.OpADD
	} else {
		c.ALUOp = core.OpSUB
	}
	c.ALU()
	return c.ALUBus
}

// stepSingleDataTransfer implements LDR/STR (and byte variants): 2 cycles
// to store, 3 to load, 5 when the load destination is PC. Cycle 0 computes
// the effective address; cycle 1 writes back the base if required and
// either stores (done) or issues the load; cycle 2 moves the loaded word
// into the destination, clearing the pipeline if it is PC; cycles 3-4
// issue the two refill fetches that follow a PC load.
func stepSingleDataTransfer(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	immediateForm := f.i == 0
	preIndex := f.p == 1
	writeBack := f.a == 1 // bit 21, aliased as 'a' in the shared field extraction
	up := f.u == 1
	byteAccess := f.b == 1
	load := f.l == 1
	destPC := f.rd == core.PC

	switch c.CycleInInst {
	case 0:
		base := c.Read(f.rn)
		offset := transferOffset(c, f, immediateForm)
		addr := effectiveAddress(c, base, offset, up)
		if preIndex {
			c.AddrBus = addr
		} else {
			c.AddrBus = base
		}
		c.IncBus = addr
		return MoreCycles, nil

	case 1:
		if !preIndex || writeBack {
			c.Write(f.rn, c.IncBus)
		}
		if !load {
			v := c.Read(f.rd)
			var err error
			if byteAccess {
				err = b.WriteU8(c.AddrBus, uint8(v))
			} else {
				err = b.WriteU32(c.AddrBus, v)
			}
			return Complete, err
		}
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
		c.Write(f.rd, c.DataBus)
		if destPC {
			c.FlushPipeline()
			return MoreCycles, nil
		}
		return Complete, nil

	case 3:
		c.Fetch()
		return MoreCycles, nil

	case 4:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "single data transfer cycle", Got: c.CycleInInst}
	}
}

// stepHalfwordTransfer implements the halfword/signed-byte transfer
// families (LDRH/STRH/LDRSB/LDRSH). Cycle shape mirrors
// stepSingleDataTransfer: 2 cycles to store, 3 to load, 5 when the load
// destination is PC.
func stepHalfwordTransfer(c *core.Core, b bus.Bus, f fields, typ decode.ArmInstType) (StepResult, error) {
	preIndex := f.p == 1
	writeBack := f.a == 1
	up := f.u == 1
	load := f.l == 1
	destPC := f.rd == core.PC
	signed := f.s == 1
	halfword := f.h == 1

	switch c.CycleInInst {
	case 0:
		base := c.Read(f.rn)
		var offset uint32
		if typ == decode.HalfwordDataTransferImmediateOffset {
			offset = (f.rs << 4) | f.rm
		} else {
			offset = c.Read(f.rm)
		}
		addr := effectiveAddress(c, base, offset, up)
		if preIndex {
			c.AddrBus = addr
		} else {
			c.AddrBus = base
		}
		c.IncBus = addr
		return MoreCycles, nil

	case 1:
		if !preIndex || writeBack {
			c.Write(f.rn, c.IncBus)
		}
		if !load {
			v := c.Read(f.rd)
			var err error
			if halfword {
				err = b.WriteU16(c.AddrBus, uint16(v))
			} else {
				err = b.WriteU8(c.AddrBus, uint8(v))
			}
			return Complete, err
		}
		var v uint32
		var err error
		switch {
		case halfword && !signed:
			var h16 uint16
			h16, err = b.ReadU16(c.AddrBus)
			v = uint32(h16)
		case halfword && signed:
			var h16 uint16
			h16, err = b.ReadU16(c.AddrBus)
			v = uint32(int32(int16(h16)))
		default: // signed byte
			var b8 uint8
			b8, err = b.ReadU8(c.AddrBus)
			v = uint32(int32(int8(b8)))
		}
		c.DataBus = v
		return MoreCycles, err

	case 2:
		c.Write(f.rd, c.DataBus)
		if destPC {
			c.FlushPipeline()
			return MoreCycles, nil
		}
		return Complete, nil

	case 3:
		c.Fetch()
		return MoreCycles, nil

	case 4:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "halfword transfer cycle", Got: c.CycleInInst}
	}
}
