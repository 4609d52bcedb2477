package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
)

// stepDataProcessing implements the DataProcessing cycle table: 1 cycle
// normally, +1 when the computed shift amount is non-zero, +2 when the
// destination is PC, +3 when both apply. The extra-cycle trigger is the
// shift amount rather than whether that amount came from a register —
// that is what the reference implementation this core is derived from
// actually tests, and its own timing tests confirm an immediate shift of
// e.g. LSL#6 costs the extra cycle just as a register-specified one does.
func stepDataProcessing(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	destPC := f.rd == core.PC

	switch c.CycleInInst {
	case 0:
		c.ABus = c.Read(f.rn)
		if f.i == 0 {
			c.BBus = c.Read(f.rm)
			c.DecodeRegisterShift(f.shift)
		} else {
			c.BBus = f.imm
			c.DecodeImmediateShift(f.rs)
		}
		c.SetCond = f.l == 1
		if f.i == 1 && c.ShiftAmt == 0 {
			// A zero rotation leaves the immediate as it is (not RRX).
			c.BarrelBus = c.BBus
		} else {
			c.Shift()
		}
		c.ALUOp = f.opcode
		c.ALU()

		if c.ShiftAmt > 0 || destPC {
			return MoreCycles, nil
		}
		c.Write(f.rd, c.ALUBus)
		return Complete, nil

	case 1:
		c.Write(f.rd, c.ALUBus)
		if destPC {
			c.FlushPipeline()
		}
		if c.ShiftAmt > 0 && !destPC {
			return Complete, nil
		}
		return MoreCycles, nil

	case 2:
		if c.ShiftAmt > 0 {
			return MoreCycles, nil
		}
		return Complete, nil

	case 3:
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "data processing cycle", Got: c.CycleInInst}
	}
}

// stepPSRTransfer implements MRS/MSR: cycle 0 latches the operand, cycle 1
// performs the transfer, cycle 2 retires. Unlike ordinary data processing
// there is no destination-PC or register-shift variance: 3 cycles always.
func stepPSRTransfer(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	const (
		kindMRS = 0
		kindMSR = 1
	)
	kind := kindMRS
	if f.opcode&0x1 != 0 { // instruction bit 21: MRS(0) vs MSR(1)
		kind = kindMSR
	}

	switch c.CycleInInst {
	case 0:
		if kind == kindMSR {
			if f.i == 0 {
				c.BBus = c.Read(f.rm)
			} else {
				c.BBus = f.imm
				c.DecodeImmediateShift(f.rs)
			}
		}
		return MoreCycles, nil

	case 1:
		switch kind {
		case kindMRS:
			c.Write(f.rd, c.ReadPSR(int(f.b)))
		case kindMSR:
			if f.i == 0 {
				c.WritePSR(int(f.b), c.BBus)
			} else {
				c.Shift()
				c.WritePSR(int(f.b), c.BarrelBus)
			}
		}
		return MoreCycles, nil

	case 2:
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "psr transfer cycle", Got: uint32(c.CycleInInst)}
	}
}
