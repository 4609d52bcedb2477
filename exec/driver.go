package exec

import (
	"fmt"

	"arm7tdmi/bus"
	"arm7tdmi/core"
	"arm7tdmi/decode"
)

// UntranslatableThumbError reports a Thumb instruction with no single ARM
// equivalent (LongBranchWithLink's two-halfword form).
type UntranslatableThumbError struct {
	Inst uint16
}

func (e *UntranslatableThumbError) Error() string {
	return fmt.Sprintf("thumb instruction %#04x has no single-instruction ARM equivalent", e.Inst)
}

// FetchNext reads the next instruction at the current PC, honoring
// Status.State: a 16-bit Thumb halfword is translated through its ARM
// equivalent before being handed to Step, so Step itself only ever
// decodes 32-bit ARM words.
func FetchNext(c *core.Core, b bus.Bus) (uint32, error) {
	pc := c.Read(core.PC)
	if !c.CPSR.State {
		return b.ReadU32(pc)
	}

	h, err := b.ReadU16(pc)
	if err != nil {
		return 0, err
	}
	inst, ok := decode.TranslateThumb(h)
	if !ok {
		return 0, &UntranslatableThumbError{Inst: h}
	}
	return inst, nil
}

// writesPC reports whether the instruction's own state machine already
// redirects PC and flushes the pipeline, meaning RunInstruction must not
// also apply the ordinary sequential PC advance.
func writesPC(inst uint32, f fields) bool {
	switch decode.DecodeARM(inst) {
	case decode.Branch, decode.BranchAndExchange, decode.SoftwareInterrupt, decode.ArmUndefined:
		return true
	case decode.DataProcessingOrPSRTransfer:
		return !isPSRTransfer(inst, f) && f.rd == core.PC
	case decode.SingleDataTransfer, decode.HalfwordDataTransferRegisterOffset, decode.HalfwordDataTransferImmediateOffset:
		return f.l == 1 && f.rd == core.PC
	case decode.BlockDataTransfer:
		return f.l == 1 && f.rlist&(1<<core.PC) != 0
	default:
		return false
	}
}

// RunInstruction fetches the instruction at PC, drives it through Step
// until it reports Complete or CondFalse, and applies the sequential PC
// advance the per-family state machines leave to the caller (matching the
// reference model, where PC only moves on its own when the instruction's
// state machine redirects it). While the instruction runs, PC reads as the
// pipeline-ahead address, two instruction widths past the instruction's
// own address. It returns the number of cycles consumed.
func RunInstruction(c *core.Core, b bus.Bus) (int, error) {
	inst, err := FetchNext(c, b)
	if err != nil {
		return 0, err
	}
	f := extract(inst)

	pc := c.Read(core.PC)
	width := c.CPSR.InstructionWidth()
	c.Write(core.PC, pc+2*width)

	c.CycleInInst = 0
	cycles := 0
	for {
		res, err := Step(c, b, inst)
		cycles++
		if err != nil {
			return cycles, err
		}
		if res == CondFalse {
			c.CycleInInst = 0
			c.Write(core.PC, pc+width)
			return cycles, nil
		}
		if res == Complete {
			break
		}
		c.CycleInInst++
	}

	c.CycleInInst = 0
	if !writesPC(inst, f) {
		c.Write(core.PC, pc+width)
	}
	return cycles, nil
}
