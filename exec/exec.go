// Package exec drives a core.Core through the per-cycle state machine for
// every instruction family, issuing bus accesses as the real hardware
// would. It holds no state of its own; all progress is recorded in the
// Core's datapath latches and CycleInInst counter.
package exec

import (
	"fmt"

	"arm7tdmi/bus"
	"arm7tdmi/core"
	"arm7tdmi/decode"
)

// StepResult reports what a single call to Step accomplished.
type StepResult int

const (
	// Complete reports that the instruction finished during this call.
	// The caller should reset CycleInInst and advance PC for the next
	// instruction.
	Complete StepResult = iota
	// CondFalse reports that the condition field did not hold; the
	// instruction consumed exactly one cycle and contributed no state
	// change beyond the mandatory pipeline advance.
	CondFalse
	// MoreCycles reports that the instruction needs further calls to
	// Step before it completes. The caller must increment CycleInInst
	// and call Step again with the same inst.
	MoreCycles
)

// UnimplementedFamilyError reports an instruction family this core
// intentionally never executes (coprocessor instructions).
type UnimplementedFamilyError struct {
	Family decode.ArmInstType
	Inst   uint32
}

func (e *UnimplementedFamilyError) Error() string {
	return fmt.Sprintf("unimplemented instruction family %s for instruction %#08x", e.Family, e.Inst)
}

// InvalidStateError reports a datapath selector outside its legal range,
// signalling a bug in the emulator rather than in the emulated program.
type InvalidStateError struct {
	What string
	Got  uint32
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid internal state: %s = %d", e.What, e.Got)
}

// fields is the common bit-field extraction shared by most ARM families;
// each family function picks out the subset it needs.
type fields struct {
	cond    uint32
	i       uint32
	opcode  uint32
	l       uint32
	rn      uint32
	rd      uint32
	shift   uint32
	rm      uint32
	rs      uint32
	imm     uint32
	a       uint32
	b       uint32
	u       uint32
	p       uint32
	s       uint32
	h       uint32
	off     uint32
	rlist   uint32
	boff    uint32
}

func extract(inst uint32) fields {
	return fields{
		cond:   (inst & 0xF0000000) >> 28,
		i:      (inst & 0x02000000) >> 25,
		opcode: (inst & 0x01E00000) >> 21,
		l:      (inst & 0x00100000) >> 20,
		rn:     (inst & 0x000F0000) >> 16,
		rd:     (inst & 0x0000F000) >> 12,
		shift:  (inst & 0x00000FF0) >> 4,
		rm:     inst & 0x0000000F,
		rs:     (inst & 0x00000F00) >> 8,
		imm:    inst & 0x000000FF,
		a:      (inst & 0x00200000) >> 21,
		b:      (inst & 0x00400000) >> 22,
		u:      (inst & 0x00800000) >> 23,
		p:      (inst & 0x01000000) >> 24,
		s:      (inst & 0x00000040) >> 6,
		h:      (inst & 0x00000020) >> 5,
		off:    inst & 0x00000FFF,
		rlist:  inst & 0x0000FFFF,
		boff:   inst & 0x00FFFFFF,
	}
}

// Step advances the instruction inst by one cycle, dispatching on its
// decoded family and the Core's CycleInInst counter. Before inspecting
// the family state machine it advances the pipeline by one (the caller
// is responsible for DataBus holding whatever word the bus currently
// presents) and tests the condition field.
func Step(c *core.Core, b bus.Bus, inst uint32) (StepResult, error) {
	f := extract(inst)
	c.Fetch()

	if !c.CPSR.Evaluate(core.ConditionCode(f.cond)) {
		return CondFalse, nil
	}

	typ := decode.DecodeARM(inst)
	switch typ {
	case decode.Branch:
		return stepBranch(c, b, f)
	case decode.BranchAndExchange:
		return stepBranchAndExchange(c, b, f)
	case decode.DataProcessingOrPSRTransfer:
		if isPSRTransfer(inst, f) {
			return stepPSRTransfer(c, b, f)
		}
		return stepDataProcessing(c, b, f)
	case decode.Multiply:
		return stepMultiply(c, b, f)
	case decode.MultiplyLong:
		return stepMultiplyLong(c, b, f, inst)
	case decode.SingleDataTransfer:
		return stepSingleDataTransfer(c, b, f)
	case decode.HalfwordDataTransferRegisterOffset, decode.HalfwordDataTransferImmediateOffset:
		return stepHalfwordTransfer(c, b, f, typ)
	case decode.BlockDataTransfer:
		return stepBlockDataTransfer(c, b, f)
	case decode.SingleDataSwap:
		return stepSingleDataSwap(c, b, f)
	case decode.SoftwareInterrupt:
		return stepSoftwareInterrupt(c, b, f)
	case decode.ArmUndefined:
		return stepUndefined(c, b, f)
	case decode.CoprocessorDataOperation, decode.CoprocessorDataTransfer, decode.CoprocessorRegisterTransfer:
		return Complete, &UnimplementedFamilyError{Family: typ, Inst: inst}
	default:
		return stepUndefined(c, b, f)
	}
}

// isPSRTransfer distinguishes the PSR-transfer sub-encoding (MRS/MSR)
// from ordinary data processing within the shared DataProcessingOrPSRTransfer
// family: a PSR transfer has the test-group opcode (TST/TEQ/CMP/CMN) with
// the S bit clear.
func isPSRTransfer(inst uint32, f fields) bool {
	setCond := (inst & 0x00100000) >> 20
	return f.opcode >= 8 && f.opcode <= 11 && setCond == 0
}
