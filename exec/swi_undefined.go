package exec

import (
	"arm7tdmi/bus"
	"arm7tdmi/core"
)

const (
	vectorSoftwareInterrupt = 0x00000008
	vectorUndefined         = 0x00000004
)

// stepSoftwareInterrupt implements SWI: 3 cycles. Cycle 0 saves the
// return address and status word and switches to Supervisor mode; cycle
// 1 is the address-fixup cycle hardware spends with no observable
// effect in this model; cycle 2 redirects PC to the SWI vector and
// refills the pipeline.
func stepSoftwareInterrupt(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	switch c.CycleInInst {
	case 0:
		c.Write(core.LR, c.Read(core.PC)-c.CPSR.InstructionWidth())
		c.SPSR[core.ModeSupervisor] = c.CPSR
		c.CPSR.Mode = core.ModeSupervisor
		c.CPSR.IRQDisable = true
		c.AddrBus = vectorSoftwareInterrupt
		return MoreCycles, nil

	case 1:
		return MoreCycles, nil

	case 2:
		c.Write(core.PC, c.AddrBus)
		c.FlushPipeline()
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "software interrupt cycle", Got: c.CycleInInst}
	}
}

// stepUndefined implements the undefined-instruction trap: 4 cycles,
// entering Undefined mode and redirecting to the undefined vector with a
// two-fetch pipeline refill.
func stepUndefined(c *core.Core, b bus.Bus, f fields) (StepResult, error) {
	switch c.CycleInInst {
	case 0:
		c.Write(core.LR, c.Read(core.PC)-c.CPSR.InstructionWidth())
		c.SPSR[core.ModeUndefined] = c.CPSR
		c.CPSR.Mode = core.ModeUndefined
		c.CPSR.IRQDisable = true
		c.AddrBus = vectorUndefined
		return MoreCycles, nil

	case 1:
		c.Write(core.PC, c.AddrBus)
		c.FlushPipeline()
		return MoreCycles, nil

	case 2:
		c.Fetch()
		return MoreCycles, nil

	case 3:
		c.Fetch()
		return Complete, nil

	default:
		return Complete, &InvalidStateError{What: "undefined instruction cycle", Got: c.CycleInInst}
	}
}
