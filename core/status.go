package core

import "fmt"

// Mode identifies an ARM7TDMI operating mode, selecting which banked
// registers and saved status word a read or write targets.
type Mode uint32

const (
	ModeUser       Mode = 0
	ModeFIQ        Mode = 1
	ModeSupervisor Mode = 2
	ModeAbort      Mode = 3
	ModeIRQ        Mode = 4
	ModeUndefined  Mode = 5
)

func (m Mode) String() string {
	switch m {
	case ModeUser:
		return "USR"
	case ModeFIQ:
		return "FIQ"
	case ModeSupervisor:
		return "SVC"
	case ModeAbort:
		return "ABT"
	case ModeIRQ:
		return "IRQ"
	case ModeUndefined:
		return "UND"
	default:
		return "???"
	}
}

// Status is the processor status word: condition flags, interrupt masks,
// instruction-set state bit, and current mode.
type Status struct {
	N, Z, C, V bool

	IRQDisable bool
	FIQDisable bool
	State      bool // true selects the 16-bit (Thumb) instruction stream
	Mode       Mode
}

// StatusFromWord decodes a 32-bit status word into its field values.
// Bit layout: N=31 Z=30 C=29 V=28, IRQDisable=7, FIQDisable=6, State=5,
// Mode=bits 0-4.
func StatusFromWord(word uint32) Status {
	return Status{
		N: word&(1<<31) != 0,
		Z: word&(1<<30) != 0,
		C: word&(1<<29) != 0,
		V: word&(1<<28) != 0,

		IRQDisable: word&(1<<7) != 0,
		FIQDisable: word&(1<<6) != 0,
		State:      word&(1<<5) != 0,
		Mode:       Mode(word & 0x1F),
	}
}

// ToWord materializes the status back into a 32-bit word. The state bit is
// written at bit 4 rather than bit 5 — a quirk preserved from the reference
// implementation this core is derived from. Because Mode occupies bits 0-4,
// the two fields are OR'd together rather than assigned, exactly as upstream
// does; this is deliberate fidelity, not a bug in this port.
func (s Status) ToWord() uint32 {
	var word uint32
	if s.N {
		word |= 1 << 31
	}
	if s.Z {
		word |= 1 << 30
	}
	if s.C {
		word |= 1 << 29
	}
	if s.V {
		word |= 1 << 28
	}
	if s.IRQDisable {
		word |= 1 << 7
	}
	if s.FIQDisable {
		word |= 1 << 6
	}
	if s.State {
		word |= 1 << 4
	}
	word |= uint32(s.Mode)
	return word
}

func (s Status) String() string {
	flag := func(set bool, c byte) byte {
		if set {
			return c
		}
		return '-'
	}
	return fmt.Sprintf("[%c%c%c%c] mode=%s state=%s",
		flag(s.N, 'N'), flag(s.Z, 'Z'), flag(s.C, 'C'), flag(s.V, 'V'),
		s.Mode, widthName(s.State))
}

func widthName(thumb bool) string {
	if thumb {
		return "thumb"
	}
	return "arm"
}

// InstructionWidth returns 2 for Thumb state, 4 for ARM state.
func (s Status) InstructionWidth() uint32 {
	if s.State {
		return 2
	}
	return 4
}
