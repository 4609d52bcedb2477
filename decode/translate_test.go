package decode

import "testing"

func TestTranslateSoftwareInterrupt(t *testing.T) {
	got, ok := TranslateThumb(0xDF45)
	if !ok {
		t.Fatal("expected a translation")
	}
	if want := uint32(0xEF000045); got != want {
		t.Errorf("got %#08x, want %#08x", got, want)
	}
}

func TestTranslateLongBranchWithLinkHasNoEquivalent(t *testing.T) {
	_, ok := TranslateThumb(0xF800)
	if ok {
		t.Fatal("LongBranchWithLink should translate to absent")
	}
}

func TestTranslateUnconditionalBranch(t *testing.T) {
	got, ok := TranslateThumb(0xE7FE) // b .-2 (off11 = 0x7FE)
	if !ok {
		t.Fatal("expected a translation")
	}
	want := uint32(0xEA000000) | (uint32(0x7FE) >> 1)
	if got != want {
		t.Errorf("got %#08x, want %#08x", got, want)
	}
}
