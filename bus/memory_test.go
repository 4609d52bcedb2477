package bus

import "testing"

func TestReadWriteByteRoundTrip(t *testing.T) {
	m := NewMemory()
	if err := m.WriteU8(wram0Start+4, 0x7A); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := m.ReadU8(wram0Start + 4)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 0x7A {
		t.Fatalf("got %#x, want 0x7a", got)
	}
}

func TestReadWriteU32LittleEndian(t *testing.T) {
	m := NewMemory()
	if err := m.WriteU32(wram1Start, 0x01020304); err != nil {
		t.Fatalf("write: %v", err)
	}
	b0, _ := m.ReadU8(wram1Start)
	b1, _ := m.ReadU8(wram1Start + 1)
	b2, _ := m.ReadU8(wram1Start + 2)
	b3, _ := m.ReadU8(wram1Start + 3)
	if b0 != 0x04 || b1 != 0x03 || b2 != 0x02 || b3 != 0x01 {
		t.Fatalf("bytes = %02x %02x %02x %02x, want little-endian 04 03 02 01", b0, b1, b2, b3)
	}
	got, err := m.ReadU32(wram1Start)
	if err != nil || got != 0x01020304 {
		t.Fatalf("ReadU32 = %#x, %v, want 0x01020304, nil", got, err)
	}
}

func TestUnmappedAccessIsFatal(t *testing.T) {
	m := NewMemory()
	if _, err := m.ReadU8(0x01000000); err == nil {
		t.Fatal("read in the gap after BIOS should fail")
	}
	if err := m.WriteU8(0x01000000, 1); err == nil {
		t.Fatal("write in the gap after BIOS should fail")
	}
}

func TestLoadROMTruncation(t *testing.T) {
	m := NewMemory()
	big := make([]byte, gamePakSize+10)
	if err := m.LoadROM(big); err == nil {
		t.Fatal("expected truncation error for an oversized image")
	}
	small := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := m.LoadROM(small); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}
	got, err := m.ReadU32(gamePakStart)
	if err != nil || got != 0xEFBEADDE {
		t.Fatalf("ReadU32 after LoadROM = %#x, %v, want 0xefbeadde, nil", got, err)
	}
}
