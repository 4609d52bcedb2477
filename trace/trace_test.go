package trace

import (
	"strings"
	"testing"

	"arm7tdmi/core"
)

func TestRecordCapturesChangedRegisters(t *testing.T) {
	c := core.NewCore()
	tr := New()
	tr.Enabled = true

	tr.Snapshot(c)
	c.Write(2, 0x1234)
	tr.Record(c, 0x8000, 0xE0922001)

	entries := tr.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if v, ok := entries[0].Changed[2]; !ok || v != 0x1234 {
		t.Errorf("r2 change = %#x, %v, want 0x1234, true", v, ok)
	}
	if _, ok := entries[0].Changed[0]; ok {
		t.Errorf("r0 should not appear in Changed")
	}
}

func TestDisabledTraceRecordsNothing(t *testing.T) {
	c := core.NewCore()
	tr := New()
	tr.Snapshot(c)
	c.Write(2, 1)
	tr.Record(c, 0, 0xE0922001)
	if len(tr.Entries()) != 0 {
		t.Fatal("disabled trace should not record")
	}
}

func TestWriteToRendersOneLinePerEntry(t *testing.T) {
	c := core.NewCore()
	tr := New()
	tr.Enabled = true
	tr.Snapshot(c)
	tr.Record(c, 0x8000, 0xE0922001)
	tr.Snapshot(c)
	tr.Record(c, 0x8004, 0xE0922001)

	var sb strings.Builder
	if _, err := tr.WriteTo(&sb); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
}
