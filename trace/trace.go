// Package trace records per-instruction execution history for a core.Core:
// which registers changed, the flag state afterward, and the disassembly
// of what ran. It observes the core between Step calls; it never drives
// execution itself.
package trace

import (
	"fmt"
	"io"
	"strings"

	"arm7tdmi/core"
	"arm7tdmi/disasm"
)

// Entry is one completed instruction's trace record.
type Entry struct {
	Sequence    uint64
	Address     uint32
	Opcode      uint32
	Disassembly string
	Changed     map[uint32]uint32 // register index -> new value
	Flags       core.Status
}

// Trace accumulates Entry records and can render them as text. Disabled
// by default; an embedding that does not want tracing overhead never
// pays for snapshotting.
type Trace struct {
	Enabled    bool
	MaxEntries int

	entries  []Entry
	sequence uint64
	snapshot [16]uint32
}

// New returns a disabled Trace ready to Record against c.
func New() *Trace {
	return &Trace{MaxEntries: 100000}
}

// Snapshot captures the register file before an instruction runs, so the
// next Record call can compute which registers it changed.
func (t *Trace) Snapshot(c *core.Core) {
	if !t.Enabled {
		return
	}
	for i := uint32(0); i < 16; i++ {
		t.snapshot[i] = c.Read(i)
	}
}

// Record appends an Entry for the instruction at addr that just completed,
// diffing the register file against the last Snapshot.
func (t *Trace) Record(c *core.Core, addr, inst uint32) {
	if !t.Enabled {
		return
	}
	if t.MaxEntries > 0 && len(t.entries) >= t.MaxEntries {
		return
	}

	changed := make(map[uint32]uint32)
	for i := uint32(0); i < 16; i++ {
		if v := c.Read(i); v != t.snapshot[i] {
			changed[i] = v
		}
	}

	t.entries = append(t.entries, Entry{
		Sequence:    t.sequence,
		Address:     addr,
		Opcode:      inst,
		Disassembly: disasm.ARM(inst),
		Changed:     changed,
		Flags:       c.CPSR,
	})
	t.sequence++
}

// Entries returns the recorded trace in execution order.
func (t *Trace) Entries() []Entry {
	return t.entries
}

// WriteTo renders the trace as one line per entry.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	for _, e := range t.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (e Entry) String() string {
	var changes strings.Builder
	for i := uint32(0); i < 16; i++ {
		if v, ok := e.Changed[i]; ok {
			fmt.Fprintf(&changes, " r%d=%#x", i, v)
		}
	}
	return fmt.Sprintf("%06d %#08x  %-28s %s%s", e.Sequence, e.Address, e.Disassembly, e.Flags, changes.String())
}
