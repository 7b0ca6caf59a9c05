package vm

import (
	"io"
	"log/slog"

	"github.com/KTStephano/um/internal/umlog"
)

const numRegisters = 8

// Stats is a read-only tally kept across a run. It is not a snapshot
// mechanism: there is no way to feed it back in to resume a run, only
// to report on one already executed.
type Stats struct {
	InstructionsExecuted uint64
	BytesOutput          uint64
	BytesInput           uint64
}

// Machine is the execution core: eight registers, a program counter, a
// reference to segmented memory, and the I/O adapter. There is exactly
// one Machine per run, executed synchronously on the calling goroutine.
type Machine struct {
	reg [numRegisters]uint32
	pc  uint32

	mem *SegmentedMemory
	io  *ioAdapter

	stats Stats
	log   *slog.Logger
}

// NewMachine seats progWords as segment 0 and returns a Machine ready
// to run, with all eight registers and the program counter at zero.
// Run-trace logging is off by default (see SetLogger).
func NewMachine(progWords []uint32, stdout io.Writer, stdin io.Reader) *Machine {
	return &Machine{
		mem: NewSegmentedMemory(progWords),
		io:  newIOAdapter(stdout, stdin),
		log: umlog.New(nil, nil),
	}
}

// SetLogger attaches an internal/umlog logger for run tracing: a debug
// line when Run starts, then either an error line naming the fault it
// stops on or, on Halt, an info line with the final instruction count. Purely
// diagnostic — a Machine with no logger attached behaves identically.
func (m *Machine) SetLogger(l *slog.Logger) {
	m.log = l
}

// Stats returns the tally accumulated so far. Safe to call after Run
// returns, whether it returned because of Halt or a fault.
func (m *Machine) Stats() Stats {
	return m.stats
}

// Run executes the fetch-decode-execute loop until Halt (nil return) or
// until a handler raises a Fault. The garbage collector is disabled for
// the duration, because the dispatch loop below is the one place in
// this program where an allocation or a GC pause is actually felt.
func (m *Machine) Run() *Fault {
	restore := disableGC()
	defer restore()

	m.log.Debug("run started")

	for {
		word, fault := m.mem.Fetch(m.pc)
		if fault != nil {
			m.log.Error("run faulted", "error", fault.Error(), "pc", m.pc)
			return fault
		}

		halted, fault := m.step(word)
		if fault != nil {
			m.log.Error("run faulted", "error", fault.Error(), "pc", m.pc)
			return fault
		}
		if halted {
			m.log.Info("run halted", "instructions", m.stats.InstructionsExecuted)
			return nil
		}
	}
}
