package vm

// step decodes and executes the instruction in word, which was already
// fetched from segment 0 at the current program counter. It reports
// halted=true when the program should stop normally (opcode 7, Halt),
// or a non-nil Fault when the instruction cannot complete. Every
// handler except LoadProgram advances the program counter by one;
// LoadProgram sets it explicitly and must not also receive the +1.
//
// A single switch over the decoded opcode, one case per instruction,
// operates directly on the machine's own state rather than threading
// values through a table of closures: Go's compiler already lowers a
// dense, small-integer switch like this one to a jump table, so a
// branchless hot loop doesn't require hand-rolling a [14]func(...)
// array to get one.
func (m *Machine) step(word uint32) (halted bool, fault *Fault) {
	d := Decode(word)
	pc := m.pc

	switch d.Op {
	case OpCondMove:
		if m.reg[d.C] != 0 {
			m.reg[d.A] = m.reg[d.B]
		}
		m.pc++

	case OpSegLoad:
		v, f := m.mem.Read(pc, m.reg[d.B], m.reg[d.C])
		if f != nil {
			return false, f
		}
		m.reg[d.A] = v
		m.pc++

	case OpSegStore:
		if f := m.mem.Write(pc, m.reg[d.A], m.reg[d.B], m.reg[d.C]); f != nil {
			return false, f
		}
		m.pc++

	case OpAdd:
		m.reg[d.A] = m.reg[d.B] + m.reg[d.C]
		m.pc++

	case OpMul:
		m.reg[d.A] = m.reg[d.B] * m.reg[d.C]
		m.pc++

	case OpDiv:
		if m.reg[d.C] == 0 {
			return false, faultDivisionByZero(pc, m.reg[d.B])
		}
		m.reg[d.A] = m.reg[d.B] / m.reg[d.C]
		m.pc++

	case OpNand:
		m.reg[d.A] = ^(m.reg[d.B] & m.reg[d.C])
		m.pc++

	case OpHalt:
		return true, nil

	case OpMapSeg:
		m.reg[d.B] = m.mem.Allocate(m.reg[d.C])
		m.pc++

	case OpUnmapSeg:
		if f := m.mem.Free(pc, m.reg[d.C]); f != nil {
			return false, f
		}
		m.pc++

	case OpOutput:
		v := m.reg[d.C]
		if v > 0xFF {
			return false, faultIOOutOfRange(pc, v)
		}
		if err := m.io.writeByte(byte(v)); err != nil {
			return false, newFault(IOOutOfRange, pc, "output stream closed")
		}
		m.stats.BytesOutput++
		m.pc++

	case OpInput:
		b, eof := m.io.readByte()
		if eof {
			m.reg[d.C] = 0xFFFFFFFF
		} else {
			m.reg[d.C] = uint32(b)
			m.stats.BytesInput++
		}
		m.pc++

	case OpLoadProgram:
		if f := m.mem.LoadProgram(pc, m.reg[d.B]); f != nil {
			return false, f
		}
		m.pc = m.reg[d.C]

	case OpLoadImm:
		m.reg[d.A] = d.Imm
		m.pc++

	default:
		return false, faultInvalidOpcode(pc, uint32(d.Op))
	}

	m.stats.InstructionsExecuted++
	return false, nil
}
