// interrupt.go - NMI/INT sampling and service sequences

package z80

// checkInterrupts samples the pins returned by the most recent bus cycle for
// NMI (edge-triggered) and INT (level-triggered, gated by IFF1), servicing
// whichever is pending. Runs at every instruction boundary, including while
// halted, since that's the only way a halted CPU wakes up.
func (m *vm) checkInterrupts() bool {
	s := m.s

	nmiLine := s.lastPins.Has(NMI)
	edge := nmiLine && !s.nmiPrev
	s.nmiPrev = nmiLine
	if edge {
		m.serviceNMI()
		return true
	}

	if s.lastPins.Has(INT) && s.IFF1 {
		m.serviceINT()
		return true
	}

	return false
}

// serviceNMI: 11T. Acknowledge (5T, R bumped), push PC, jump to 0x0066. IFF1
// is saved to IFF2 and cleared; the handler re-enables interrupts with RETN,
// which restores IFF1 from IFF2.
func (m *vm) serviceNMI() {
	s := m.s
	s.Halted = false
	m.internal(5)
	s.incR()
	s.IFF2 = s.IFF1
	s.IFF1 = false
	m.push16(s.PC)
	s.PC = 0x0066
	s.WZ = s.PC
}

// serviceINT dispatches on IM for the three acceptance sequences of spec
// section 4.G.
func (m *vm) serviceINT() {
	s := m.s
	s.Halted = false
	s.IFF1 = false
	s.IFF2 = false

	switch s.IM {
	case 0:
		m.serviceIM0()
	case 1:
		m.internal(7)
		s.incR()
		m.push16(s.PC)
		s.PC = 0x0038
		s.WZ = s.PC
	default:
		m.serviceIM2()
	}
}

// serviceIM2: 19T. The acknowledge cycle (7T, IORQ|M1) reads the interrupting
// device's vector byte; the core builds a table address from I and that
// byte, reads the 16-bit handler address from it, then pushes PC and jumps.
func (m *vm) serviceIM2() {
	s := m.s
	pins := Pins(0).WithAddr(s.PC).Set(M1 | IORQ)
	pins = m.step(7, pins)
	vec := pins.Data()
	s.incR()

	addr := uint16(s.I)<<8 | uint16(vec&0xFE)
	lo := m.memRead8(addr)
	hi := m.memRead8(addr + 1)

	m.push16(s.PC)
	s.PC = pair(hi, lo)
	s.WZ = s.PC
}

// serviceIM0: the interrupting device drives an instruction opcode onto the
// data bus during a 6T IORQ|M1 cycle; in practice this is almost always a
// single-byte RST, so that's what's emulated here rather than re-entering
// the full decoder for an out-of-memory instruction stream.
func (m *vm) serviceIM0() {
	s := m.s
	pins := Pins(0).WithAddr(s.PC).Set(M1 | IORQ)
	pins = m.step(6, pins)
	op := pins.Data()
	s.incR()

	m.push16(s.PC)
	s.PC = uint16(op & 0x38)
	s.WZ = s.PC
}
