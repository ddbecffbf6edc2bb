// decode.go - instruction dispatcher: prefix chain, interrupt sampling, Exec

package z80

// Exec runs the processor until at least one full instruction (including any
// prefix chain) has completed, and returns the total number of T-states
// consumed. minTicks lets a host that wants coarser scheduling grain ask for
// several instructions in one call; Exec always executes at least one.
func (s *State) Exec(minTicks int, tick TickFunc) int {
	m := &vm{s: s, tick: tick}
	for {
		m.execOne()
		if m.total >= minTicks {
			break
		}
	}
	return m.total
}

// execOne runs exactly one instruction boundary: interrupt sampling, then
// either a halted refetch or a full prefix-chain decode and dispatch.
func (m *vm) execOne() {
	s := m.s
	s.idx = idxNone

	if s.iffDelay > 0 {
		s.iffDelay--
		if s.iffDelay == 0 {
			s.IFF1 = true
			s.IFF2 = true
		}
	}

	if m.checkInterrupts() {
		return
	}

	if s.Halted {
		m.m1FetchHalted()
		return
	}

	opcode := m.m1Fetch()
	for opcode == 0xDD || opcode == 0xFD {
		if opcode == 0xDD {
			s.idx = idxIX
		} else {
			s.idx = idxIY
		}
		opcode = m.m1Fetch()
	}

	switch {
	case opcode == 0xCB && s.idx != idxNone:
		m.execIndexedCB()
	case opcode == 0xCB:
		sub := m.m1Fetch()
		m.execCB(sub)
	case opcode == 0xED:
		s.idx = idxNone
		m.execED()
	default:
		m.execBase(opcode)
	}

	s.idx = idxNone
}

// m1FetchHalted performs the bus-visible half of an M1 cycle while halted
// (still bumps R, still ticks 4T) without advancing PC. PC already points
// past the HALT opcode, so the read goes to PC-1 and the HALT opcode is
// refetched every cycle until an interrupt wakes the CPU.
func (m *vm) m1FetchHalted() {
	s := m.s
	pins := Pins(0).WithAddr(s.PC - 1).Set(M1 | MREQ | RD)
	m.step(2, pins)

	refreshAddr := uint16(s.I)<<8 | uint16(s.R)
	s.incR()
	rpins := Pins(0).WithAddr(refreshAddr).Set(RFSH | MREQ)
	m.step(2, rpins)
}

// execBase dispatches an unprefixed (or DD/FD-prefixed, non-CB/ED) opcode by
// its X field. Register-pair and register accessors are idx-aware (HLx,
// regRead/regWrite), so the same handlers serve both the base and IX/IY
// forms without duplication — exactly how the real chip treats DD/FD as "use
// IX/IY wherever HL would otherwise be consumed."
func (m *vm) execBase(opcode byte) {
	f := decodeFields(opcode)
	switch f.X {
	case 0:
		m.execX0(opcode, f)
	case 1:
		m.execX1(opcode, f)
	case 2:
		m.execX2(opcode, f)
	default:
		m.execX3(opcode, f)
	}
}
