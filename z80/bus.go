// bus.go - bus-cycle primitives: the only place Exec touches the outside world

package z80

// TickFunc is the host-supplied bus callback. The core calls it once per bus
// cycle (or internal-only cycle) with the number of T-states that cycle
// consumes and the pin pattern describing it; the host performs memory/I-O/
// DMA work and returns pins with the data field updated for reads. The core
// treats tick as synchronous and total.
type TickFunc func(numTicks int, pins Pins) Pins

// vm bundles the register file with the host callback for the duration of a
// single Exec call. It is never retained across calls — the tick closure and
// running tick total are pure call-scoped state, not part of the CPU's
// persistent State (spec section 5: no state survives between Exec calls
// except what's in *State itself).
type vm struct {
	s     *State
	tick  TickFunc
	total int
}

func (m *vm) step(numTicks int, pins Pins) Pins {
	out := m.tick(numTicks, pins)
	m.total += numTicks
	m.s.lastPins = out
	return out
}

// m1Fetch performs an opcode (or prefix byte) fetch: 2T of M1|MREQ|RD at PC,
// then 2T of RFSH|MREQ at (I<<8)|R. Advances PC and bumps R's low 7 bits.
func (m *vm) m1Fetch() byte {
	s := m.s
	pins := Pins(0).WithAddr(s.PC).Set(M1 | MREQ | RD)
	pins = m.step(2, pins)
	data := pins.Data()
	s.PC++

	refreshAddr := uint16(s.I)<<8 | uint16(s.R)
	s.incR()
	rpins := Pins(0).WithAddr(refreshAddr).Set(RFSH | MREQ)
	m.step(2, rpins)

	return data
}

// memRead8 performs a plain 3T memory read with no M1/RFSH involvement (used
// for immediate operands, displacement bytes, and general memory access).
func (m *vm) memRead8(addr uint16) byte {
	pins := Pins(0).WithAddr(addr).Set(MREQ | RD)
	pins = m.step(3, pins)
	return pins.Data()
}

// memWrite8 performs a 3T memory write.
func (m *vm) memWrite8(addr uint16, value byte) {
	pins := Pins(0).WithAddr(addr).WithData(value).Set(MREQ | WR)
	m.step(3, pins)
}

// ioRead8 performs a 4T I/O read.
func (m *vm) ioRead8(port uint16) byte {
	pins := Pins(0).WithAddr(port).Set(IORQ | RD)
	pins = m.step(4, pins)
	return pins.Data()
}

// ioWrite8 performs a 4T I/O write.
func (m *vm) ioWrite8(port uint16, value byte) {
	pins := Pins(0).WithAddr(port).WithData(value).Set(IORQ | WR)
	m.step(4, pins)
}

// internal burns n T-states with no bus activity — the "documented extra
// cycles" that round an opcode's timing up to the official table entry.
func (m *vm) internal(n int) {
	if n <= 0 {
		return
	}
	m.step(n, Pins(0).WithAddr(m.s.PC))
}

// fetchImm8 reads the byte at PC via a plain memory read and advances PC.
// Immediate operands are not M1 cycles: no refresh, R unaffected.
func (m *vm) fetchImm8() byte {
	v := m.memRead8(m.s.PC)
	m.s.PC++
	return v
}

// fetchImm16 reads a little-endian word at PC, advancing PC by two.
func (m *vm) fetchImm16() uint16 {
	lo := m.fetchImm8()
	hi := m.fetchImm8()
	return pair(hi, lo)
}

// fetchDisp reads a displacement byte the same way as any immediate operand.
func (m *vm) fetchDisp() int8 { return int8(m.fetchImm8()) }

func (m *vm) push16(v uint16) {
	m.s.SP--
	m.memWrite8(m.s.SP, byte(v>>8))
	m.s.SP--
	m.memWrite8(m.s.SP, byte(v))
}

func (m *vm) pop16() uint16 {
	lo := m.memRead8(m.s.SP)
	m.s.SP++
	hi := m.memRead8(m.s.SP)
	m.s.SP++
	return pair(hi, lo)
}
