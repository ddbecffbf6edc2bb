package z80

import "testing"

func TestLDIIncrementsAndTransfers(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x1000)
	r.s.SetDE(0x2000)
	r.s.SetBC(0x0001)
	r.bus.mem[0x1000] = 0xAB
	r.load(0x0000, 0xED, 0xA0) // LDI
	ticks := r.step()
	requireEqualU8(t, "(DE)", r.bus.mem[0x2000], 0xAB)
	requireEqualU16(t, "HL", r.s.HL(), 0x1001)
	requireEqualU16(t, "DE", r.s.DE(), 0x2001)
	requireEqualU16(t, "BC", r.s.BC(), 0x0000)
	requireFlag(t, r.s, FlagPV, "PV (BC hit zero)", false)
	requireEqualU16(t, "ticks", uint16(ticks), 16)
}

func TestLDIRRepeatsUntilBCZero(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x1000)
	r.s.SetDE(0x2000)
	r.s.SetBC(0x0003)
	copy(r.bus.mem[0x1000:], []byte{1, 2, 3})
	r.load(0x0000, 0xED, 0xB0) // LDIR

	// Each repeat is its own instruction boundary (PC is rewound to the ED
	// B0 opcode between them, exactly as on real hardware), so draining it
	// needs a minTicks large enough to span all of them in one Exec call.
	ticks := r.s.Exec(50, r.bus.tick)
	requireEqualU16(t, "BC", r.s.BC(), 0x0000)
	requireEqualU8(t, "mem[0x2000]", r.bus.mem[0x2000], 1)
	requireEqualU8(t, "mem[0x2002]", r.bus.mem[0x2002], 3)
	// two repeats (21T each) plus the final non-repeating pass (16T) = 58T
	requireEqualU16(t, "ticks", uint16(ticks), 58)
}

func TestCPIFindsMatch(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x1000)
	r.s.SetBC(0x0002)
	r.s.Regs[RegA] = 0x42
	r.bus.mem[0x1000] = 0x42
	r.load(0x0000, 0xED, 0xA1) // CPI
	r.step()
	requireFlag(t, r.s, FlagZ, "Z (match)", true)
	requireEqualU16(t, "HL", r.s.HL(), 0x1001)
	requireEqualU16(t, "BC", r.s.BC(), 0x0001)
}

func TestOUTIWritesPortAndDecrementsB(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x1000)
	r.s.Regs[RegB] = 0x02
	r.s.Regs[RegC] = 0x10
	r.bus.mem[0x1000] = 0x7E
	r.load(0x0000, 0xED, 0xA3) // OUTI
	r.step()
	requireEqualU8(t, "port 0x10", r.bus.ports[0x10], 0x7E)
	requireEqualU8(t, "B", r.s.Regs[RegB], 0x01)
	requireEqualU16(t, "HL", r.s.HL(), 0x1001)
}

func TestLDAICopiesIFF2ToParity(t *testing.T) {
	r := newRig(t)
	r.s.I = 0x42
	r.s.IFF2 = true
	r.load(0x0000, 0xED, 0x57) // LD A,I
	ticks := r.step()
	requireEqualU8(t, "A", r.s.Regs[RegA], 0x42)
	requireFlag(t, r.s, FlagPV, "PV (IFF2)", true)
	requireEqualU16(t, "ticks", uint16(ticks), 9)
}

func TestRRD(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x1000)
	r.s.Regs[RegA] = 0x84
	r.bus.mem[0x1000] = 0x20
	r.load(0x0000, 0xED, 0x67) // RRD
	ticks := r.step()
	requireEqualU8(t, "A", r.s.Regs[RegA], 0x80)
	requireEqualU8(t, "(HL)", r.bus.mem[0x1000], 0x42)
	requireEqualU16(t, "ticks", uint16(ticks), 18)
}

func TestSBCHLSetsBorrow(t *testing.T) {
	r := newRig(t)
	r.s.SetHL(0x0000)
	r.s.SetBC(0x0001)
	r.load(0x0000, 0xED, 0x42) // SBC HL,BC
	ticks := r.step()
	requireEqualU16(t, "HL", r.s.HL(), 0xFFFF)
	requireFlag(t, r.s, FlagC, "C (borrow)", true)
	requireFlag(t, r.s, FlagS, "S", true)
	requireEqualU16(t, "ticks", uint16(ticks), 15)
}

func TestNEG(t *testing.T) {
	r := newRig(t)
	r.s.Regs[RegA] = 0x01
	r.load(0x0000, 0xED, 0x44) // NEG
	r.step()
	requireEqualU8(t, "A", r.s.Regs[RegA], 0xFF)
	requireFlag(t, r.s, FlagC, "C", true)
	requireFlag(t, r.s, FlagS, "S", true)
}
