// ops_cb.go - CB-prefixed opcodes: rotate/shift group, BIT/RES/SET on the
// plain register set (including (HL), but never (IX+d)/(IY+d) — those route
// through execIndexedCB instead, since their timing and no-R-increment
// fetch sequence differ enough to need a separate path).

package z80

// execCB runs after the dispatcher has already consumed the CB opcode byte's
// own M1 fetch (4T, via the shared prefix loop in execOne).
func (m *vm) execCB(opcode byte) {
	f := decodeFields(opcode)
	if f.Z == 6 {
		m.execCBMem(f)
		return
	}
	switch f.X {
	case 0:
		v := m.regRead(f.Z)
		res, c := shiftGroup(f.Y, v, m.s.Flag(FlagC))
		m.regWrite(f.Z, res)
		m.s.updateCBShiftFlags(res, c)
	case 1:
		v := m.regRead(f.Z)
		m.s.bitFlags(f.Y, v, v)
	case 2:
		v := m.regRead(f.Z)
		m.regWrite(f.Z, v&^(1<<f.Y))
	default:
		v := m.regRead(f.Z)
		m.regWrite(f.Z, v|(1<<f.Y))
	}
}

// execCBMem handles the Z==6 ((HL)) forms, which all share the read/
// internal(1)/[write] read-modify-write shape, distinct from the register
// forms' zero-extra-tick timing.
func (m *vm) execCBMem(f opFields) {
	s := m.s
	addr := s.HL()
	v := m.memRead8(addr)
	switch f.X {
	case 0:
		res, c := shiftGroup(f.Y, v, s.Flag(FlagC))
		m.internal(1)
		m.memWrite8(addr, res)
		s.updateCBShiftFlags(res, c)
	case 1:
		m.internal(1)
		s.bitFlags(f.Y, v, byte(s.WZ>>8))
	case 2:
		m.internal(1)
		m.memWrite8(addr, v&^(1<<f.Y))
	default:
		m.internal(1)
		m.memWrite8(addr, v|(1<<f.Y))
	}
}
