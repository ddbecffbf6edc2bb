// ops_cb_indexed.go - DDCB/FDCB: displacement-then-suboperand fetch, applied
// to (IX+d)/(IY+d). Documented-undocumented quirk preserved: the rotate/
// shift/RES/SET forms also copy their result into the register named by the
// suboperand's Z field when that field isn't 6, even though the addressed
// operand is always the (IX+d)/(IY+d) byte, never the plain register.

package z80

// execIndexedCB runs once the dispatcher has already consumed the DD/FD and
// CB prefix bytes (8T total, via the shared prefix loop in execOne) and
// found s.idx set.
func (m *vm) execIndexedCB() {
	s := m.s
	d := m.fetchDisp()
	subop := m.fetchImm8() // plain read, no R increment: not an M1 cycle
	f := decodeFields(subop)

	addr := s.IndexedAddr(d)
	s.WZ = addr
	value := m.memRead8(addr)

	switch f.X {
	case 0:
		res, c := shiftGroup(f.Y, value, s.Flag(FlagC))
		m.internal(3)
		m.memWrite8(addr, res)
		s.updateCBShiftFlags(res, c)
		if f.Z != 6 {
			m.regWritePlain(f.Z, res)
		}
	case 1:
		m.internal(3)
		s.bitFlags(f.Y, value, byte(addr>>8))
	case 2:
		res := value &^ (1 << f.Y)
		m.internal(3)
		m.memWrite8(addr, res)
		if f.Z != 6 {
			m.regWritePlain(f.Z, res)
		}
	default:
		res := value | (1 << f.Y)
		m.internal(3)
		m.memWrite8(addr, res)
		if f.Z != 6 {
			m.regWritePlain(f.Z, res)
		}
	}
}
