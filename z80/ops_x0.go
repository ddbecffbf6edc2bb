// ops_x0.go - opcode group X=0 (0x00-0x3F): NOP/EX/DJNZ/JR family, 16-bit
// loads and arithmetic, INC/DEC/LD on the 8-bit register set, accumulator
// rotate/DAA/CPL/SCF/CCF.

package z80

func (m *vm) execX0(opcode byte, f opFields) {
	s := m.s
	switch f.Z {
	case 0:
		m.execX0Z0(f)
	case 1:
		if f.Q == 0 {
			nn := m.fetchImm16()
			m.setRegPair(f.P, nn)
		} else {
			m.internal(7)
			s.addHLx(m.regPair(f.P))
		}
	case 2:
		m.execX0Z2(f)
	case 3:
		m.internal(2)
		if f.Q == 0 {
			m.setRegPair(f.P, m.regPair(f.P)+1)
		} else {
			m.setRegPair(f.P, m.regPair(f.P)-1)
		}
	case 4:
		if f.Y == 6 {
			addr := m.hlMemAddr()
			v := m.memRead8(addr)
			m.internal(1)
			m.memWrite8(addr, s.inc8(v))
		} else {
			m.regWrite(f.Y, s.inc8(m.regRead(f.Y)))
		}
	case 5:
		if f.Y == 6 {
			addr := m.hlMemAddr()
			v := m.memRead8(addr)
			m.internal(1)
			m.memWrite8(addr, s.dec8(v))
		} else {
			m.regWrite(f.Y, s.dec8(m.regRead(f.Y)))
		}
	case 6:
		m.execX0Z6(f)
	default:
		m.execX0Z7(f)
	}
}

func (m *vm) execX0Z0(f opFields) {
	s := m.s
	switch f.Y {
	case 0:
		// NOP
	case 1:
		s.ExAF()
	case 2:
		m.internal(1)
		s.Regs[RegB]--
		d := m.fetchDisp()
		if s.Regs[RegB] != 0 {
			m.internal(5)
			s.PC = uint16(int32(s.PC) + int32(d))
			s.WZ = s.PC
		}
	case 3:
		d := m.fetchDisp()
		m.internal(5)
		s.PC = uint16(int32(s.PC) + int32(d))
		s.WZ = s.PC
	default:
		d := m.fetchDisp()
		if s.condTrue(f.Y - 4) {
			m.internal(5)
			s.PC = uint16(int32(s.PC) + int32(d))
			s.WZ = s.PC
		}
	}
}

func (m *vm) execX0Z2(f opFields) {
	s := m.s
	switch {
	case f.Q == 0 && f.P == 0:
		m.memWrite8(s.BC(), s.Regs[RegA])
		s.WZ = s.BC() + 1
	case f.Q == 0 && f.P == 1:
		m.memWrite8(s.DE(), s.Regs[RegA])
		s.WZ = s.DE() + 1
	case f.Q == 0 && f.P == 2:
		nn := m.fetchImm16()
		m.memWrite8(nn, byte(s.HLx()))
		m.memWrite8(nn+1, byte(s.HLx()>>8))
		s.WZ = nn + 1
	case f.Q == 0:
		nn := m.fetchImm16()
		m.memWrite8(nn, s.Regs[RegA])
		s.WZ = uint16(s.Regs[RegA])<<8 | (nn+1)&0xFF
	case f.Q == 1 && f.P == 0:
		s.Regs[RegA] = m.memRead8(s.BC())
		s.WZ = s.BC() + 1
	case f.Q == 1 && f.P == 1:
		s.Regs[RegA] = m.memRead8(s.DE())
		s.WZ = s.DE() + 1
	case f.Q == 1 && f.P == 2:
		nn := m.fetchImm16()
		lo := m.memRead8(nn)
		hi := m.memRead8(nn + 1)
		s.SetHLx(pair(hi, lo))
		s.WZ = nn + 1
	default:
		nn := m.fetchImm16()
		s.Regs[RegA] = m.memRead8(nn)
		s.WZ = uint16(s.Regs[RegA])<<8 | (nn+1)&0xFF
	}
}

func (m *vm) execX0Z6(f opFields) {
	if f.Y != 6 {
		n := m.fetchImm8()
		m.regWrite(f.Y, n)
		return
	}
	addr, indexed := m.dispOnly()
	if indexed {
		m.internal(2)
	}
	n := m.fetchImm8()
	m.memWrite8(addr, n)
}

func (m *vm) execX0Z7(f opFields) {
	s := m.s
	switch f.Y {
	case 0:
		res, c := rlc(s.Regs[RegA])
		s.Regs[RegA] = res
		s.updateAccumRotateFlags(c)
	case 1:
		res, c := rrc(s.Regs[RegA])
		s.Regs[RegA] = res
		s.updateAccumRotateFlags(c)
	case 2:
		res, c := rl(s.Regs[RegA], s.Flag(FlagC))
		s.Regs[RegA] = res
		s.updateAccumRotateFlags(c)
	case 3:
		res, c := rr(s.Regs[RegA], s.Flag(FlagC))
		s.Regs[RegA] = res
		s.updateAccumRotateFlags(c)
	case 4:
		s.daa()
	case 5:
		s.cpl()
	case 6:
		s.scf()
	default:
		s.ccf()
	}
}
