// ops_x2.go - opcode group X=2 (0x80-0xBF): ALU A,r

package z80

func (m *vm) execX2(opcode byte, f opFields) {
	v := m.regRead(f.Z)
	m.alu(f.Y, v)
}

// alu applies one of the eight ALU operations (ADD ADC SUB SBC AND XOR OR CP)
// selected by op to A and value. Shared by the X=2 block, ALU A,n (0xC6 ..
// 0xFE), and nothing else — CB/ED have no ALU forms.
func (m *vm) alu(op byte, value byte) {
	s := m.s
	switch op {
	case 0:
		s.addA(value, 0)
	case 1:
		carry := byte(0)
		if s.Flag(FlagC) {
			carry = 1
		}
		s.addA(value, carry)
	case 2:
		s.subA(value, 0, true)
	case 3:
		carry := byte(0)
		if s.Flag(FlagC) {
			carry = 1
		}
		s.subA(value, carry, true)
	case 4:
		s.andA(value)
	case 5:
		s.xorA(value)
	case 6:
		s.orA(value)
	default:
		s.subA(value, 0, false)
	}
}
