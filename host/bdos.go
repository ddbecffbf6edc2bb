// bdos.go - minimal CP/M BDOS shim: just enough of functions 2 and 9 to run
// classic Z80 exercisers (zexdoc/zexall-style .com images), which call
// through address 5 expecting a BDOS stub rather than a real disk OS.

package host

import (
	"fmt"
	"io"

	"z80core/z80"
)

// BDOS intercepts CALL 5 (the CP/M BDOS entry point) and PC==0 (warm boot /
// program exit) so a .com image can run to completion against nothing but a
// flat Memory — no real CP/M, no real disk.
type BDOS struct {
	Out    io.Writer
	Exited bool
	Code   int
}

// NewBDOS writes to w (typically os.Stdout) for functions 2/9.
func NewBDOS(w io.Writer) *BDOS {
	return &BDOS{Out: w}
}

// Check inspects PC before each instruction. If it lands on the BDOS
// trampoline or the warm-boot vector, it services the call directly and
// reports true so the caller should not hand this instruction to Exec.
func (b *BDOS) Check(s *z80.State, mem *Memory) bool {
	switch s.PC {
	case 0x0000:
		b.Exited = true
		return true
	case 0x0005:
		b.call(s, mem)
		b.ret(s, mem)
		return true
	default:
		return false
	}
}

func (b *BDOS) call(s *z80.State, mem *Memory) {
	switch s.Regs[z80.RegC] {
	case 2:
		fmt.Fprintf(b.Out, "%c", s.Regs[z80.RegE])
	case 9:
		addr := s.DE()
		for mem.ReadByte(addr) != '$' {
			fmt.Fprintf(b.Out, "%c", mem.ReadByte(addr))
			addr++
		}
	default:
		fmt.Fprintf(b.Out, "\nunhandled BDOS function %d\n", s.Regs[z80.RegC])
		b.Exited = true
	}
}

// ret pops the return address CALL 5 pushed and resumes the caller, since
// BDOS calls here never actually execute in emulated memory.
func (b *BDOS) ret(s *z80.State, mem *Memory) {
	lo := mem.ReadByte(s.SP)
	hi := mem.ReadByte(s.SP + 1)
	s.SP += 2
	s.PC = uint16(hi)<<8 | uint16(lo)
}
