package host

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"z80core/z80"
)

func TestBDOSFunction2WritesOneCharacter(t *testing.T) {
	var out strings.Builder
	b := NewBDOS(&out)
	mem := NewMemory()
	s := &z80.State{}
	s.PC = 0x0005
	s.SP = 0xFFFE
	mem.WriteByte(0xFFFE, 0x00)
	mem.WriteByte(0xFFFF, 0x01) // return address 0x0100
	s.Regs[z80.RegC] = 2
	s.Regs[z80.RegE] = 'X'

	handled := b.Check(s, mem)
	require.True(t, handled)
	require.Equal(t, "X", out.String())
	require.Equal(t, uint16(0x0100), s.PC)
	require.Equal(t, uint16(0xFFFE+2), s.SP)
}

func TestBDOSFunction9WritesDollarTerminatedString(t *testing.T) {
	var out strings.Builder
	b := NewBDOS(&out)
	mem := NewMemory()
	s := &z80.State{}
	s.PC = 0x0005
	s.SP = 0xFFFE
	mem.WriteByte(0xFFFE, 0x00)
	mem.WriteByte(0xFFFF, 0x01)
	s.Regs[z80.RegC] = 9
	s.SetDE(0x2000)
	msg := "hello$"
	for i, c := range []byte(msg) {
		mem.WriteByte(0x2000+uint16(i), c)
	}

	b.Check(s, mem)
	require.Equal(t, "hello", out.String())
}

func TestBDOSWarmBootSetsExited(t *testing.T) {
	b := NewBDOS(&strings.Builder{})
	mem := NewMemory()
	s := &z80.State{PC: 0x0000}

	handled := b.Check(s, mem)
	require.True(t, handled)
	require.True(t, b.Exited)
}

func TestBDOSCheckIgnoresOrdinaryPC(t *testing.T) {
	b := NewBDOS(&strings.Builder{})
	mem := NewMemory()
	s := &z80.State{PC: 0x0100}

	require.False(t, b.Check(s, mem))
	require.False(t, b.Exited)
}
