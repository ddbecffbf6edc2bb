// loader.go - .com image loading: CP/M's flat load-at-0x100 convention

package host

import (
	"fmt"
	"os"

	"z80core/z80"
)

// ComLoadAddr is the standard CP/M transient program area base: every
// .com image assumes it's loaded here and jumps here at boot.
const ComLoadAddr = 0x0100

// LoadCOM reads a .com image from path and loads it at ComLoadAddr,
// pointing PC at the entry point and SP at a conventional high-memory stack.
func LoadCOM(path string, mem *Memory, s *z80.State) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("host: reading %s: %w", path, err)
	}
	if err := mem.LoadAt(ComLoadAddr, data); err != nil {
		return fmt.Errorf("host: loading %s: %w", path, err)
	}

	s.Reset()
	s.PC = ComLoadAddr
	s.SP = 0xFFFE
	mem.WriteByte(0x0005, 0xC9) // RET, in case BDOS.Check is bypassed
	mem.WriteByte(0x0000, 0x76) // HALT at the warm-boot vector as a backstop

	return nil
}
