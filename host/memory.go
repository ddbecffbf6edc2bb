// memory.go - flat 64KB address space plus an I/O port map for test harnesses

package host

import "fmt"

// Memory is a flat 64KB byte array: the entire addressable range a real Z80
// sees on its address pins, with no banking. Grounded on the teacher's
// MachineBus/Z80BusAdapter Read/Write split, collapsed to the one address
// space this harness needs (no VRAM/sprite/font bank windows).
type Memory struct {
	RAM [0x10000]byte

	ports   [0x100]byte
	outLog  []PortWrite
	inHook  func(port byte) byte
	outHook func(port byte, value byte)
}

// PortWrite records one OUT for tests/trace tooling that want to assert on
// I/O activity without installing a hook.
type PortWrite struct {
	Port  byte
	Value byte
}

// NewMemory returns a zeroed 64KB address space.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadAt copies data into RAM starting at addr, erroring if it would run off
// the top of the address space.
func (m *Memory) LoadAt(addr uint16, data []byte) error {
	if int(addr)+len(data) > len(m.RAM) {
		return fmt.Errorf("host: load of %d bytes at 0x%04X overruns 64KB address space", len(data), addr)
	}
	copy(m.RAM[addr:], data)
	return nil
}

// ReadByte / WriteByte give Go-side callers (the loader, BDOS, tests) direct
// access without going through the tick callback's pin encoding.
func (m *Memory) ReadByte(addr uint16) byte       { return m.RAM[addr] }
func (m *Memory) WriteByte(addr uint16, v byte)   { m.RAM[addr] = v }

// SetInHook installs a callback that answers every port read in place of the
// values latched in the port array; SetOutHook is notified of every OUT in
// addition to it being recorded in OutLog.
func (m *Memory) SetInHook(fn func(port byte) byte)       { m.inHook = fn }
func (m *Memory) SetOutHook(fn func(port byte, value byte)) { m.outHook = fn }

// OutLog returns every OUT observed since the Memory was created or last
// cleared, in order.
func (m *Memory) OutLog() []PortWrite { return m.outLog }

func (m *Memory) ClearOutLog() { m.outLog = nil }

func (m *Memory) readPort(port byte) byte {
	if m.inHook != nil {
		return m.inHook(port)
	}
	return m.ports[port]
}

func (m *Memory) writePort(port byte, v byte) {
	m.ports[port] = v
	m.outLog = append(m.outLog, PortWrite{Port: port, Value: v})
	if m.outHook != nil {
		m.outHook(port, v)
	}
}
