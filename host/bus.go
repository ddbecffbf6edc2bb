// bus.go - adapts Memory into a z80.TickFunc

package host

import "z80core/z80"

// Tick returns a z80.TickFunc bound to this Memory: the one place pin
// encoding meets actual byte storage. Grounded on the teacher's
// Z80BusAdapter.Read/Write dispatch, flattened since this harness has no
// bank windows or chip register selects to arbitrate.
func (m *Memory) Tick(numTicks int, pins z80.Pins) z80.Pins {
	addr := pins.Addr()

	switch {
	case pins.Has(z80.MREQ | z80.RD):
		return pins.WithData(m.RAM[addr])
	case pins.Has(z80.MREQ | z80.WR):
		m.RAM[addr] = pins.Data()
		return pins
	case pins.Has(z80.IORQ | z80.RD):
		return pins.WithData(m.readPort(byte(addr)))
	case pins.Has(z80.IORQ | z80.WR):
		m.writePort(byte(addr), pins.Data())
		return pins
	default:
		return pins
	}
}
