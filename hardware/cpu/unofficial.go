// This file is part of nes2a03.
//
// nes2a03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nes2a03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nes2a03.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/nes2a03/curated"
)

// the stable unofficial opcodes. most are a combination of two official
// instructions sharing the same addressing mode

func (mc *CPU) lax(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.Load(v)
	mc.X.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

func (mc *CPU) sax(m Mode) error {
	return m.Save(mc, mc.A.Value()&mc.X.Value())
}

// DEC followed by CMP
func (mc *CPU) dcp(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	v--
	if err := m.Save(mc, v); err != nil {
		return err
	}
	mc.Status.SetCarry(mc.A.Value() >= v)
	mc.Status.SetZeroNegative(mc.A.Value() - v)
	return nil
}

// INC followed by SBC
func (mc *CPU) isc(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	v++
	if err := m.Save(mc, v); err != nil {
		return err
	}
	mc.subtract(v)
	return nil
}

// ASL followed by ORA
func (mc *CPU) slo(m Mode) error {
	if err := mc.asl(m); err != nil {
		return err
	}
	return mc.ora(m)
}

// ROL followed by AND
func (mc *CPU) rla(m Mode) error {
	if err := mc.rol(m); err != nil {
		return err
	}
	return mc.and(m)
}

// LSR followed by EOR
func (mc *CPU) sre(m Mode) error {
	if err := mc.lsr(m); err != nil {
		return err
	}
	return mc.eor(m)
}

// ROR followed by ADC
func (mc *CPU) rra(m Mode) error {
	if err := mc.ror(m); err != nil {
		return err
	}
	return mc.adc(m)
}

// AND with the carry flag set to the sign of the result
func (mc *CPU) anc(m Mode) error {
	if err := mc.and(m); err != nil {
		return err
	}
	mc.Status.SetCarry(mc.A.IsNegative())
	return nil
}

// AND followed by LSR of the accumulator
func (mc *CPU) alr(m Mode) error {
	if err := mc.and(m); err != nil {
		return err
	}
	return mc.lsr(Accumulator{})
}

// AND followed by ROR of the accumulator. the carry and overflow flags are
// set from bits 6 and 5 of the result
func (mc *CPU) arr(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.AND(v)
	mc.A.ROR(mc.Status.Carry())

	r := mc.A.Value()
	mc.Status.SetZeroNegative(r)
	mc.Status.SetCarry(r&0x40 == 0x40)
	mc.Status.SetOverflow((r>>6)&0x01 != (r>>5)&0x01)
	return nil
}

// X is loaded with (A AND X) minus the value. the carry flag is set as though
// by CMP
func (mc *CPU) axs(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	ax := mc.A.Value() & mc.X.Value()
	mc.X.Load(ax - v)
	mc.Status.SetCarry(ax >= v)
	mc.Status.SetZeroNegative(mc.X.Value())
	return nil
}

func (mc *CPU) las(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	v &= mc.SP.Value()
	mc.A.Load(v)
	mc.X.Load(v)
	mc.SP.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

// KIL halts the CPU on real hardware
func (mc *CPU) kil(_ Mode) error {
	return curated.Errorf(IllegalOpcode, mc.LastResult.Defn.OpCode, mc.LastResult.Address)
}

// the remaining unofficial opcodes behave differently between individual
// chips and are not emulated
func (mc *CPU) unsupported(_ Mode) error {
	return curated.Errorf(UnsupportedOpcode, mc.LastResult.Defn.OpCode, mc.LastResult.Defn.Mnemonic(), mc.LastResult.Address)
}
