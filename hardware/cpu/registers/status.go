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

package registers

import (
	"strings"

	"github.com/jetsetilly/nes2a03/curated"
)

// Bit indexes of the flags in the status register.
const (
	Carry = iota
	Zero
	InterruptDisable
	Decimal
	Break
	Unused
	Overflow
	Negative
)

// InvalidStatusBit is returned by Set() and Get() when the bit index is not
// in the range 0 to 7.
const InvalidStatusBit = "registers: invalid status bit (%d)"

// the unused bit in the status register always reads as 1
const unusedMask = uint8(1 << Unused)

// StatusRegister is the special purpose register that stores the flags of the
// CPU. The flags are packed one per bit.
type StatusRegister struct {
	value uint8
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{value: unusedMask}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags from bit 7 to bit 0. Upper case indicates that a
// flag is set.
func (sr StatusRegister) String() string {
	const labels = "CZIDBUVN"
	s := strings.Builder{}
	for b := Negative; b >= Carry; b-- {
		if b == Unused {
			s.WriteRune('-')
			continue
		}
		if sr.get(b) {
			s.WriteByte(labels[b])
		} else {
			s.WriteByte(labels[b] + 'a' - 'A')
		}
	}
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.value = unusedMask
}

// Value returns the status register as a byte suitable for pushing onto the
// stack. Note that the Break flag is decided by the instruction doing the
// pushing.
func (sr StatusRegister) Value() uint8 {
	return sr.value | unusedMask
}

// Load status register from a byte (popped from the stack, for example).
func (sr *StatusRegister) Load(v uint8) {
	sr.value = v | unusedMask
}

// Set sets or clears a single bit of the status register. All other bits are
// left untouched.
func (sr *StatusRegister) Set(bit int, v bool) error {
	if bit < Carry || bit > Negative {
		return curated.Errorf(InvalidStatusBit, bit)
	}
	sr.set(bit, v)
	return nil
}

// Get returns the state of a single bit of the status register.
func (sr StatusRegister) Get(bit int) (bool, error) {
	if bit < Carry || bit > Negative {
		return false, curated.Errorf(InvalidStatusBit, bit)
	}
	return sr.get(bit), nil
}

func (sr *StatusRegister) set(bit int, v bool) {
	if v {
		sr.value |= 1 << bit
	} else {
		sr.value &^= 1 << bit
	}
	sr.value |= unusedMask
}

func (sr StatusRegister) get(bit int) bool {
	return (sr.value|unusedMask)&(1<<bit) != 0
}

// SetZeroNegative sets the Zero flag if v is zero and the Negative flag if bit
// 7 of v is set. No other flags are affected.
//
// Every instruction that produces a result in a register or in memory updates
// the flags with this function.
func (sr *StatusRegister) SetZeroNegative(v uint8) {
	sr.set(Zero, v == 0)
	sr.set(Negative, v&0x80 == 0x80)
}

// Carry flag.
func (sr StatusRegister) Carry() bool { return sr.get(Carry) }

// Zero flag.
func (sr StatusRegister) Zero() bool { return sr.get(Zero) }

// InterruptDisable flag.
func (sr StatusRegister) InterruptDisable() bool { return sr.get(InterruptDisable) }

// Decimal flag. The flag can be set and cleared but has no effect on
// arithmetic.
func (sr StatusRegister) Decimal() bool { return sr.get(Decimal) }

// Break flag.
func (sr StatusRegister) Break() bool { return sr.get(Break) }

// Overflow flag.
func (sr StatusRegister) Overflow() bool { return sr.get(Overflow) }

// Negative flag.
func (sr StatusRegister) Negative() bool { return sr.get(Negative) }

// SetCarry sets or clears the Carry flag.
func (sr *StatusRegister) SetCarry(v bool) { sr.set(Carry, v) }

// SetZero sets or clears the Zero flag.
func (sr *StatusRegister) SetZero(v bool) { sr.set(Zero, v) }

// SetInterruptDisable sets or clears the InterruptDisable flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) { sr.set(InterruptDisable, v) }

// SetDecimal sets or clears the Decimal flag.
func (sr *StatusRegister) SetDecimal(v bool) { sr.set(Decimal, v) }

// SetBreak sets or clears the Break flag.
func (sr *StatusRegister) SetBreak(v bool) { sr.set(Break, v) }

// SetOverflow sets or clears the Overflow flag.
func (sr *StatusRegister) SetOverflow(v bool) { sr.set(Overflow, v) }

// SetNegative sets or clears the Negative flag.
func (sr *StatusRegister) SetNegative(v bool) { sr.set(Negative, v) }
