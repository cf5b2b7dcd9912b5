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
	"github.com/jetsetilly/nes2a03/hardware/memory/memorymap"
)

// the stack grows downwards from the top of page one. the SP points to the
// next free location

func (mc *CPU) push(v uint8) error {
	err := mc.mem.Write(memorymap.StackOrigin|uint16(mc.SP.Value()), v)
	mc.SP.Decrement()
	return err
}

func (mc *CPU) pop() (uint8, error) {
	mc.SP.Increment()
	return mc.mem.Read(memorymap.StackOrigin | uint16(mc.SP.Value()))
}

// the high byte is pushed first so that the value is in little endian order
// in memory
func (mc *CPU) push16(v uint16) error {
	if err := mc.push(uint8(v >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(v))
}

func (mc *CPU) pop16() (uint16, error) {
	lo, err := mc.pop()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pop()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Push a value onto the stack.
func (mc *CPU) Push(v uint8) error {
	return mc.push(v)
}

// Pop a value from the stack.
func (mc *CPU) Pop() (uint8, error) {
	return mc.pop()
}
