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

// Package registers implements the three types of registers found in the 2A03.
// The 8 bit general purpose registers (A, X, Y and the stack pointer), the 16
// bit program counter and the status register.
//
// Registers do not set the flags in the status register. That is the job of
// the CPU. The CPU will load or operate on a register and then test the result
// of the operation. For instance, we might have this sequence of function
// calls:
//
//	a.Load(10)
//	carry, overflow := a.Add(11, false)
//	sr.SetCarry(carry)
//	sr.SetOverflow(overflow)
//	sr.SetZeroNegative(a.Value())
//
// The status register is stored as a single byte. Bits are addressed by index
// using the named constants (Carry, Zero, etc.). The Set() and Get() functions
// reject a bit index outside the range 0 to 7.
package registers
