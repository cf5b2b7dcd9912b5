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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// Bytes returns the number of bytes an instruction using the addressing mode
// occupies, including the opcode.
func (am AddressingMode) Bytes() int {
	switch am {
	case Implied, Accumulator:
		return 1
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 3
	}
	return 2
}

func (am AddressingMode) String() string {
	switch am {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect"
	case IndirectIndexed:
		return "indirect indexed"
	case AbsoluteIndexedX:
		return "absolute,X"
	case AbsoluteIndexedY:
		return "absolute,Y"
	case ZeroPageIndexedX:
		return "zero page,X"
	case ZeroPageIndexedY:
		return "zero page,Y"
	}
	return "unknown addressing mode"
}

// Category of an instruction describes its effect.
type Category int

// List of effect categories.
const (
	Read Category = iota
	Write
	Modify

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode

	// the number of additional cycles required if the effective address is
	// on a different page to the base address
	PageCycles int

	Effect Category

	// unofficial opcodes are not part of the documented instruction set
	Unofficial bool
}

// Mnemonic returns the three letter name of the instruction.
func (defn Definition) Mnemonic() string {
	return defn.Operator.String()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles +%d) [mode=%s effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.PageCycles, defn.AddressingMode, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// PageSensitive returns true if the instruction costs more cycles when the
// effective address crosses a page boundary.
func (defn Definition) PageSensitive() bool {
	return defn.PageCycles > 0
}
