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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16
	Defn    *instructions.Definition

	// the bytes of the instruction, including the opcode. fewer than
	// Defn.Bytes if the instruction was truncated by the end of the data
	Data []uint8
}

// Truncated returns true if the entry does not contain all the bytes
// required by the instruction.
func (e Entry) Truncated() bool {
	return len(e.Data) < e.Defn.Bytes
}

// Operand returns the operand of the instruction as a 16 bit value.
func (e Entry) Operand() uint16 {
	var v uint16
	for i := len(e.Data) - 1; i >= 1; i-- {
		v = v<<8 | uint16(e.Data[i])
	}
	return v
}

// Bytecode returns the bytes of the instruction in hexadecimal, separated by
// spaces.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Data))
	for i, b := range e.Data {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(s, " ")
}

// Mnemonic returns the name of the operator. Unofficial opcodes are marked
// with an asterisk.
func (e Entry) Mnemonic() string {
	if e.Defn.Unofficial {
		return fmt.Sprintf("*%s", e.Defn.Mnemonic())
	}
	return e.Defn.Mnemonic()
}

// OperandString returns the operand formatted according to the addressing
// mode. Relative addresses are resolved to the destination of the branch.
func (e Entry) OperandString() string {
	if e.Truncated() {
		return "???"
	}

	v := e.Operand()

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02X", v)
	case instructions.Relative:
		return fmt.Sprintf("$%04X", e.Address+2+uint16(int8(v)))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02X", v)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02X,X", v)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02X,Y", v)
	case instructions.Absolute:
		return fmt.Sprintf("$%04X", v)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04X,X", v)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04X,Y", v)
	case instructions.Indirect:
		return fmt.Sprintf("($%04X)", v)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02X,X)", v)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02X),Y", v)
	}

	return ""
}

// Instruction returns the mnemonic and the formatted operand.
func (e Entry) Instruction() string {
	if op := e.OperandString(); op != "" {
		return fmt.Sprintf("%s %s", e.Mnemonic(), op)
	}
	return e.Mnemonic()
}

// String returns the entry in the columns of the trace format, without the
// register values.
func (e Entry) String() string {
	// official mnemonics are preceded by a space so that the mnemonics of
	// official and unofficial instructions line up
	ins := e.Instruction()
	if !e.Defn.Unofficial {
		ins = fmt.Sprintf(" %s", ins)
	}
	return fmt.Sprintf("%04X  %-8s %s", e.Address, e.Bytecode(), ins)
}
