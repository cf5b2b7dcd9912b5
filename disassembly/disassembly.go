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
	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
)

// Disassemble decodes the data as a linear sequence of instructions. The
// origin is the address of the first byte of data.
func Disassemble(data []uint8, origin uint16) []Entry {
	dsm := make([]Entry, 0, len(data)/2)

	for i := 0; i < len(data); {
		defn := &instructions.Table[data[i]]

		end := i + defn.Bytes
		if end > len(data) {
			end = len(data)
		}

		dsm = append(dsm, Entry{
			Address: origin + uint16(i),
			Defn:    defn,
			Data:    data[i:end],
		})

		i = end
	}

	return dsm
}

// Decode the instruction at the address. The memory is read exactly as the
// CPU would read it when fetching the instruction.
func Decode(mem cpubus.Memory, address uint16) (Entry, error) {
	opcode, err := mem.Read(address)
	if err != nil {
		return Entry{}, err
	}

	e := Entry{
		Address: address,
		Defn:    &instructions.Table[opcode],
	}
	e.Data = append(e.Data, opcode)

	for i := 1; i < e.Defn.Bytes; i++ {
		v, err := mem.Read(address + uint16(i))
		if err != nil {
			return e, err
		}
		e.Data = append(e.Data, v)
	}

	return e, nil
}
