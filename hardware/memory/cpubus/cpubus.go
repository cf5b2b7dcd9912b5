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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU.
//
// Read() and Write() return an error if the address cannot be serviced. The
// error should be a curated error with the UnmappedAddress pattern if the
// address is in an area of memory that is not emulated.
//
// The zero page functions cannot fail because page zero is always internal
// RAM.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadZeroPage(address uint8) uint8
	WriteZeroPage(address uint8, data uint8)
}

// UnmappedAddress is the pattern for errors returned by Read() and Write()
// when an address is not backed by any emulated hardware.
const UnmappedAddress = "memory: unmapped address (%#04x)"

// Addresses of the interrupt vectors. Each vector is two bytes, low byte
// first.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the vector with IRQ
	BRK = IRQ
)
