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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case APU:
		return "APU"
	case Test:
		return "Test"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the NES
const (
	Undefined Area = iota
	RAM
	PPU
	APU
	Test
	Cartridge
)

// The origin and memory top for each area of memory.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginAPU  = uint16(0x4000)
	MemtopAPU  = uint16(0x4017)
	OriginTest = uint16(0x4018)
	MemtopTest = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// The internal RAM is 2KB and is mirrored four times in the RAM area. The PPU
// has eight registers which are mirrored every eight bytes.
const (
	RAMSize = 0x0800
	MaskRAM = uint16(RAMSize - 1)
	MaskPPU = uint16(0x0007)
)

// The stack is always in page one of RAM. The stack pointer is an offset into
// the page.
const StackOrigin = uint16(0x0100)

// MapAddress translates the address argument from mirror space to primary
// space. Generally, an address should be passed through this function before
// accessing memory.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return OriginPPU | (address & MaskPPU), PPU
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopTest:
		return address, Test
	}
	return address, Cartridge
}
