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

// Package memory implements the memory model of the NES as seen by the 2A03.
//
// The CPU sees memory through the cpubus.Memory interface. The Memory type
// in this package implements that interface by dividing the address space
// into the areas defined in the memorymap package:
//
//	                          ---- RAM (2KB, mirrored to $1fff)
//	                         |
//	    CPU ---- cpu bus ----*---- PPU/APU registers (not emulated)
//	                         |
//	                          ---- Cartridge ---- Mapper
//
// The asterisk indicates that addresses used by the CPU are first mapped to
// the primary address. The memorymap package contains more detail on this.
//
// The PPU and APU are not part of this emulation and any access to those areas
// results in a curated error with the cpubus.UnmappedAddress pattern. Nothing
// is silently zero filled.
//
// Addresses in the cartridge area are passed unchanged to the attached mapper.
// If no mapper is attached then the ejected mapper from the cartridge package
// is used.
package memory
