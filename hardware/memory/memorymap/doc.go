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

// Package memorymap describes how the 16 bit address space of the 2A03 is
// divided between the internal RAM, the PPU and APU registers and the
// cartridge.
//
// The MapAddress() function translates an address in mirror space to the
// primary address for that area and reports which area the address belongs
// to. The Summary() function is useful for reference.
package memorymap
