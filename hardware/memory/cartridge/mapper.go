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

package cartridge

import (
	"github.com/jetsetilly/nes2a03/curated"
)

// Mapper translates addresses in the cartridge area of the CPU address
// space, and in the pattern table area of the PPU address space, to the
// cartridge data.
//
// CPU addresses are passed unchanged. That is, in the range $4020 to $ffff.
type Mapper interface {
	Get(address uint16) (uint8, error)
	Set(address uint16, data uint8) error
	GetChr(address uint16) (uint8, error)
	SetChr(address uint16, data uint8) error

	// short identifier for the mapper type
	ID() string
}

// Sentinal error patterns for mapper implementations.
const (
	UnsupportedMapper = "cartridge: mapper %d not supported"
	ChrAddress        = "cartridge: %s: CHR address out of range (%#04x)"
)

// the number of ignored writes that are logged by each mapper instance. a
// program that writes to ROM usually does so many times
const ignoredWriteLog = 16

// the highest address of the pattern tables in the PPU address space
const memtopChr = uint16(0x1fff)

// the PRG RAM area present on the cartridges supported by this package
const (
	originPrgRAM = uint16(0x6000)
	memtopPrgRAM = uint16(0x7fff)
	prgRAMSize   = int(memtopPrgRAM-originPrgRAM) + 1
	originPRG    = uint16(0x8000)
)

// NewMapper returns the correct Mapper implementation for the cartridge.
func NewMapper(cart *Cartridge) (Mapper, error) {
	switch cart.MapperID {
	case 0:
		return newNROM(cart), nil
	case 1:
		return newMMC1(cart), nil
	}
	return nil, curated.Errorf(UnsupportedMapper, cart.MapperID)
}
