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
	"github.com/jetsetilly/nes2a03/logger"
)

// nrom implements the Mapper interface for iNES mapper 0.
//
// PRG data is either 16K or 32K. A 16K image is mirrored so that it appears
// at both $8000 and $c000.
type nrom struct {
	cart   *Cartridge
	prgRAM []uint8

	// permission for logging of ignored writes
	ignored *logger.Limit
}

func newNROM(cart *Cartridge) *nrom {
	return &nrom{
		cart:    cart,
		prgRAM:  make([]uint8, prgRAMSize),
		ignored: logger.NewLimit(ignoredWriteLog),
	}
}

// ID implements the Mapper interface.
func (m *nrom) ID() string {
	return "NROM"
}

// Get implements the Mapper interface.
func (m *nrom) Get(address uint16) (uint8, error) {
	switch {
	case address >= originPRG:
		return m.cart.PRG[int(address-originPRG)%len(m.cart.PRG)], nil
	case address >= originPrgRAM && address <= memtopPrgRAM:
		return m.prgRAM[address-originPrgRAM], nil
	}

	// expansion area is not connected on NROM cartridges
	return 0, nil
}

// Set implements the Mapper interface.
func (m *nrom) Set(address uint16, data uint8) error {
	switch {
	case address >= originPRG:
		logger.Logf(m.ignored, "NROM", "write to ROM ignored (%#04x <- %#02x)", address, data)
	case address >= originPrgRAM && address <= memtopPrgRAM:
		m.prgRAM[address-originPrgRAM] = data
	default:
		logger.Logf(m.ignored, "NROM", "write to expansion area ignored (%#04x <- %#02x)", address, data)
	}
	return nil
}

// GetChr implements the Mapper interface.
func (m *nrom) GetChr(address uint16) (uint8, error) {
	if address > memtopChr {
		return 0, curated.Errorf(ChrAddress, m.ID(), address)
	}
	return m.cart.CHR[int(address)%len(m.cart.CHR)], nil
}

// SetChr implements the Mapper interface.
func (m *nrom) SetChr(address uint16, data uint8) error {
	if address > memtopChr {
		return curated.Errorf(ChrAddress, m.ID(), address)
	}
	if !m.cart.ChrRAM {
		logger.Logf(m.ignored, "NROM", "write to CHR ROM ignored (%#04x <- %#02x)", address, data)
		return nil
	}
	m.cart.CHR[address] = data
	return nil
}
