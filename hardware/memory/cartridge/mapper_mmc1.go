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

// mmc1 implements the Mapper interface for iNES mapper 1.
//
// Registers are written to serially, one bit at a time through the least
// significant bit of the data. On the fifth write the value in the shift
// register is copied to the register selected by bits 13 and 14 of the
// address. Writing a value with bit 7 set resets the shift register and
// selects PRG mode 3.
type mmc1 struct {
	cart   *Cartridge
	prgRAM []uint8

	shift      uint8
	shiftCount int

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8

	// offsets into PRG data for the two 16K windows at $8000 and $c000
	prgOffset [2]int

	// offsets into CHR data for the two 4K windows at $0000 and $1000
	chrOffset [2]int

	// permission for logging of ignored writes
	ignored *logger.Limit
}

func newMMC1(cart *Cartridge) *mmc1 {
	m := &mmc1{
		cart:    cart,
		prgRAM:  make([]uint8, prgRAMSize),
		control: 0x0c,
		ignored: logger.NewLimit(ignoredWriteLog),
	}
	m.updateOffsets()
	return m
}

// ID implements the Mapper interface.
func (m *mmc1) ID() string {
	return "MMC1"
}

// Get implements the Mapper interface.
func (m *mmc1) Get(address uint16) (uint8, error) {
	switch {
	case address >= originPRG:
		a := address - originPRG
		idx := m.prgOffset[a/PRGBankSize] + int(a%PRGBankSize)
		return m.cart.PRG[idx%len(m.cart.PRG)], nil
	case address >= originPrgRAM && address <= memtopPrgRAM:
		return m.prgRAM[address-originPrgRAM], nil
	}
	return 0, nil
}

// Set implements the Mapper interface.
func (m *mmc1) Set(address uint16, data uint8) error {
	switch {
	case address >= originPRG:
		m.load(address, data)
	case address >= originPrgRAM && address <= memtopPrgRAM:
		m.prgRAM[address-originPrgRAM] = data
	default:
		logger.Logf(m.ignored, "MMC1", "write to expansion area ignored (%#04x <- %#02x)", address, data)
	}
	return nil
}

func (m *mmc1) load(address uint16, data uint8) {
	if data&0x80 == 0x80 {
		m.shift = 0
		m.shiftCount = 0
		m.control |= 0x0c
		m.updateOffsets()
		return
	}

	m.shift = (m.shift >> 1) | ((data & 0x01) << 4)
	m.shiftCount++

	if m.shiftCount < 5 {
		return
	}

	switch (address >> 13) & 0x03 {
	case 0:
		m.control = m.shift
	case 1:
		m.chr0 = m.shift
	case 2:
		m.chr1 = m.shift
	case 3:
		m.prg = m.shift & 0x0f
	}

	m.shift = 0
	m.shiftCount = 0
	m.updateOffsets()
}

func (m *mmc1) prgMode() uint8 {
	return (m.control >> 2) & 0x03
}

func (m *mmc1) chrMode() uint8 {
	return (m.control >> 4) & 0x01
}

func (m *mmc1) updateOffsets() {
	numPRG := len(m.cart.PRG) / PRGBankSize

	switch m.prgMode() {
	case 0, 1:
		// 32K mode ignores low bit of bank number
		b := int(m.prg & 0x0e)
		m.prgOffset[0] = b * PRGBankSize
		m.prgOffset[1] = (b + 1) * PRGBankSize
	case 2:
		// first bank fixed at $8000
		m.prgOffset[0] = 0
		m.prgOffset[1] = int(m.prg&0x0f) * PRGBankSize
	case 3:
		// last bank fixed at $c000
		m.prgOffset[0] = int(m.prg&0x0f) * PRGBankSize
		m.prgOffset[1] = (numPRG - 1) * PRGBankSize
	}

	const chrBank = CHRBankSize / 2
	if m.chrMode() == 0 {
		b := int(m.chr0 & 0x1e)
		m.chrOffset[0] = b * chrBank
		m.chrOffset[1] = (b + 1) * chrBank
	} else {
		m.chrOffset[0] = int(m.chr0) * chrBank
		m.chrOffset[1] = int(m.chr1) * chrBank
	}
}

func (m *mmc1) chrIndex(address uint16) int {
	const chrBank = CHRBankSize / 2
	idx := m.chrOffset[address/chrBank] + int(address%chrBank)
	return idx % len(m.cart.CHR)
}

// GetChr implements the Mapper interface.
func (m *mmc1) GetChr(address uint16) (uint8, error) {
	if address > memtopChr {
		return 0, curated.Errorf(ChrAddress, m.ID(), address)
	}
	return m.cart.CHR[m.chrIndex(address)], nil
}

// SetChr implements the Mapper interface.
func (m *mmc1) SetChr(address uint16, data uint8) error {
	if address > memtopChr {
		return curated.Errorf(ChrAddress, m.ID(), address)
	}
	if !m.cart.ChrRAM {
		logger.Logf(m.ignored, "MMC1", "write to CHR ROM ignored (%#04x <- %#02x)", address, data)
		return nil
	}
	m.cart.CHR[m.chrIndex(address)] = data
	return nil
}
