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

package cartridge_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/nes2a03/logger"
	"github.com/jetsetilly/nes2a03/test"
)

func get(t *testing.T, m cartridge.Mapper, address uint16, expected uint8) {
	t.Helper()
	v, err := m.Get(address)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, expected)
}

func getChr(t *testing.T, m cartridge.Mapper, address uint16, expected uint8) {
	t.Helper()
	v, err := m.GetChr(address)
	test.ExpectSuccess(t, err)
	test.Equate(t, v, expected)
}

// write a value to an MMC1 register one bit at a time
func mmc1Write(t *testing.T, m cartridge.Mapper, address uint16, value uint8) {
	t.Helper()
	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, m.Set(address, (value>>i)&0x01))
	}
}

func TestNROM16K(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(1, 1, 0x00, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.ID(), "NROM")

	cart.PRG[0x3fff] = 0x55

	// 16K image is mirrored
	get(t, m, 0xbfff, 0x55)
	get(t, m, 0xffff, 0x55)

	// writes to ROM are ignored
	test.ExpectSuccess(t, m.Set(0xbfff, 0x00))
	get(t, m, 0xbfff, 0x55)

	// PRG RAM
	test.ExpectSuccess(t, m.Set(0x6000, 0x12))
	get(t, m, 0x6000, 0x12)
	test.ExpectSuccess(t, m.Set(0x7fff, 0x34))
	get(t, m, 0x7fff, 0x34)
	get(t, m, 0x6000, 0x12)

	// expansion area. writes are ignored and do not reach PRG RAM
	get(t, m, 0x4020, 0x00)
	test.ExpectSuccess(t, m.Set(0x5fff, 0x56))
	get(t, m, 0x5fff, 0x00)
	get(t, m, 0x6000, 0x12)

	// CHR ROM is read only
	getChr(t, m, 0x1000, 0x80)
	test.ExpectSuccess(t, m.SetChr(0x1000, 0x00))
	getChr(t, m, 0x1000, 0x80)

	_, err = m.GetChr(0x2000)
	test.ExpectEquality(t, curated.Is(err, cartridge.ChrAddress), true)
}

func TestNROM32K(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(2, 0, 0x00, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	get(t, m, 0x8000, 0x00)
	get(t, m, 0xc000, 0x01)

	// CHR RAM is writable
	test.ExpectSuccess(t, m.SetChr(0x0123, 0xaa))
	getChr(t, m, 0x0123, 0xaa)
}

func TestMMC1PRGModes(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(4, 2, 0x10, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.ID(), "MMC1")

	// power on state is mode 3: last bank fixed at $c000
	get(t, m, 0x8000, 0x00)
	get(t, m, 0xc000, 0x03)

	// select bank 2 at $8000
	mmc1Write(t, m, 0xe000, 0x02)
	get(t, m, 0x8000, 0x02)
	get(t, m, 0xc000, 0x03)

	// mode 2: first bank fixed at $8000
	mmc1Write(t, m, 0x8000, 0x08)
	get(t, m, 0x8000, 0x00)
	get(t, m, 0xc000, 0x02)

	// mode 0: 32K switching ignores the low bit of the bank number
	mmc1Write(t, m, 0x8000, 0x00)
	mmc1Write(t, m, 0xe000, 0x03)
	get(t, m, 0x8000, 0x02)
	get(t, m, 0xc000, 0x03)

	// a write with bit 7 set resets to mode 3. the PRG register is unchanged
	test.ExpectSuccess(t, m.Set(0x8000, 0x80))
	get(t, m, 0x8000, 0x03)
	get(t, m, 0xc000, 0x03)
}

func TestMMC1ShiftReset(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(4, 2, 0x10, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	// a partial write followed by a reset leaves the PRG register unchanged
	test.ExpectSuccess(t, m.Set(0xe000, 0x01))
	test.ExpectSuccess(t, m.Set(0xe000, 0x01))
	test.ExpectSuccess(t, m.Set(0xe000, 0x80))
	get(t, m, 0x8000, 0x00)

	mmc1Write(t, m, 0xe000, 0x01)
	get(t, m, 0x8000, 0x01)
}

func TestMMC1CHR(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(2, 2, 0x10, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	// 8K mode
	getChr(t, m, 0x0000, 0x00)
	getChr(t, m, 0x1000, 0x80)
	mmc1Write(t, m, 0xa000, 0x02)
	getChr(t, m, 0x0000, 0x01)
	getChr(t, m, 0x1000, 0x81)

	// 4K mode
	mmc1Write(t, m, 0x8000, 0x1c)
	mmc1Write(t, m, 0xa000, 0x01)
	mmc1Write(t, m, 0xc000, 0x02)
	getChr(t, m, 0x0000, 0x80)
	getChr(t, m, 0x1000, 0x01)
}

func TestMMC1PrgRAM(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(2, 0, 0x12, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, m.Set(0x7fff, 0x77))
	get(t, m, 0x7fff, 0x77)
}

func TestEjected(t *testing.T) {
	m := cartridge.NewEjected()
	test.ExpectEquality(t, m.ID(), "-")
	test.ExpectSuccess(t, m.Set(0x8000, 0xff))
	get(t, m, 0x8000, 0x00)
	getChr(t, m, 0x0000, 0x00)
	test.ExpectSuccess(t, m.SetChr(0x0000, 0xff))
}

func TestIgnoredWriteLogging(t *testing.T) {
	cart, err := cartridge.ParseINES(makeImage(1, 1, 0x00, 0x00))
	test.DemandSuccess(t, err)
	m, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	logger.Clear()
	for i := 0; i < 100; i++ {
		test.ExpectSuccess(t, m.Set(0x8000, uint8(i)))
	}

	// only the first few writes are logged
	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "write to ROM ignored"), 16)

	// a new mapper instance logs again
	m, err = cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m.Set(0x8000, 0xff))

	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "write to ROM ignored"), 17)
}
