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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/memory"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/test"
)

func readData(t *testing.T, mem *memory.Memory, address uint16, expectedData uint8) {
	t.Helper()
	d, err := mem.Read(address)
	if err != nil {
		t.Errorf("unexpected error (%s)", err)
		return
	}
	test.Equate(t, d, expectedData)
}

func TestRAMMirrors(t *testing.T) {
	mem := memory.NewMemory(nil)

	test.ExpectSuccess(t, mem.Write(0x0001, 0x42))
	readData(t, mem, 0x0001, 0x42)
	readData(t, mem, 0x0801, 0x42)
	readData(t, mem, 0x1001, 0x42)
	readData(t, mem, 0x1801, 0x42)

	// writing through a mirror changes the primary address
	test.ExpectSuccess(t, mem.Write(0x1fff, 0x99))
	readData(t, mem, 0x07ff, 0x99)
}

func TestZeroPage(t *testing.T) {
	mem := memory.NewMemory(nil)

	mem.WriteZeroPage(0x10, 0xab)
	readData(t, mem, 0x0010, 0xab)
	readData(t, mem, 0x0810, 0xab)

	test.ExpectSuccess(t, mem.Write(0x0820, 0xcd))
	test.Equate(t, mem.ReadZeroPage(0x20), 0xcd)
}

func TestUnmapped(t *testing.T) {
	mem := memory.NewMemory(nil)

	for _, a := range []uint16{0x2000, 0x2007, 0x3fff, 0x4000, 0x4016, 0x401f} {
		_, err := mem.Read(a)
		test.ExpectFailure(t, err, a)
		test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true, a)

		err = mem.Write(a, 0x00)
		test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true, a)
	}
}

func TestEjectedCartridge(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.ExpectEquality(t, mem.Mapper.ID(), cartridge.NewEjected().ID())

	readData(t, mem, 0x4020, 0x00)
	readData(t, mem, 0xfffc, 0x00)
	test.ExpectSuccess(t, mem.Write(0x8000, 0xff))
	readData(t, mem, 0x8000, 0x00)
}

func TestCartridgeMapping(t *testing.T) {
	data := make([]uint8, 16+0x4000)
	copy(data, []uint8{'N', 'E', 'S', 0x1a, 1, 0})
	data[16] = 0xea
	data[16+0x3ffc] = 0x00
	data[16+0x3ffd] = 0xc0

	cart, err := cartridge.ParseINES(data)
	test.DemandSuccess(t, err)
	mapper, err := cartridge.NewMapper(cart)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(mapper)
	readData(t, mem, 0x8000, 0xea)
	readData(t, mem, 0xc000, 0xea)

	// reset vector
	readData(t, mem, cpubus.Reset, 0x00)
	readData(t, mem, cpubus.Reset+1, 0xc0)
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.WriteZeroPage(0x00, 0x01)
	mem.Reset()
	test.Equate(t, mem.ReadZeroPage(0x00), 0x00)
}

func TestPage(t *testing.T) {
	mem := memory.NewMemory(nil)
	mem.WriteZeroPage(0x11, 0xee)

	p := mem.Page(0)
	lines := strings.Split(strings.TrimSpace(p), "\n")
	test.ExpectEquality(t, len(lines), 16)
	test.ExpectEquality(t, lines[1], "0010  00 ee 00 00 00 00 00 00 00 00 00 00 00 00 00 00")
}
