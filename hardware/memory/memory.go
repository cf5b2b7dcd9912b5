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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/hardware/memory/memorymap"
	"github.com/jetsetilly/nes2a03/logger"
)

// Memory is the monolithic representation of the memory in the NES as seen
// by the CPU. It implements the cpubus.Memory interface.
type Memory struct {
	// the internal RAM of the console. addresses in the RAM area are mapped
	// to an index in this array with memorymap.MapAddress()
	RAM [memorymap.RAMSize]uint8

	// the mapper of the attached cartridge
	Mapper cartridge.Mapper
}

// NewMemory is the preferred method of initialisation for the Memory type. If
// the mapper argument is nil then the ejected mapper is attached.
func NewMemory(mapper cartridge.Mapper) *Memory {
	if mapper == nil {
		mapper = cartridge.NewEjected()
	}

	mem := &Memory{
		Mapper: mapper,
	}

	logger.Logf(logger.Allow, "memory", "RAM mirrored %d times to %#04x", (int(memorymap.MemtopRAM)+1)/memorymap.RAMSize, memorymap.MemtopRAM)
	logger.Logf(logger.Allow, "memory", "cartridge space from %#04x using %s mapper", memorymap.OriginCart, mapper.ID())

	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("RAM %d bytes; mapper %s", len(mem.RAM), mem.Mapper.ID())
}

// Reset clears the contents of RAM. The mapper is unaffected.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		return mem.RAM[ma], nil
	case memorymap.Cartridge:
		return mem.Mapper.Get(ma)
	}
	return 0, curated.Errorf(cpubus.UnmappedAddress, address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)
	switch area {
	case memorymap.RAM:
		mem.RAM[ma] = data
		return nil
	case memorymap.Cartridge:
		return mem.Mapper.Set(ma, data)
	}
	return curated.Errorf(cpubus.UnmappedAddress, address)
}

// ReadZeroPage is an implementation of cpubus.Memory.
func (mem *Memory) ReadZeroPage(address uint8) uint8 {
	return mem.RAM[address]
}

// WriteZeroPage is an implementation of cpubus.Memory.
func (mem *Memory) WriteZeroPage(address uint8, data uint8) {
	mem.RAM[address] = data
}

// Page returns a formatted dump of the 256 bytes of the RAM page. The page
// argument must be less than eight.
func (mem *Memory) Page(page uint8) string {
	s := strings.Builder{}
	origin := (uint16(page) << 8) & memorymap.MaskRAM
	for row := uint16(0); row < 0x100; row += 0x10 {
		s.WriteString(fmt.Sprintf("%04x ", origin+row))
		for col := uint16(0); col < 0x10; col++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.RAM[origin+row+col]))
		}
		s.WriteString("\n")
	}
	return s.String()
}
