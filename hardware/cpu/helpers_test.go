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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/cpu"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/test"
)

// mockMem is a flat 64K memory except for the PPU register area, which is
// unmapped in order to test the handling of memory errors
type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func unmapped(address uint16) bool {
	return address >= 0x2000 && address <= 0x3fff
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if unmapped(address) {
		return 0, curated.Errorf(cpubus.UnmappedAddress, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if unmapped(address) {
		return curated.Errorf(cpubus.UnmappedAddress, address)
	}
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) ReadZeroPage(address uint8) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) WriteZeroPage(address uint8, data uint8) {
	mem.internal[address] = data
}

// Clear sets all bytes in memory to zero
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) putVector(vector uint16, address uint16) {
	mem.internal[vector] = uint8(address)
	mem.internal[vector+1] = uint8(address >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	d := mem.internal[address]
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %04x)", d, value, address)
	}
}

// step executes the next instruction and checks that the execution result is
// consistent with the instruction definition. returns the number of cycles
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return cycles
}

// create and reset a new CPU with the reset vector pointing to origin
func newTestCPU(t *testing.T, origin uint16) (*cpu.CPU, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mem.putVector(cpubus.Reset, origin)
	mc := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc.Reset())
	return mc, mem
}
