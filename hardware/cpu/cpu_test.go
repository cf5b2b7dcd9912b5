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
	"github.com/jetsetilly/nes2a03/hardware/cpu/execution"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/test"
)

const origin = uint16(0x0600)

func TestInitialState(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	test.Equate(t, mc.PC.Address(), 0x0000)
	test.Equate(t, mc.SP.Value(), 0xff)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.Status.Value(), 0x22)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	test.ExpectEquality(t, mc.String(), "PC=0000 A=00 X=00 Y=00 SP=FF P=nv-bdiZc")
	test.ExpectEquality(t, mc.Cycles, uint64(0))
}

func TestReset(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	test.Equate(t, mc.PC.Address(), origin)

	mem.putInstructions(origin, 0xa9, 0x80, 0xaa)
	step(t, mc) // LDA #$80
	step(t, mc) // TAX
	test.Equate(t, mc.X.Value(), 0x80)
	test.ExpectEquality(t, mc.Cycles, uint64(4))

	// registers are reinitialised but the cycle count is unchanged
	test.DemandSuccess(t, mc.Reset())
	test.Equate(t, mc.PC.Address(), origin)
	test.Equate(t, mc.A.Value(), 0x00)
	test.Equate(t, mc.X.Value(), 0x00)
	test.Equate(t, mc.Status.Value(), 0x22)
	test.ExpectEquality(t, mc.Cycles, uint64(4))

	// a reset vector that cannot be read
	mc = cpu.NewCPU(&brokenVectors{mockMem: newMockMem()})
	err := mc.Reset()
	test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true)
}

// brokenVectors is a memory implementation in which the vectors cannot be read
type brokenVectors struct {
	*mockMem
}

func (mem *brokenVectors) Read(address uint16) (uint8, error) {
	if address >= cpubus.NMI {
		return 0, curated.Errorf(cpubus.UnmappedAddress, address)
	}
	return mem.mockMem.Read(address)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	o := mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIZc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")

	// PHP; PLP
	mem.putInstructions(o, 0x08, 0x28)
	step(t, mc) // PHP
	test.Equate(t, mc.SP.Value(), 0xfe)

	// break and unused bits are set in the pushed value
	mem.assert(t, 0x01ff, 0x36)

	// mangle status register
	mc.Status.SetNegative(true)
	mc.Status.SetOverflow(true)

	// restore status register. break flag is not restored
	step(t, mc) // PLP
	test.Equate(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIZc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDA immediate; ADC immediate
	o := mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.Equate(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	o = mem.putInstructions(o, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.Equate(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.Carry(), true)

	// borrow clears the carry
	mem.putInstructions(o, 0xe9, 4)
	step(t, mc) // SBC #4
	test.Equate(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizc")
}

func TestOverflow(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDA #$7e; ADC #$05
	mem.putInstructions(origin, 0xa9, 0x7e, 0x69, 0x05)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x83)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdizc")
}

func TestBitwise(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// ORA immediate; EOR immediate; AND immediate
	o := mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc) // ORA #$FF
	test.Equate(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.Negative(), true)
	step(t, mc) // EOR #$F0
	test.Equate(t, mc.A.Value(), 0x0f)
	step(t, mc) // AND #$01
	test.Equate(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// ASL A; ROR A; ROR A; LSR A
	o = mem.putInstructions(o, 0x0a, 0x6a, 0x6a, 0x4a)
	step(t, mc) // ASL A
	test.Equate(t, mc.A.Value(), 0x02)
	step(t, mc) // ROR A
	test.Equate(t, mc.A.Value(), 0x01)
	step(t, mc) // ROR A
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")
	step(t, mc) // LSR A
	test.Equate(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")

	// BIT $10
	mem.internal[0x10] = 0xc0
	mem.putInstructions(o, 0x24, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdiZc")
}

func TestLoadStore(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDX #$05; LDA #$aa; STA $10,X
	o := mem.putInstructions(origin, 0xa2, 0x05, 0xa9, 0xaa, 0x95, 0x10)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0015, 0xaa)

	// LDY #$03; STA $0200,Y; STX $20
	o = mem.putInstructions(o, 0xa0, 0x03, 0x99, 0x00, 0x02, 0x86, 0x20)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0203, 0xaa)
	mem.assert(t, 0x0020, 0x05)

	// LDA #$00; LDA ($0b,X)
	mem.internal[0x10] = 0x03
	mem.internal[0x11] = 0x02
	o = mem.putInstructions(o, 0xa9, 0x00, 0xa1, 0x0b)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.Zero(), true)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xaa)

	// LDA ($10),Y
	mem.internal[0x0206] = 0x77
	o = mem.putInstructions(o, 0xb1, 0x10)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x77)

	// zero page indexing wraps within page zero
	// LDX #$ff; LDA $80,X
	mem.internal[0x7f] = 0x42
	mem.putInstructions(o, 0xa2, 0xff, 0xb5, 0x80)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x42)
}

func TestTransfers(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDA #$80; TAX; TAY; LDX #$10; TXS; LDA #$00; TSX; TYA
	mem.putInstructions(origin, 0xa9, 0x80, 0xaa, 0xa8, 0xa2, 0x10, 0x9a, 0xa9, 0x00, 0xba, 0x98)
	step(t, mc)
	step(t, mc) // TAX
	test.Equate(t, mc.X.Value(), 0x80)
	step(t, mc) // TAY
	test.Equate(t, mc.Y.Value(), 0x80)
	step(t, mc) // LDX #$10
	step(t, mc) // TXS
	test.Equate(t, mc.SP.Value(), 0x10)

	// TXS does not affect the flags
	test.ExpectEquality(t, mc.Status.Negative(), false)

	step(t, mc) // LDA #$00
	step(t, mc) // TSX
	test.Equate(t, mc.X.Value(), 0x10)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	step(t, mc) // TYA
	test.Equate(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Negative(), true)
}

func TestPageFaults(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDX #$01; LDA $10ff,X; LDA $1000,X; STA $10ff,X
	o := mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xff, 0x10, 0xbd, 0x00, 0x10, 0x9d, 0xff, 0x10)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)

	// stores always take the longest time
	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)

	// LDY #$01; LDA ($20),Y
	mem.internal[0x20] = 0xff
	mem.internal[0x21] = 0x10
	mem.putInstructions(o, 0xa0, 0x01, 0xb1, 0x20)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	test.ExpectEquality(t, mc.Cycles, uint64(2+5+4+5+2+6))
}

func TestBranching(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDX #$00; BNE +2; BEQ +2
	mem.putInstructions(origin, 0xa2, 0x00, 0xd0, 0x02, 0xf0, 0x02)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)
	test.Equate(t, mc.PC.Address(), 0x0604)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)
	test.Equate(t, mc.PC.Address(), 0x0608)

	// branch across a page
	mem.putInstructions(0x06fd, 0xf0, 0x10)
	mc.LoadPC(0x06fd)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
	test.Equate(t, mc.PC.Address(), 0x070f)

	// branch backwards to itself
	mem.putInstructions(0x070f, 0xf0, 0xfe)
	test.ExpectEquality(t, step(t, mc), 3)
	test.Equate(t, mc.PC.Address(), 0x070f)
}

func TestBranchNegativeOffset(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// BVC with offset -128. the PC is 0x4021 after the instruction has been
	// fetched
	mem.putInstructions(0x401f, 0x50, 0x80)
	mc.LoadPC(0x401f)
	test.ExpectEquality(t, step(t, mc), 4)
	test.Equate(t, mc.PC.Address(), 0x3fa1)
}

func TestJumps(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// JMP $0610
	mem.putInstructions(origin, 0x4c, 0x10, 0x06)
	test.ExpectEquality(t, step(t, mc), 3)
	test.Equate(t, mc.PC.Address(), 0x0610)

	// JSR $0700
	mem.putInstructions(0x0610, 0x20, 0x00, 0x07)
	test.ExpectEquality(t, step(t, mc), 6)
	test.Equate(t, mc.PC.Address(), 0x0700)
	test.Equate(t, mc.SP.Value(), 0xfd)
	mem.assert(t, 0x01ff, 0x06)
	mem.assert(t, 0x01fe, 0x12)

	// RTS
	mem.putInstructions(0x0700, 0x60)
	test.ExpectEquality(t, step(t, mc), 6)
	test.Equate(t, mc.PC.Address(), 0x0613)
	test.Equate(t, mc.SP.Value(), 0xff)

	// JMP ($02ff) reads the high byte of the address from $0200
	mem.internal[0x02ff] = 0x01
	mem.internal[0x0200] = 0x80
	mem.internal[0x0300] = 0x55
	mem.putInstructions(0x0613, 0x6c, 0xff, 0x02)
	test.ExpectEquality(t, step(t, mc), 5)
	test.Equate(t, mc.PC.Address(), 0x8001)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// JMP ($0210) has no bug
	mem.internal[0x0210] = 0x34
	mem.internal[0x0211] = 0x12
	mem.putInstructions(0x8001, 0x6c, 0x10, 0x02)
	step(t, mc)
	test.Equate(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestBRK(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putVector(cpubus.BRK, 0x0800)

	// BRK; RTI
	mem.putInstructions(origin, 0x00, 0xff)
	mem.putInstructions(0x0800, 0x40)

	test.ExpectEquality(t, step(t, mc), 7)
	test.Equate(t, mc.PC.Address(), 0x0800)
	test.Equate(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mc.Status.InterruptDisable(), true)
	mem.assert(t, 0x01ff, 0x06)
	mem.assert(t, 0x01fe, 0x02)
	mem.assert(t, 0x01fd, 0x32)

	test.ExpectEquality(t, step(t, mc), 6)
	test.Equate(t, mc.PC.Address(), 0x0602)
	test.Equate(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putVector(cpubus.NMI, 0x0900)
	mem.putInstructions(origin, 0xea)
	mem.putInstructions(0x0900, 0xea)

	mc.TriggerNMI()
	test.ExpectEquality(t, mc.PendingInterrupt(), "NMI")

	// NMI is taken even when interrupts are disabled
	mc.Status.SetInterruptDisable(true)

	// seven cycles for the interrupt and two for the NOP at the vector
	test.ExpectEquality(t, step(t, mc), 9)
	test.Equate(t, mc.LastResult.Address, 0x0900)
	test.Equate(t, mc.PC.Address(), 0x0901)
	test.ExpectEquality(t, mc.PendingInterrupt(), "none")

	mem.assert(t, 0x01ff, 0x06)
	mem.assert(t, 0x01fe, 0x00)

	// break flag is clear in the pushed status
	mem.assert(t, 0x01fd, 0x26)
}

func TestIRQ(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putVector(cpubus.IRQ, 0x0a00)
	mem.putInstructions(origin, 0xea, 0x58, 0xea)
	mem.putInstructions(0x0a00, 0xea)

	// IRQ is dropped when interrupts are disabled
	mc.Status.SetInterruptDisable(true)
	mc.TriggerIRQ()
	test.ExpectEquality(t, step(t, mc), 2)
	test.Equate(t, mc.PC.Address(), 0x0601)
	test.ExpectEquality(t, mc.PendingInterrupt(), "none")

	step(t, mc) // CLI

	mc.TriggerIRQ()
	test.ExpectEquality(t, step(t, mc), 9)
	test.Equate(t, mc.PC.Address(), 0x0a01)
	test.ExpectEquality(t, mc.Status.InterruptDisable(), true)
	mem.assert(t, 0x01fd, 0x22)

	// NMI has priority
	mc.TriggerNMI()
	mc.TriggerIRQ()
	test.ExpectEquality(t, mc.PendingInterrupt(), "NMI")
}

func TestStall(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putInstructions(origin, 0xea)

	mc.Stall(2)
	for i := 0; i < 2; i++ {
		c, err := mc.Step()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, c, 1)
		test.Equate(t, mc.PC.Address(), origin)
	}
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.Cycles, uint64(4))
}

func TestIllegalOpcode(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putInstructions(origin, 0x02)

	_, err := mc.Step()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.IllegalOpcode), true)
	test.ExpectEquality(t, err.Error(), "cpu: illegal opcode (0x02) at 0x0600")
	test.ExpectEquality(t, mc.Killed, true)

	// the CPU refuses to continue
	c, err := mc.Step()
	test.ExpectEquality(t, curated.Is(err, cpu.IllegalOpcode), true)
	test.ExpectEquality(t, c, 0)

	test.DemandSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.Killed, false)
}

func TestUnsupportedOpcode(t *testing.T) {
	mc, mem := newTestCPU(t, origin)
	mem.putInstructions(origin, 0x8b, 0x00)

	_, err := mc.Step()
	test.ExpectEquality(t, curated.Is(err, cpu.UnsupportedOpcode), true)
	test.ExpectEquality(t, err.Error(), "cpu: unsupported opcode (0x8b XAA) at 0x0600")
	test.ExpectEquality(t, mc.Killed, true)
}

func TestUnmappedAccess(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// LDA $2002
	mem.putInstructions(origin, 0xad, 0x02, 0x20)
	_, err := mc.Step()
	test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true)
	test.ExpectEquality(t, mc.LastResult.Final, false)
	test.ExpectEquality(t, mc.Killed, true)
	test.ExpectEquality(t, mc.Cycles, uint64(0))

	// the CPU refuses to continue with the next instruction
	mem.putInstructions(mc.PC.Address(), 0xa9, 0x42)
	c, err2 := mc.Step()
	test.ExpectEquality(t, c, 0)
	test.ExpectSuccess(t, err2 == err)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Cycles, uint64(0))

	// until it is reset
	test.DemandSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.Killed, false)
}

func TestUnmappedStore(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	// STA $2000; LDA #$42
	mem.putInstructions(origin, 0x8d, 0x00, 0x20, 0xa9, 0x42)
	_, err := mc.Step()
	test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true)
	test.ExpectEquality(t, mc.Killed, true)

	_, err = mc.Step()
	test.ExpectEquality(t, curated.Is(err, cpubus.UnmappedAddress), true)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Cycles, uint64(0))
}

func TestUnofficial(t *testing.T) {
	mc, mem := newTestCPU(t, origin)

	mem.internal[0x10] = 0x8f
	mem.internal[0x12] = 0x81
	mem.internal[0x13] = 0x0f
	mem.internal[0x14] = 0x81

	// LAX $10
	o := mem.putInstructions(origin, 0xa7, 0x10)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x8f)
	test.Equate(t, mc.X.Value(), 0x8f)

	// LDA #$f0; SAX $11
	o = mem.putInstructions(o, 0xa9, 0xf0, 0x87, 0x11)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x11, 0x80)

	// DCP $12
	o = mem.putInstructions(o, 0xc7, 0x12)
	step(t, mc)
	mem.assert(t, 0x12, 0x80)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizC")

	// ISC $13
	o = mem.putInstructions(o, 0xe7, 0x13)
	step(t, mc)
	mem.assert(t, 0x13, 0x10)
	test.Equate(t, mc.A.Value(), 0xe0)
	test.ExpectEquality(t, mc.Status.Carry(), true)

	// SLO $14
	o = mem.putInstructions(o, 0x07, 0x14)
	step(t, mc)
	mem.assert(t, 0x14, 0x02)
	test.Equate(t, mc.A.Value(), 0xe2)
	test.ExpectEquality(t, mc.Status.Carry(), true)

	// ANC #$80; ALR #$ff
	o = mem.putInstructions(o, 0x0b, 0x80, 0x4b, 0xff)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x80)
	test.ExpectEquality(t, mc.Status.Carry(), true)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x40)
	test.ExpectEquality(t, mc.Status.Carry(), false)

	// AXS #$01
	o = mem.putInstructions(o, 0xcb, 0x01)
	step(t, mc)
	test.Equate(t, mc.X.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizc")

	// NOP $1234,X
	o = mem.putInstructions(o, 0x1c, 0x34, 0x12)
	test.ExpectEquality(t, step(t, mc), 5)

	// LDA #$ff; SEC; ARR #$ff
	o = mem.putInstructions(o, 0xa9, 0xff, 0x38, 0x6b, 0xff)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizC")

	// LDY #$00; LAS $0030,Y
	mem.internal[0x30] = 0x3c
	o = mem.putInstructions(o, 0xa0, 0x00, 0xbb, 0x30, 0x00)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0x3c)
	test.Equate(t, mc.X.Value(), 0x3c)
	test.Equate(t, mc.SP.Value(), 0x3c)

	// RRA $15
	mem.internal[0x15] = 0x02
	o = mem.putInstructions(o, 0x67, 0x15)
	step(t, mc)
	mem.assert(t, 0x15, 0x81)
	test.Equate(t, mc.A.Value(), 0xbd)

	// SBC #$01 (unofficial encoding)
	mem.putInstructions(o, 0x38, 0xeb, 0x01)
	step(t, mc)
	step(t, mc)
	test.Equate(t, mc.A.Value(), 0xbc)
}
