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

package disassembly_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/disassembly"
	"github.com/jetsetilly/nes2a03/hardware/cpu"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/test"
)

type flatMem struct {
	data [0x10000]uint8
}

func (mem *flatMem) Read(address uint16) (uint8, error) {
	if address >= 0x2000 && address < 0x4020 {
		return 0, curated.Errorf(cpubus.UnmappedAddress, address)
	}
	return mem.data[address], nil
}

func (mem *flatMem) Write(address uint16, data uint8) error {
	mem.data[address] = data
	return nil
}

func (mem *flatMem) ReadZeroPage(address uint8) uint8 {
	return mem.data[address]
}

func (mem *flatMem) WriteZeroPage(address uint8, data uint8) {
	mem.data[address] = data
}

func TestLinear(t *testing.T) {
	data := []uint8{
		0x4c, 0xf5, 0xc5, // JMP $C5F5
		0xa9, 0x10, // LDA #$10
		0x0a,       // ASL A
		0xd0, 0xfc, // BNE $C003
		0xea, // NOP
		0x04, 0xa9, // *NOP $A9
		0xeb, 0x01, // *SBC #$01
		0x8d, 0x00, // truncated STA
	}

	dsm := disassembly.Disassemble(data, 0xc000)
	test.ExpectEquality(t, len(dsm), 8)

	expected := []string{
		"C000  4C F5 C5  JMP $C5F5",
		"C003  A9 10     LDA #$10",
		"C005  0A        ASL A",
		"C006  D0 FC     BNE $C004",
		"C008  EA        NOP",
		"C009  04 A9    *NOP $A9",
		"C00B  EB 01    *SBC #$01",
		"C00D  8D 00     STA ???",
	}
	for i, e := range dsm {
		test.ExpectEquality(t, e.String(), expected[i], i)
	}

	test.ExpectSuccess(t, dsm[7].Truncated())
	test.ExpectFailure(t, dsm[0].Truncated())
}

func TestOperandFormats(t *testing.T) {
	tests := []struct {
		data []uint8
		ins  string
	}{
		{[]uint8{0xa5, 0x10}, "LDA $10"},
		{[]uint8{0xb5, 0x10}, "LDA $10,X"},
		{[]uint8{0x96, 0x10}, "STX $10,Y"},
		{[]uint8{0xad, 0x34, 0x12}, "LDA $1234"},
		{[]uint8{0xbd, 0x34, 0x12}, "LDA $1234,X"},
		{[]uint8{0xbe, 0x34, 0x12}, "LDX $1234,Y"},
		{[]uint8{0x6c, 0xff, 0x30}, "JMP ($30FF)"},
		{[]uint8{0xa1, 0x80}, "LDA ($80,X)"},
		{[]uint8{0xb1, 0x80}, "LDA ($80),Y"},
		{[]uint8{0x10, 0x80}, "BPL $3FA2"},
		{[]uint8{0xa7, 0x80}, "*LAX $80"},
	}

	for _, tt := range tests {
		dsm := disassembly.Disassemble(tt.data, 0x4020)
		test.DemandEquality(t, len(dsm), 1)
		test.ExpectEquality(t, dsm[0].Instruction(), tt.ins)
	}
}

func TestDecode(t *testing.T) {
	mem := &flatMem{}
	mem.data[0xfffe] = 0x20
	mem.data[0xffff] = 0x00
	mem.data[0x0000] = 0x60

	// the operand of JSR wraps around the address space
	e, err := disassembly.Decode(mem, 0xfffe)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Instruction(), "JSR $6000")
	test.ExpectEquality(t, e.Bytecode(), "20 00 60")

	// reading the opcode from an unmapped area fails
	_, err = disassembly.Decode(mem, 0x2000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpubus.UnmappedAddress))
}

func TestTraceLine(t *testing.T) {
	mem := &flatMem{}
	copy(mem.data[0xc000:], []uint8{0x4c, 0xf5, 0xc5})

	mc := cpu.NewCPU(mem)
	mc.LoadPC(0xc000)
	mc.SP.Load(0xfd)
	mc.Status.Load(0x24)

	s, err := disassembly.TraceLine(mc, mem)
	test.DemandSuccess(t, err)

	prefix := "C000  4C F5 C5  JMP $C5F5"
	expected := fmt.Sprintf("%s%sA:00 X:00 Y:00 P:24 SP:FD CYC:0", prefix, strings.Repeat(" ", 48-len(prefix)))
	test.ExpectEquality(t, s, expected)
}
