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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/nes2a03/test"
)

func TestTableConsistency(t *testing.T) {
	var official int

	for i, defn := range instructions.Table {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
		test.ExpectSuccess(t, defn.Cycles >= 2 && defn.Cycles <= 8, defn)
		test.ExpectSuccess(t, defn.Operator < instructions.NumOperators, defn)

		// only indexed addressing modes can cross a page
		if defn.PageSensitive() {
			switch defn.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
			default:
				t.Errorf("page sensitive instruction with non-indexed addressing mode: %s", defn)
			}
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
		}

		if !defn.Unofficial {
			official++
		}
	}

	test.ExpectEquality(t, official, 151)
}

func TestBranches(t *testing.T) {
	for _, opcode := range []uint8{0x10, 0x30, 0x50, 0x70, 0x90, 0xb0, 0xd0, 0xf0} {
		defn := instructions.Table[opcode]
		test.ExpectSuccess(t, defn.IsBranch(), defn)
		test.ExpectEquality(t, defn.Cycles, 2, defn)
		test.ExpectFailure(t, defn.PageSensitive(), defn)
	}

	// JMP is flow but isn't a branch
	test.ExpectFailure(t, instructions.Table[0x4c].IsBranch())
	test.ExpectEquality(t, instructions.Table[0x4c].Effect, instructions.Flow)
}

func TestSpecificDefinitions(t *testing.T) {
	lda := instructions.Table[0xbd]
	test.ExpectEquality(t, lda.Mnemonic(), "LDA")
	test.ExpectEquality(t, lda.AddressingMode, instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, lda.Cycles, 4)
	test.ExpectEquality(t, lda.PageCycles, 1)

	// stores never pay the page penalty
	sta := instructions.Table[0x9d]
	test.ExpectEquality(t, sta.Mnemonic(), "STA")
	test.ExpectEquality(t, sta.Cycles, 5)
	test.ExpectEquality(t, sta.PageCycles, 0)
	test.ExpectEquality(t, sta.Effect, instructions.Write)

	jmp := instructions.Table[0x6c]
	test.ExpectEquality(t, jmp.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, jmp.Bytes, 3)

	brk := instructions.Table[0x00]
	test.ExpectEquality(t, brk.Operator, instructions.BRK)
	test.ExpectEquality(t, brk.Cycles, 7)

	nop := instructions.Table[0xea]
	test.ExpectFailure(t, nop.Unofficial)
	sbc := instructions.Table[0xeb]
	test.ExpectSuccess(t, sbc.Unofficial)
	test.ExpectEquality(t, sbc.Operator, instructions.SBC)

	for _, opcode := range []uint8{0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2} {
		test.ExpectEquality(t, instructions.Table[opcode].Operator, instructions.KIL)
	}
}

func TestOperatorString(t *testing.T) {
	test.ExpectEquality(t, instructions.ADC.String(), "ADC")
	test.ExpectEquality(t, instructions.TYA.String(), "TYA")
	test.ExpectEquality(t, instructions.XAA.String(), "XAA")
	test.ExpectEquality(t, instructions.NumOperators.String(), "???")
}
