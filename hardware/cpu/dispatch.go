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

package cpu

import (
	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
)

// the function that performs an instruction. the Mode argument is nil for
// implied addressing
type operation func(mc *CPU, m Mode) error

var operations = [instructions.NumOperators]operation{
	instructions.ADC: (*CPU).adc,
	instructions.AND: (*CPU).and,
	instructions.ASL: (*CPU).asl,
	instructions.BCC: (*CPU).bcc,
	instructions.BCS: (*CPU).bcs,
	instructions.BEQ: (*CPU).beq,
	instructions.BIT: (*CPU).bit,
	instructions.BMI: (*CPU).bmi,
	instructions.BNE: (*CPU).bne,
	instructions.BPL: (*CPU).bpl,
	instructions.BRK: (*CPU).brk,
	instructions.BVC: (*CPU).bvc,
	instructions.BVS: (*CPU).bvs,
	instructions.CLC: (*CPU).clc,
	instructions.CLD: (*CPU).cld,
	instructions.CLI: (*CPU).cli,
	instructions.CLV: (*CPU).clv,
	instructions.CMP: (*CPU).cmp,
	instructions.CPX: (*CPU).cpx,
	instructions.CPY: (*CPU).cpy,
	instructions.DEC: (*CPU).dec,
	instructions.DEX: (*CPU).dex,
	instructions.DEY: (*CPU).dey,
	instructions.EOR: (*CPU).eor,
	instructions.INC: (*CPU).inc,
	instructions.INX: (*CPU).inx,
	instructions.INY: (*CPU).iny,
	instructions.JMP: (*CPU).jmp,
	instructions.JSR: (*CPU).jsr,
	instructions.LDA: (*CPU).lda,
	instructions.LDX: (*CPU).ldx,
	instructions.LDY: (*CPU).ldy,
	instructions.LSR: (*CPU).lsr,
	instructions.NOP: (*CPU).nop,
	instructions.ORA: (*CPU).ora,
	instructions.PHA: (*CPU).pha,
	instructions.PHP: (*CPU).php,
	instructions.PLA: (*CPU).pla,
	instructions.PLP: (*CPU).plp,
	instructions.ROL: (*CPU).rol,
	instructions.ROR: (*CPU).ror,
	instructions.RTI: (*CPU).rti,
	instructions.RTS: (*CPU).rts,
	instructions.SBC: (*CPU).sbc,
	instructions.SEC: (*CPU).sec,
	instructions.SED: (*CPU).sed,
	instructions.SEI: (*CPU).sei,
	instructions.STA: (*CPU).sta,
	instructions.STX: (*CPU).stx,
	instructions.STY: (*CPU).sty,
	instructions.TAX: (*CPU).tax,
	instructions.TAY: (*CPU).tay,
	instructions.TSX: (*CPU).tsx,
	instructions.TXA: (*CPU).txa,
	instructions.TXS: (*CPU).txs,
	instructions.TYA: (*CPU).tya,

	instructions.ALR: (*CPU).alr,
	instructions.ANC: (*CPU).anc,
	instructions.ARR: (*CPU).arr,
	instructions.AXS: (*CPU).axs,
	instructions.DCP: (*CPU).dcp,
	instructions.ISC: (*CPU).isc,
	instructions.KIL: (*CPU).kil,
	instructions.LAS: (*CPU).las,
	instructions.LAX: (*CPU).lax,
	instructions.RLA: (*CPU).rla,
	instructions.RRA: (*CPU).rra,
	instructions.SAX: (*CPU).sax,
	instructions.SLO: (*CPU).slo,
	instructions.SRE: (*CPU).sre,

	instructions.AHX: (*CPU).unsupported,
	instructions.SHX: (*CPU).unsupported,
	instructions.SHY: (*CPU).unsupported,
	instructions.TAS: (*CPU).unsupported,
	instructions.XAA: (*CPU).unsupported,
}

// dispatch is indexed by opcode
var dispatch [256]operation

func init() {
	for i, defn := range instructions.Table {
		op := operations[defn.Operator]
		if defn.Operator == instructions.JMP && defn.AddressingMode == instructions.Indirect {
			op = (*CPU).jmpIndirect
		}
		if op == nil {
			op = (*CPU).unsupported
		}
		dispatch[i] = op
	}
}
