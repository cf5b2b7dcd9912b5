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
	"github.com/jetsetilly/nes2a03/hardware/cpu/registers"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
)

// bits in the status register value that do not exist in the register itself
// but which are set when the status is pushed to the stack
const (
	breakMask  = uint8(1 << registers.Break)
	unusedMask = uint8(1 << registers.Unused)
)

// load and store

func (mc *CPU) lda(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

func (mc *CPU) ldx(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.X.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

func (mc *CPU) ldy(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.Y.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

func (mc *CPU) sta(m Mode) error {
	return m.Save(mc, mc.A.Value())
}

func (mc *CPU) stx(m Mode) error {
	return m.Save(mc, mc.X.Value())
}

func (mc *CPU) sty(m Mode) error {
	return m.Save(mc, mc.Y.Value())
}

// transfers

func (mc *CPU) transfer(to *registers.Register, from registers.Register) {
	to.Load(from.Value())
	mc.Status.SetZeroNegative(to.Value())
}

func (mc *CPU) tax(_ Mode) error {
	mc.transfer(&mc.X, mc.A)
	return nil
}

func (mc *CPU) tay(_ Mode) error {
	mc.transfer(&mc.Y, mc.A)
	return nil
}

func (mc *CPU) txa(_ Mode) error {
	mc.transfer(&mc.A, mc.X)
	return nil
}

func (mc *CPU) tya(_ Mode) error {
	mc.transfer(&mc.A, mc.Y)
	return nil
}

func (mc *CPU) tsx(_ Mode) error {
	mc.transfer(&mc.X, mc.SP)
	return nil
}

// TXS is the only transfer that does not affect the status register
func (mc *CPU) txs(_ Mode) error {
	mc.SP.Load(mc.X.Value())
	return nil
}

// stack

func (mc *CPU) pha(_ Mode) error {
	return mc.push(mc.A.Value())
}

func (mc *CPU) php(_ Mode) error {
	return mc.push(mc.Status.Value() | breakMask | unusedMask)
}

func (mc *CPU) pla(_ Mode) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.A.Load(v)
	mc.Status.SetZeroNegative(v)
	return nil
}

// the break flag has no storage in the status register. it is ignored when
// the status is pulled from the stack
func (mc *CPU) plp(_ Mode) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Status.Load(v &^ breakMask)
	return nil
}

// logic

func (mc *CPU) and(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.AND(v)
	mc.Status.SetZeroNegative(mc.A.Value())
	return nil
}

func (mc *CPU) eor(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.EOR(v)
	mc.Status.SetZeroNegative(mc.A.Value())
	return nil
}

func (mc *CPU) ora(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.A.ORA(v)
	mc.Status.SetZeroNegative(mc.A.Value())
	return nil
}

func (mc *CPU) bit(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	r := registers.NewRegister(v, "M")
	mc.Status.SetZero(mc.A.Value()&v == 0)
	mc.Status.SetOverflow(r.IsBitV())
	mc.Status.SetNegative(r.IsNegative())
	return nil
}

// arithmetic

func (mc *CPU) add(v uint8) {
	carry, overflow := mc.A.Add(v, mc.Status.Carry())
	mc.Status.SetCarry(carry)
	mc.Status.SetOverflow(overflow)
	mc.Status.SetZeroNegative(mc.A.Value())
}

func (mc *CPU) subtract(v uint8) {
	carry, overflow := mc.A.Subtract(v, mc.Status.Carry())
	mc.Status.SetCarry(carry)
	mc.Status.SetOverflow(overflow)
	mc.Status.SetZeroNegative(mc.A.Value())
}

func (mc *CPU) adc(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.add(v)
	return nil
}

func (mc *CPU) sbc(m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.subtract(v)
	return nil
}

func (mc *CPU) compare(r registers.Register, m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}
	mc.Status.SetCarry(r.Value() >= v)
	mc.Status.SetZeroNegative(r.Value() - v)
	return nil
}

func (mc *CPU) cmp(m Mode) error {
	return mc.compare(mc.A, m)
}

func (mc *CPU) cpx(m Mode) error {
	return mc.compare(mc.X, m)
}

func (mc *CPU) cpy(m Mode) error {
	return mc.compare(mc.Y, m)
}

// increment and decrement

func (mc *CPU) inc(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		r.Increment()
	})
	return err
}

func (mc *CPU) dec(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		r.Decrement()
	})
	return err
}

func (mc *CPU) inx(_ Mode) error {
	mc.X.Increment()
	mc.Status.SetZeroNegative(mc.X.Value())
	return nil
}

func (mc *CPU) iny(_ Mode) error {
	mc.Y.Increment()
	mc.Status.SetZeroNegative(mc.Y.Value())
	return nil
}

func (mc *CPU) dex(_ Mode) error {
	mc.X.Decrement()
	mc.Status.SetZeroNegative(mc.X.Value())
	return nil
}

func (mc *CPU) dey(_ Mode) error {
	mc.Y.Decrement()
	mc.Status.SetZeroNegative(mc.Y.Value())
	return nil
}

// shifts and rotates

// modify loads the value from the mode, applies the function to it and saves
// the result back. the zero and negative flags are set according to the
// result, which is also returned
func (mc *CPU) modify(m Mode, f func(r *registers.Register)) (uint8, error) {
	v, err := m.Load(mc)
	if err != nil {
		return 0, err
	}
	r := registers.NewRegister(v, "")
	f(&r)
	if err := m.Save(mc, r.Value()); err != nil {
		return 0, err
	}
	mc.Status.SetZeroNegative(r.Value())
	return r.Value(), nil
}

func (mc *CPU) asl(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		mc.Status.SetCarry(r.ASL())
	})
	return err
}

func (mc *CPU) lsr(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		mc.Status.SetCarry(r.LSR())
	})
	return err
}

func (mc *CPU) rol(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		mc.Status.SetCarry(r.ROL(mc.Status.Carry()))
	})
	return err
}

func (mc *CPU) ror(m Mode) error {
	_, err := mc.modify(m, func(r *registers.Register) {
		mc.Status.SetCarry(r.ROR(mc.Status.Carry()))
	})
	return err
}

// jumps and subroutines

func (mc *CPU) jmp(m Mode) error {
	address, err := m.EffectiveAddress(mc)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// the operand of an indirect JMP is the address of a pointer to the new PC
// value. the pointer never crosses a page boundary
func (mc *CPU) jmpIndirect(m Mode) error {
	ptr, err := m.EffectiveAddress(mc)
	if err != nil {
		return err
	}
	address, bug, err := mc.read16Bug(ptr)
	if err != nil {
		return err
	}
	mc.LastResult.CPUBug = bug
	mc.PC.Load(address)
	return nil
}

// the address pushed to the stack is the address of the last byte of the JSR
// instruction
func (mc *CPU) jsr(m Mode) error {
	address, err := m.EffectiveAddress(mc)
	if err != nil {
		return err
	}
	if err := mc.push16(mc.PC.Address() - 1); err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

func (mc *CPU) rts(_ Mode) error {
	address, err := mc.pop16()
	if err != nil {
		return err
	}
	mc.PC.Load(address + 1)
	return nil
}

// BRK skips the byte following the opcode. the return address pushed to the
// stack is two bytes after the BRK opcode
func (mc *CPU) brk(_ Mode) error {
	if err := mc.push16(mc.PC.Address() + 1); err != nil {
		return err
	}
	if err := mc.push(mc.Status.Value() | breakMask | unusedMask); err != nil {
		return err
	}
	mc.Status.SetInterruptDisable(true)

	address, err := mc.read16(cpubus.BRK)
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

func (mc *CPU) rti(_ Mode) error {
	v, err := mc.pop()
	if err != nil {
		return err
	}
	mc.Status.Load(v &^ breakMask)

	address, err := mc.pop16()
	if err != nil {
		return err
	}
	mc.PC.Load(address)
	return nil
}

// branches

// the Immediate mode carries the branch offset. a taken branch costs one
// additional cycle and one more if the destination is on a different page to
// the instruction following the branch
func (mc *CPU) branch(flag bool, m Mode) error {
	v, err := m.Load(mc)
	if err != nil {
		return err
	}

	mc.LastResult.BranchSuccess = flag
	if !flag {
		return nil
	}

	oldPC := mc.PC.Address()
	mc.PC.Branch(int8(v))
	mc.LastResult.Cycles++

	if pageCrossed(oldPC, mc.PC.Address()) {
		mc.LastResult.Cycles++
		mc.LastResult.PageFault = true
	}

	return nil
}

func (mc *CPU) bcc(m Mode) error {
	return mc.branch(!mc.Status.Carry(), m)
}

func (mc *CPU) bcs(m Mode) error {
	return mc.branch(mc.Status.Carry(), m)
}

func (mc *CPU) beq(m Mode) error {
	return mc.branch(mc.Status.Zero(), m)
}

func (mc *CPU) bne(m Mode) error {
	return mc.branch(!mc.Status.Zero(), m)
}

func (mc *CPU) bmi(m Mode) error {
	return mc.branch(mc.Status.Negative(), m)
}

func (mc *CPU) bpl(m Mode) error {
	return mc.branch(!mc.Status.Negative(), m)
}

func (mc *CPU) bvc(m Mode) error {
	return mc.branch(!mc.Status.Overflow(), m)
}

func (mc *CPU) bvs(m Mode) error {
	return mc.branch(mc.Status.Overflow(), m)
}

// status flags

func (mc *CPU) clc(_ Mode) error {
	mc.Status.SetCarry(false)
	return nil
}

func (mc *CPU) cld(_ Mode) error {
	mc.Status.SetDecimal(false)
	return nil
}

func (mc *CPU) cli(_ Mode) error {
	mc.Status.SetInterruptDisable(false)
	return nil
}

func (mc *CPU) clv(_ Mode) error {
	mc.Status.SetOverflow(false)
	return nil
}

func (mc *CPU) sec(_ Mode) error {
	mc.Status.SetCarry(true)
	return nil
}

// the decimal flag can be set but has no effect on arithmetic
func (mc *CPU) sed(_ Mode) error {
	mc.Status.SetDecimal(true)
	return nil
}

func (mc *CPU) sei(_ Mode) error {
	mc.Status.SetInterruptDisable(true)
	return nil
}

// the memory forms of NOP do not read memory. the cost of the read, including
// any page fault, is accounted for by the instruction definition
func (mc *CPU) nop(_ Mode) error {
	return nil
}
