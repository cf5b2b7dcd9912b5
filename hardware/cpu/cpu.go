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
	"fmt"

	"github.com/jetsetilly/nes2a03/hardware/cpu/execution"
	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
	"github.com/jetsetilly/nes2a03/hardware/cpu/registers"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
	"github.com/jetsetilly/nes2a03/logger"
)

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the number of cycles executed since the CPU was created. the value is
	// not affected by Reset()
	Cycles uint64

	mem cpubus.Memory

	// pending interrupt request. serviced at the start of the next Step()
	interrupt interrupt

	// number of cycles the CPU must wait before fetching the next instruction
	stall int

	// last result. the Final field will be false if the last call to Step()
	// did not complete an instruction
	LastResult execution.Result

	// the cpu has encountered an error it cannot recover from. requires a
	// Reset()
	Killed bool

	// the error that caused the CPU to be killed. returned by every call to
	// Step() until the next Reset()
	killedBy error
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is initialised as though Reset() has been called, except that the PC is
// left at zero and the reset vector is not read.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
	}
	mc.initialise()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

func (mc *CPU) initialise() {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.killedBy = nil
	mc.interrupt = noInterrupt
	mc.stall = 0

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.SetZeroNegative(mc.A.Value())
}

// Reset reinitialises all registers and loads the PC with the reset vector.
// The value of the Cycles field is not changed.
func (mc *CPU) Reset() error {
	mc.initialise()

	address, err := mc.read16(cpubus.Reset)
	if err != nil {
		return err
	}
	mc.PC.Load(address)

	return nil
}

// LoadPC loads the PC with the address. Useful for starting execution at an
// address other than the one in the reset vector.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
}

// read a 16 bit value from memory, low byte first
func (mc *CPU) read16(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// read a 16 bit value from memory but with the high byte always read from the
// same page as the low byte. this is how the 6502 reads the pointer for the
// indirect JMP instruction
func (mc *CPU) read16Bug(address uint16) (uint16, execution.Bug, error) {
	hiAddress := address&0xff00 | uint16(uint8(address)+1)

	bug := execution.NoBug
	if hiAddress != address+1 {
		bug = execution.JmpIndirectAddressingBug
	}

	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, bug, err
	}
	hi, err := mc.mem.Read(hiAddress)
	if err != nil {
		return 0, bug, err
	}
	return uint16(hi)<<8 | uint16(lo), bug, nil
}

// create the Mode value for the addressing mode. the operand is the value of
// the bytes following the opcode. returns nil for implied addressing
func (mc *CPU) mode(am instructions.AddressingMode, operand uint16) Mode {
	switch am {
	case instructions.Accumulator:
		return Accumulator{}
	case instructions.Immediate, instructions.Relative:
		return Immediate{Value: uint8(operand)}
	case instructions.ZeroPage:
		return ZeroPage{Address: uint8(operand)}
	case instructions.ZeroPageIndexedX:
		return ZeroPageX{Address: uint8(operand)}
	case instructions.ZeroPageIndexedY:
		return ZeroPageY{Address: uint8(operand)}
	case instructions.Absolute, instructions.Indirect:
		// the address of the pointer in the case of indirect addressing
		return Absolute{Address: operand}
	case instructions.AbsoluteIndexedX:
		return AbsoluteX{Address: operand}
	case instructions.AbsoluteIndexedY:
		return AbsoluteY{Address: operand}
	case instructions.IndexedIndirect:
		return IndexedIndirect{Address: uint8(operand)}
	case instructions.IndirectIndexed:
		return IndirectIndexed{Address: uint8(operand)}
	}
	return nil
}

// every error during Step() is fatal. the CPU refuses to execute until the
// next Reset()
func (mc *CPU) kill(err error) error {
	mc.Killed = true
	mc.killedBy = err
	logger.Log(logger.Allow, "CPU", err)
	return err
}

// Step executes the next instruction and returns the number of cycles
// consumed. The basic process when executing an instruction is this:
//
//  1. service any pending interrupt
//  2. read opcode and look up instruction definition
//  3. read operands (if any) and advance the PC past the instruction
//  4. using the operator as a guide, perform the instruction on the data
//
// If the CPU has been stalled then one stall cycle is consumed and no
// instruction is executed.
func (mc *CPU) Step() (int, error) {
	if mc.Killed {
		return 0, mc.killedBy
	}

	if mc.stall > 0 {
		mc.stall--
		mc.Cycles++
		return 1, nil
	}

	cycles, err := mc.serviceInterrupt()
	if err != nil {
		return cycles, mc.kill(err)
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return cycles, mc.kill(err)
	}

	defn := &instructions.Table[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.ByteCount = 1

	var operand uint16
	for i := 1; i < defn.Bytes; i++ {
		v, err := mc.mem.Read(mc.PC.Address() + uint16(i))
		if err != nil {
			return cycles, mc.kill(err)
		}
		operand |= uint16(v) << (8 * (i - 1))
		mc.LastResult.ByteCount++
	}
	mc.LastResult.InstructionData = operand

	// the PC is advanced before the instruction is executed. branches and
	// subroutine calls rely on this
	mc.PC.Add(uint16(defn.Bytes))

	m := mc.mode(defn.AddressingMode, operand)

	mc.LastResult.Cycles = defn.Cycles
	if defn.PageSensitive() {
		if p, ok := m.(pageCrosser); ok && p.pageCrossed(mc) {
			mc.LastResult.Cycles += defn.PageCycles
			mc.LastResult.PageFault = true
		}
	}

	err = dispatch[opcode](mc, m)
	if err != nil {
		return cycles, mc.kill(err)
	}

	mc.LastResult.Final = true
	mc.Cycles += uint64(mc.LastResult.Cycles)

	return cycles + mc.LastResult.Cycles, nil
}
