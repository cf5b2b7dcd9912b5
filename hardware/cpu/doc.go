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

// Package cpu emulates the 2A03 microprocessor found in the NES. The 2A03 is
// a 6502 core without the decimal mode circuitry. Like all 8-bit processors of
// the era, the 2A03 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The Memory interface defines
// the memory operations required by the CPU. See the cpubus package for
// details.
//
// The bread-and-butter of the CPU type is the Step() function. It executes a
// single instruction and returns the number of cycles consumed.
//
// Let's assume mem is an instance of the Memory interface loaded with 2A03
// instructions.
//
//	mc := cpu.NewCPU(mem)
//	if err := mc.Reset(); err != nil {
//		return err
//	}
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		...
//	}
//
// The effective address and the data for an instruction are described by a
// Mode value. There is one Mode implementation for each of the memory
// addressing modes of the 6502. The Mode value is created during decode and
// is passed to the function implementing the instruction.
//
// Interrupts are requested with TriggerNMI() and TriggerIRQ() and are serviced
// at the start of the next call to Step(). The DMA unit of the console can
// halt the CPU with the Stall() function.
//
// Opcodes that have no defined behaviour cause Step() to return an error.
// Once that has happened the CPU will not execute any more instructions until
// Reset() is called.
package cpu
