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
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
)

type interrupt int

const (
	noInterrupt interrupt = iota
	irqInterrupt
	nmiInterrupt
)

func (i interrupt) String() string {
	switch i {
	case irqInterrupt:
		return "IRQ"
	case nmiInterrupt:
		return "NMI"
	}
	return "none"
}

// the number of cycles taken to service an interrupt
const interruptCycles = 7

// TriggerNMI requests a non-maskable interrupt. It is serviced at the start
// of the next call to Step().
func (mc *CPU) TriggerNMI() {
	mc.interrupt = nmiInterrupt
}

// TriggerIRQ requests an interrupt. The request is dropped if the
// InterruptDisable flag is set when Step() is next called. A pending NMI takes
// priority over an IRQ.
func (mc *CPU) TriggerIRQ() {
	if mc.interrupt == noInterrupt {
		mc.interrupt = irqInterrupt
	}
}

// Stall the CPU for the number of cycles. Used by DMA.
func (mc *CPU) Stall(cycles int) {
	mc.stall += cycles
}

// PendingInterrupt returns the name of the interrupt waiting to be serviced.
func (mc *CPU) PendingInterrupt() string {
	return mc.interrupt.String()
}

// returns the number of cycles used to service the interrupt. zero if no
// interrupt was serviced
func (mc *CPU) serviceInterrupt() (int, error) {
	var vector uint16

	switch mc.interrupt {
	case nmiInterrupt:
		vector = cpubus.NMI
	case irqInterrupt:
		if mc.Status.InterruptDisable() {
			mc.interrupt = noInterrupt
			return 0, nil
		}
		vector = cpubus.IRQ
	default:
		return 0, nil
	}

	mc.interrupt = noInterrupt

	if err := mc.push16(mc.PC.Address()); err != nil {
		return 0, err
	}

	// the break flag is clear when the status is pushed by an interrupt
	if err := mc.push(mc.Status.Value() &^ breakMask); err != nil {
		return 0, err
	}

	mc.Status.SetInterruptDisable(true)

	address, err := mc.read16(vector)
	if err != nil {
		return 0, err
	}
	mc.PC.Load(address)

	mc.Cycles += interruptCycles

	return interruptCycles, nil
}
