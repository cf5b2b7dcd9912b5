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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/nes2a03/hardware/cpu"
	"github.com/jetsetilly/nes2a03/hardware/memory"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/nes2a03/logger"
)

// NES struct is the main container for the emulated components of the NES.
type NES struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	// the cartridge attached to the console. nil if no cartridge has been
	// attached
	Cart *cartridge.Cartridge
}

// NewNES creates a new NES and everything associated with the hardware. The
// cartridge can be nil in which case the memory will see an ejected
// cartridge.
//
// The console is reset before returning.
func NewNES(cart *cartridge.Cartridge) (*NES, error) {
	nes := &NES{Cart: cart}

	var mapper cartridge.Mapper
	if cart != nil {
		var err error
		mapper, err = cartridge.NewMapper(cart)
		if err != nil {
			return nil, err
		}
		logger.Logf(logger.Allow, "NES", "attached %s", cart.Summary())
	}

	nes.Mem = memory.NewMemory(mapper)
	nes.CPU = cpu.NewCPU(nes.Mem)

	if err := nes.Reset(); err != nil {
		return nil, err
	}

	return nes, nil
}

func (nes *NES) String() string {
	if nes.Cart == nil {
		return fmt.Sprintf("%s [no cartridge]", nes.CPU)
	}
	return fmt.Sprintf("%s [%s]", nes.CPU, nes.Cart)
}

// Reset emulates the reset switch on the console. Memory is not cleared.
func (nes *NES) Reset() error {
	return nes.CPU.Reset()
}

// Step executes a single CPU instruction. Returns the number of cycles
// consumed.
func (nes *NES) Step() (int, error) {
	return nes.CPU.Step()
}
