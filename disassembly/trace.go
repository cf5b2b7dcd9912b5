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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/nes2a03/hardware/cpu"
	"github.com/jetsetilly/nes2a03/hardware/memory/cpubus"
)

// the column at which the register values begin
const registerColumn = 48

// Registers returns the register values of the CPU in the trace format.
func Registers(mc *cpu.CPU) string {
	return fmt.Sprintf("A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value(), mc.Cycles)
}

// TraceLine returns the instruction about to be executed by the CPU along
// with the current register values. It should be called before the call to
// Step() that executes the instruction.
func TraceLine(mc *cpu.CPU, mem cpubus.Memory) (string, error) {
	e, err := Decode(mem, mc.PC.Address())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%-*s%s", registerColumn, e.String(), Registers(mc)), nil
}
