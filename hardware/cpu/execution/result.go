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

package execution

import (
	"fmt"

	"github.com/jetsetilly/nes2a03/hardware/cpu/instructions"
)

// Result records the state and effect of an executed CPU instruction.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the opcode found at Address. nil until the opcode has
	// been read
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. when the decode has
	// completed this value will equal Defn.Bytes
	ByteCount int

	// the operand of the instruction, if any. for two byte instructions only
	// the low byte is used
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches, this value
	// may be greater
	Cycles int

	// whether an extra cycle was required because the effective address was on
	// a different page to the base address
	PageFault bool

	// whether a branch instruction jumped
	BranchSuccess bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether the instruction has completed
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand bytes of the instruction, low byte first.
func (r Result) Operand() []uint8 {
	if r.Defn == nil {
		return nil
	}
	switch r.Defn.Bytes {
	case 2:
		return []uint8{uint8(r.InstructionData)}
	case 3:
		return []uint8{uint8(r.InstructionData), uint8(r.InstructionData >> 8)}
	}
	return nil
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04X ???", r.Address)
	}

	s := fmt.Sprintf("%04X %s (%d cycles)", r.Address, r.Defn.Mnemonic(), r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.BranchSuccess {
		s = fmt.Sprintf("%s [branched]", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	return s
}
