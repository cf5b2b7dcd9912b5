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
	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware/govern"
)

// UnsupportedState is returned by the Run() functions when the
// continueCheck() function returns a state they cannot handle.
const UnsupportedState = "nes: unsupported emulation state (%s) in Run() function"

// The continueCheck() function runs at the end of every CPU instruction and so
// it can be expensive to do a full continue check every time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck()
// function can be nil, in which case the emulation will run until an error
// occurs.
func (nes *NES) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err = nes.CPU.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation until at least the specified number of CPU
// cycles have elapsed. The number of cycles will be exceeded if the final
// instruction takes more cycles than remain.
//
// The continueCheck() function is optional and can be used to end the
// emulation early.
func (nes *NES) RunForCycles(numCycles uint64, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	target := nes.CPU.Cycles + numCycles

	var err error

	state := govern.Running

	for nes.CPU.Cycles < target && state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			_, err = nes.CPU.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
