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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/nes2a03/curated"
	"github.com/jetsetilly/nes2a03/hardware"
	"github.com/jetsetilly/nes2a03/hardware/govern"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
)

// ClockNTSC is the clock rate of the 2A03 in the NTSC NES.
const ClockNTSC = 1789773.0

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// CalcMHz takes the number of CPU cycles and duration (in seconds) and
// returns the effective clock rate in MHz and the accuracy of that value as
// a percentage of the NTSC clock rate.
func CalcMHz(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	hz := float64(cycles) / duration
	return hz / 1000000, 100 * hz / ClockNTSC
}

// Result of a performance check.
type Result struct {
	Instructions uint64
	Cycles       uint64
	Duration     time.Duration
}

func (r Result) String() string {
	mhz, accuracy := CalcMHz(r.Cycles, r.Duration.Seconds())
	return fmt.Sprintf("%.2f MHz (%d instructions, %d cycles in %.2f seconds) %.1f%%",
		mhz, r.Instructions, r.Cycles, r.Duration.Seconds(), accuracy)
}

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a profile as
// defined by the Profile argument. The result is written to output.
func Check(output io.Writer, p Profile, cart *cartridge.Cartridge, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	nes, err := hardware.NewNES(cart)
	if err != nil {
		return Result{}, curated.Errorf("performance: %v", err)
	}

	var res Result

	runner := func() error {
		timesUp := time.After(dur)
		startCycles := nes.CPU.Cycles
		startTime := time.Now()

		// only check for end of measurement period every PerformanceBrake
		// CPU instructions. checking the channel is relatively expensive
		performanceBrake := 0

		err := nes.Run(func() (govern.State, error) {
			res.Instructions++

			performanceBrake++
			if performanceBrake >= hardware.PerformanceBrake {
				performanceBrake = 0
				select {
				case <-timesUp:
					return govern.Ending, timedOut
				default:
				}
			}
			return govern.Running, nil
		})

		res.Cycles = nes.CPU.Cycles - startCycles
		res.Duration = time.Since(startTime)

		return err
	}

	err = RunProfiler(p, "", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return res, curated.Errorf("performance: %v", err)
	}

	output.Write([]byte(fmt.Sprintf("%s\n", res)))

	return res, nil
}
