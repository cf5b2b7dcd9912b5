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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/nes2a03/disassembly"
	"github.com/jetsetilly/nes2a03/hardware"
	"github.com/jetsetilly/nes2a03/logger"
	"golang.org/x/term"
)

// the number of instructions executed by the multi-step command
const multiStep = 100

// the number of log entries printed by the log command
const logTail = 10

const help = `s/space  step
n        step 100 instructions
r        registers
z        zero page
k        stack page
l        log
h/?      help
q        quit
`

// Monitor is an interactive single-step monitor for a NES instance.
type Monitor struct {
	nes    *hardware.NES
	output io.Writer
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(nes *hardware.NES, output io.Writer) *Monitor {
	return &Monitor{
		nes:    nes,
		output: output,
	}
}

func (mon *Monitor) printLine(s string, a ...any) {
	mon.output.Write([]byte(fmt.Sprintf(s, a...)))
	mon.output.Write([]byte("\n"))
}

func (mon *Monitor) printError(err error) {
	mon.printLine("* %v", err)
}

// step a single instruction, printing the trace line before execution.
// returns false if the instruction could not be executed
func (mon *Monitor) step() bool {
	line, err := disassembly.TraceLine(mon.nes.CPU, mon.nes.Mem)
	if err != nil {
		mon.printError(err)
		return false
	}
	mon.printLine(line)

	_, err = mon.nes.Step()
	if err != nil {
		mon.printError(err)
		return false
	}

	return true
}

// Command performs the action for the key. Returns false if the monitor
// should end.
func (mon *Monitor) Command(key byte) bool {
	switch key {
	case 's', ' ', '\n':
		mon.step()
	case 'n':
		for i := 0; i < multiStep; i++ {
			if !mon.step() {
				break // for loop
			}
		}
	case 'r':
		mon.printLine("%s", mon.nes.CPU)
		if irq := mon.nes.CPU.PendingInterrupt(); irq != "none" {
			mon.printLine("pending %s", irq)
		}
	case 'z':
		mon.output.Write([]byte(mon.nes.Mem.Page(0x00)))
	case 'k':
		mon.output.Write([]byte(mon.nes.Mem.Page(0x01)))
	case 'l':
		logger.Tail(mon.output, logTail)
	case 'h', '?':
		mon.output.Write([]byte(help))
	case 'q':
		return false
	default:
		mon.printLine("unknown command (%c). press h for help", key)
	}
	return true
}

// input is read in a separate goroutine so that the monitor can respond to an
// interrupt while waiting for the next command. the reading goroutine ends when
// done is closed or when the input is exhausted
func readInput(input io.Reader, split bufio.SplitFunc, done <-chan bool) (<-chan string, <-chan error) {
	cmds := make(chan string)
	errs := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(input)
		scanner.Split(split)
		for scanner.Scan() {
			select {
			case cmds <- scanner.Text():
			case <-done:
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		errs <- err
	}()

	return cmds, errs
}

// run commands from the input until the quit command is read, the input is
// exhausted or a value is received on the interrupt channel. the interrupt
// channel can be nil
func (mon *Monitor) runInput(input io.Reader, split bufio.SplitFunc, interrupt <-chan bool) error {
	done := make(chan bool)
	defer close(done)

	cmds, errs := readInput(input, split, done)

	for {
		select {
		case <-interrupt:
			mon.printLine("interrupted")
			return nil
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return err
		case s := <-cmds:
			key, ok := commandKey(s)
			if !ok {
				return nil
			}
			if !mon.Command(key) {
				return nil
			}
		}
	}
}

// commandKey returns the key for the text read from the input. an empty line
// is a step command. returns false if the text is the interrupt key
func commandKey(s string) (byte, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 's', true
	}
	if s[0] == keyInterrupt {
		return 0, false
	}
	return s[0], true
}

// RunLines reads commands from the input, one per line, until the quit
// command is read, the input is exhausted or the interrupt channel receives a
// value.
func (mon *Monitor) RunLines(input io.Reader, interrupt <-chan bool) error {
	return mon.runInput(input, bufio.ScanLines, interrupt)
}

// RunKeys reads single key commands from the input until the quit command is
// read. An interrupt key (ctrl-c) or a value on the interrupt channel also
// ends the monitor.
func (mon *Monitor) RunKeys(input io.Reader, interrupt <-chan bool) error {
	return mon.runInput(input, bufio.ScanBytes, interrupt)
}

// Run the monitor using the input file. The file is put into cbreak mode if
// it is a terminal. The terminal is restored before Run returns, including
// when the interrupt channel receives a value.
func (mon *Monitor) Run(input *os.File, interrupt <-chan bool) error {
	if !term.IsTerminal(int(input.Fd())) {
		logger.Log(logger.Allow, "monitor", "input is not a terminal. reading commands by line")
		return mon.RunLines(input, interrupt)
	}

	restore, err := cbreak(input)
	if err != nil {
		logger.Logf(logger.Allow, "monitor", "cbreak mode not available: %v", err)
		return mon.RunLines(input, interrupt)
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Log(logger.Allow, "monitor", err)
		}
	}()

	mon.printLine("press h for help")
	return mon.RunKeys(input, interrupt)
}
