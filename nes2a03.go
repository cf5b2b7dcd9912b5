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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/nes2a03/disassembly"
	"github.com/jetsetilly/nes2a03/hardware"
	"github.com/jetsetilly/nes2a03/hardware/govern"
	"github.com/jetsetilly/nes2a03/hardware/memory/cartridge"
	"github.com/jetsetilly/nes2a03/logger"
	"github.com/jetsetilly/nes2a03/modalflag"
	"github.com/jetsetilly/nes2a03/monitor"
	"github.com/jetsetilly/nes2a03/performance"
	"github.com/jetsetilly/nes2a03/statsview"
	"github.com/jetsetilly/nes2a03/version"
)

// communication between the main() function and the launch() function.
type mainSync struct {
	// the exit value of the program. launch() sends exactly one value
	quit chan int

	// a single interrupt signal asks the running mode to end. the mode should
	// check the channel regularly
	interrupt chan bool
}

// the exit values used by the program
const (
	exitOK        = 0
	exitArgsError = 10
	exitModeError = 20
)

func main() {
	sync := &mainSync{
		quit:      make(chan int),
		interrupt: make(chan bool, 1),
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	// the first ctrl-c is passed to the running mode. a second ctrl-c, before
	// the mode has ended, quits immediately
	for {
		select {
		case <-intChan:
			select {
			case sync.interrupt <- true:
			default:
				fmt.Print("\r")
				os.Exit(exitModeError)
			}
		case exitVal := <-sync.quit:
			os.Exit(exitVal)
		}
	}
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "MONITOR", "DISASM", "INFO", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(version.String())

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- exitOK
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- exitArgsError
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TRACE":
		err = trace(md, sync)

	case "MONITOR":
		err = monitorMode(md, sync)

	case "DISASM":
		err = disasm(md)

	case "INFO":
		err = info(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.quit <- exitModeError
		return
	}

	sync.quit <- exitOK
}

// loads the cartridge named by the single remaining argument
func loadCartridge(md *modalflag.Modes) (*cartridge.Cartridge, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
		return cartridge.Load(md.GetArg(0))
	}
	return nil, fmt.Errorf("too many arguments for %s mode", md)
}

// creates a NES with the cartridge named by the single remaining argument.
// the PC is loaded with the value of the -pc flag if it has been set
func createNES(md *modalflag.Modes, pc *uint16) (*hardware.NES, error) {
	cart, err := loadCartridge(md)
	if err != nil {
		return nil, err
	}

	nes, err := hardware.NewNES(cart)
	if err != nil {
		return nil, err
	}

	if md.IsSet("pc") {
		nes.CPU.LoadPC(*pc)
	}

	return nes, nil
}

// returns a continueCheck() function that ends the emulation when an
// interrupt signal is received
func interruptCheck(sync *mainSync) func() (govern.State, error) {
	performanceBrake := 0
	return func() (govern.State, error) {
		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-sync.interrupt:
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cycles := md.AddUint64("cycles", 0, "number of CPU cycles to run for (0 is unlimited)")
	pc := md.AddAddress("pc", 0, "start address. overrides the reset vector")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, BLOCK, NONE")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	viz := md.AddString("memviz", "", "write graphviz representation of the console to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	nes, err := createNES(md, pc)
	if err != nil {
		return err
	}

	err = performance.RunProfiler(prf, "", func() error {
		if *cycles > 0 {
			return nes.RunForCycles(*cycles, interruptCheck(sync))
		}
		return nes.Run(interruptCheck(sync))
	})

	md.Output.Write([]byte(fmt.Sprintf("%s\n", nes)))
	md.Output.Write([]byte(fmt.Sprintf("%d cycles\n", nes.CPU.Cycles)))

	if *viz != "" {
		f, ferr := os.Create(*viz)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		memviz.Map(f, nes)
	}

	return err
}

func trace(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	pc := md.AddAddress("pc", 0, "start address. overrides the reset vector")
	count := md.AddInt("count", 0, "number of instructions to trace (0 is unlimited)")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(md.Output)
	}

	nes, err := createNES(md, pc)
	if err != nil {
		return err
	}

	for i := 0; *count == 0 || i < *count; i++ {
		select {
		case <-sync.interrupt:
			return nil
		default:
		}

		line, err := disassembly.TraceLine(nes.CPU, nes.Mem)
		if err != nil {
			return err
		}
		md.Output.Write([]byte(line))
		md.Output.Write([]byte("\n"))

		if _, err := nes.Step(); err != nil {
			return err
		}
	}

	return nil
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	pc := md.AddAddress("pc", 0, "start address. overrides the reset vector")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	nes, err := createNES(md, pc)
	if err != nil {
		return err
	}

	return monitor.NewMonitor(nes, md.Output).Run(os.Stdin, sync.interrupt)
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", 0x8000, "address of the first byte of PRG (default $C000 for 16K PRG)")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	if !md.IsSet("origin") && cart.NumPRG() == 1 {
		*origin = 0xc000
	}

	for _, e := range disassembly.Disassemble(cart.PRG, *origin) {
		if *bytecode {
			md.Output.Write([]byte(fmt.Sprintf("%s\n", e)))
		} else {
			md.Output.Write([]byte(fmt.Sprintf("%04X  %s\n", e.Address, e.Instruction())))
		}
	}

	return nil
}

func info(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	md.Output.Write([]byte(fmt.Sprintf("%s\n", cart.Filename)))
	md.Output.Write([]byte(fmt.Sprintf("%s\n", cart.Summary())))
	md.Output.Write([]byte(fmt.Sprintf("sha1: %s\n", cart.Hash)))

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM, BLOCK, NONE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cart, err := loadCartridge(md)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, cart, *duration)
	return err
}
