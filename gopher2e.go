// This file is part of Gopher2e.
//
// Gopher2e is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2e is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2e.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopher2e/curated"
	"github.com/jetsetilly/gopher2e/hardware"
	"github.com/jetsetilly/gopher2e/hardware/memory"
	"github.com/jetsetilly/gopher2e/hardware/preferences"
	"github.com/jetsetilly/gopher2e/logger"
	"github.com/jetsetilly/gopher2e/modalflag"
	"github.com/jetsetilly/gopher2e/monitor"
	"github.com/jetsetilly/gopher2e/paths"
	"github.com/jetsetilly/gopher2e/prefs"
	"github.com/jetsetilly/gopher2e/romloader"
	"github.com/jetsetilly/gopher2e/statsview"
	"github.com/jetsetilly/gopher2e/terminal/easyterm"
	"github.com/jetsetilly/gopher2e/version"
	"github.com/jetsetilly/gopher2e/wavwriter"
)

// ArgumentError is the pattern used when the arguments for a mode are wrong.
const ArgumentError = "arguments: %v"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has a more
	// appropriate handler of its own.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function
type mainSync struct {
	state chan stateRequest
}

// noIntSig tells the main thread to stop handling the interrupt signal. safe
// to call with a nil mainSync.
func (sync *mainSync) noIntSig() {
	if sync == nil {
		return
	}
	sync.state <- stateRequest{req: reqNoIntSig}
}

// #mainthread
func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if v, ok := state.args.(int); ok {
					exitVal = v
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)

	err := dispatch(md, sync)
	switch {
	case err == nil:
		sync.state <- stateRequest{req: reqQuit}
	case curated.Is(err, modalflag.ModalFlagError):
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
	default:
		fmt.Printf("* error in %s mode: %v\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
	}
}

func dispatch(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "NIBBLE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "RUN":
		return run(md, sync)
	case "MONITOR":
		return monitorMode(md, sync)
	case "NIBBLE":
		return nibble(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	return nil
}

// machineArgs are the flags shared by the RUN and MONITOR modes.
type machineArgs struct {
	model   *string
	exact   *bool
	bootROM *string
	prefs   *string
	log     *bool
}

func addMachineArgs(md *modalflag.Modes) machineArgs {
	return machineArgs{
		model:   md.AddString("model", "", "machine model: AUTO, II, II+, IIE, IIE-ENHANCED"),
		exact:   md.AddBool("exact", false, "use exact disk timing for the entire session"),
		bootROM: md.AddString("bootrom", "", "Disk II boot ROM (if not part of the system ROM)"),
		prefs:   md.AddString("prefs", "", "preferences for this session only (eg. \"disk2.spinup::0; hardware.randstate::true\")"),
		log:     md.AddBool("log", false, "echo log to stdout"),
	}
}

// newMachine creates and resets a machine using the remaining arguments of
// the mode: the system ROM followed by up to two disk images. The system ROM
// data is returned along with the machine.
func newMachine(md *modalflag.Modes, a machineArgs) (*hardware.Machine, []uint8, error) {
	files := md.RemainingArgs()
	switch {
	case len(files) == 0:
		return nil, nil, curated.Errorf(ArgumentError, "a system ROM is required")
	case len(files) > 3:
		return nil, nil, curated.Errorf(ArgumentError, "too many arguments")
	}

	if *a.log {
		logger.SetEcho(md.Output)
	}

	if *a.prefs != "" {
		prefs.PushCommandLineStack(*a.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "gopher2e", "unused preferences: %s", unused)
			}
		}()
	}

	p, err := preferences.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	// changes to the preferences made here are for this session only. they
	// are never saved
	if *a.model != "" {
		if err := p.Model.Set(*a.model); err != nil {
			return nil, nil, err
		}
	}
	if *a.exact {
		if err := p.Accelerated.Set(false); err != nil {
			return nil, nil, err
		}
	}

	m, err := hardware.NewMachine(p)
	if err != nil {
		return nil, nil, err
	}

	if *a.bootROM != "" {
		ld := romloader.NewLoader(*a.bootROM)
		if err := ld.Load(); err != nil {
			return nil, nil, err
		}
		if err := m.SetBootROM(ld.Data); err != nil {
			return nil, nil, err
		}
	}

	ld := romloader.NewLoader(files[0])
	if err := ld.Load(); err != nil {
		return nil, nil, err
	}
	if err := m.Reset(ld.Data, memory.Auto); err != nil {
		return nil, nil, err
	}

	for i, fn := range files[1:] {
		dl := romloader.NewLoader(fn)
		img, err := dl.Disk()
		if err != nil {
			return nil, nil, err
		}
		if err := m.InsertDisk(i, img); err != nil {
			return nil, nil, err
		}
	}

	return m, ld.Data, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <system ROM> [disk image 1] [disk image 2]")

	a := addMachineArgs(md)
	wav := md.AddString("wav", "", "record the speaker to a WAV file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsAvailable()))
	frames := md.AddInt("frames", 0, "number of frames to run. zero to run until interrupted")
	keys := md.AddString("keys", "", "text to type once the machine is running")
	text := md.AddBool("text", false, "print the text screen on exit")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	m, _, err := newMachine(md, a)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav)
		if err != nil {
			return err
		}
		m.AttachSpeaker(aw)
	}

	upper := !m.Mem.Model().IsIIe()
	q := &monitor.KeyQueue{}
	q.Push(*keys, upper)

	if *frames > 0 {
		for i := 0; i < *frames; i++ {
			q.Feed(m)
			m.RunFrame()
		}
	} else {
		interactive(m, q, upper, sync)
	}

	if aw != nil {
		if err := aw.EndMixing(m.Cycles()); err != nil {
			return err
		}
	}

	if *text {
		for _, l := range monitor.TextScreen(m) {
			fmt.Fprintln(md.Output, l)
		}
	}

	return nil
}

// interactive runs the machine in real time until interrupted. terminal input
// is fed to the keyboard if stdin is a terminal.
func interactive(m *hardware.Machine, q *monitor.KeyQueue, upper bool, sync *mainSync) {
	sync.noIntSig()
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	input := make(chan []uint8, 16)

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		logger.Logf(logger.Allow, "run", "no keyboard input: %v", err)
	} else {
		term.CBreakMode()
		defer term.CleanUp()

		go func() {
			b := make([]byte, 16)
			for {
				n, err := os.Stdin.Read(b)
				if err != nil {
					if err != io.EOF {
						logger.Log(logger.Allow, "run", err)
					}
					return
				}
				input <- easyterm.Translate(b[:n], upper)
			}
		}()
	}

	// 60Hz frame rate
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()

	for {
		select {
		case <-intChan:
			return
		case k := <-input:
			q.Push(string(k), false)
		case <-tick.C:
			q.Feed(m)
			m.RunFrame()
		}
	}
}

func monitorMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <system ROM> [disk image 1] [disk image 2]")

	a := addMachineArgs(md)
	rewind := md.AddBool("rewind", true, "record snapshot history at the end of every frame")
	until := md.AddAddress("until", 0, "run until the PC reaches the address before starting the monitor")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	m, rom, err := newMachine(md, a)
	if err != nil {
		return err
	}

	if *rewind {
		m.EnableRewind()
	}

	mon := monitor.NewMonitor(m, rom, md.Output)
	fmt.Fprintln(md.Output, version.String())

	if isSet(md, "until") {
		if err := mon.Process(fmt.Sprintf("UNTIL $%04x", *until)); err != nil {
			fmt.Fprintf(md.Output, "* %v\n", err)
		}
	}

	// readline deals with ctrl-c itself
	sync.noIntSig()

	history, err := paths.ResourcePath("", "monitor_history")
	if err != nil {
		history = ""
	}

	return mon.Run(history)
}

func nibble(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: <disk image>...")

	sectors := md.AddBool("sectors", false, "check that every sector can be decoded")
	save := md.AddString("save", "", "save the (first) disk image as a NIB file")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	files := md.RemainingArgs()
	if len(files) == 0 {
		return curated.Errorf(ArgumentError, "a disk image is required")
	}

	for i, fn := range files {
		dl := romloader.NewLoader(fn)
		img, err := dl.Disk()
		if err != nil {
			return err
		}

		fmt.Fprintln(md.Output, img.Describe())

		if *sectors {
			if _, err := img.Sectors(); err != nil {
				fmt.Fprintf(md.Output, "* %v\n", err)
			} else {
				fmt.Fprintln(md.Output, "all sectors decoded")
			}
		}

		if i == 0 && *save != "" {
			f, err := os.Create(*save)
			if err != nil {
				return err
			}
			err = img.Save(f)
			f.Close()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func isSet(md *modalflag.Modes, name string) bool {
	var set bool
	md.Visit(func(f string) {
		if f == name {
			set = true
		}
	})
	return set
}

func statsAvailable() string {
	if statsview.Available() {
		return "available"
	}
	return "not available in this build"
}
