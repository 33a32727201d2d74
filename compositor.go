// This file is part of Compositor.
//
// Compositor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Compositor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Compositor.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/modalflag"
	"github.com/jetsetilly/compositor/performance"
	"github.com/jetsetilly/compositor/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator is implemented by types that must be serviced by the main
// thread.
type GuiCreator interface {
	// cleanup resources used by the gui. the returned error is the reason
	// the gui stopped, if there was one
	Destroy() error

	// Service() must only be called from the main thread. returns false if
	// the gui has finished
	Service() bool
}

// communication between the launch() goroutine and the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// SDL and OpenGL calls must be made from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error
			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil && !gui.Service() {
				done = true
			}
		}
	}

	if gui != nil {
		if err := gui.Destroy(); err != nil {
			fmt.Printf("* %v\n", err)
			exitVal = 20
		}
	}

	os.Exit(exitVal)
}

// launch is run in a goroutine. it parses the command line and runs the
// selected mode.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		// the main thread services the window until it is closed
		err = run(md, sync)
		if err == nil {
			return
		}

	case "HEADLESS":
		err = headless(md, os.Stdout)

	case "PERFORMANCE":
		err = perform(md, os.Stdout)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	width := md.AddInt("width", 512, "width of surface")
	height := md.AddInt("height", 512, "height of surface")
	profile := md.AddString("profile", "none", "write profiles: none, cpu, mem, all")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	var prf performance.Profile
	switch strings.ToLower(*profile) {
	case "none":
		prf = performance.ProfileNone
	case "cpu":
		prf = performance.ProfileCPU
	case "mem":
		prf = performance.ProfileMem
	case "all":
		prf = performance.ProfileCPU | performance.ProfileMem
	default:
		return curated.Errorf("unknown profile type (%s)", *profile)
	}

	_, err = performance.Check(output, prf, ".", *duration, *width, *height)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Println(v)
	if *revision {
		fmt.Println(r)
	}

	return nil
}

// setLogging echoes the central log to stderr.
func setLogging(echo bool) {
	if echo {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
}
