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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/compositor/compositor"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/gui/headless"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/modalflag"
	"github.com/jetsetilly/compositor/paths"
	"github.com/jetsetilly/compositor/screenshot"
	"github.com/jetsetilly/compositor/source"
)

// canvas used by headless mode.
const headlessCanvas = "headless"

type headlessOptions struct {
	width, height int
	ticks         int
	fps           int
	refresh       int
	solid         string
	hold          int
	output        string
	files         []string
}

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	width := md.AddInt("width", 512, "width of surface")
	height := md.AddInt("height", 512, "height of surface")
	ticks := md.AddInt("ticks", 60, "number of render ticks before screenshot")
	fps := md.AddInt("fps", 30, "source frame rate")
	refresh := md.AddInt("refresh", 60, "simulated display refresh rate")
	solid := md.AddString("solid", "", "show a solid colour (RRGGBB)")
	hold := md.AddInt("hold", 90, "number of frames each image is shown for")
	out := md.AddString("out", "", "screenshot filename (.png or .webp)")
	log := md.AddBool("log", false, "echo log to stderr")
	md.AdditionalHelp("Arguments are image files to show as a slideshow. Without\nimage files a test pattern is shown.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	opts := headlessOptions{
		width:   *width,
		height:  *height,
		ticks:   *ticks,
		fps:     *fps,
		refresh: *refresh,
		solid:   *solid,
		hold:    *hold,
		output:  *out,
		files:   md.RemainingArgs(),
	}

	if opts.output == "" {
		opts.output, err = paths.ResourcePath("screenshots", paths.UniqueFilename("screenshot", headlessCanvas, "png"))
		if err != nil {
			return err
		}
	}

	err = runHeadless(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "screenshot saved to %s\n", opts.output)

	return nil
}

// runHeadless runs the compositor against a software surface for a fixed
// number of ticks and saves a screenshot of the final tick.
func runHeadless(ctx context.Context, opts headlessOptions) error {
	if opts.width < 1 || opts.height < 1 {
		return curated.Errorf("surface size must be positive (%dx%d)", opts.width, opts.height)
	}
	if opts.ticks < 1 {
		return curated.Errorf("at least one tick is required (%d)", opts.ticks)
	}
	if opts.refresh < 1 {
		return curated.Errorf("refresh rate must be positive (%d)", opts.refresh)
	}

	src, err := selectSource(opts.files, opts.solid, opts.hold)
	if err != nil {
		return err
	}

	plt := headless.NewPlatform()
	plt.AddCanvas(headlessCanvas, opts.width, opts.height)

	cmp := compositor.NewCompositor(plt)
	err = cmp.Initialise(headlessCanvas)
	if err != nil {
		return err
	}
	defer logStats(cmp)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srcDone := make(chan error, 1)
	go func() {
		srcDone <- source.Run(ctx, cmp, src, opts.fps)
	}()

	ticker := time.NewTicker(time.Second / time.Duration(opts.refresh))
	defer ticker.Stop()

	// the screenshot is taken on the final tick
	var shot <-chan compositor.ScreenshotResult

	// set to nil once the source has finished so that it is not selected again
	done := srcDone

	for i := 0; i < opts.ticks; i++ {
		waiting := true
		for waiting {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case err := <-done:
				if err != nil {
					return err
				}
				logger.Logf(logger.Allow, "headless", "source finished after tick %d", i)
				done = nil
			case err := <-cmp.Fatal():
				return err
			case <-ticker.C:
				waiting = false
			}
		}

		if i == opts.ticks-1 {
			shot = cmp.Screenshot()
		}

		if !plt.Step() {
			break
		}
	}

	select {
	case err := <-cmp.Fatal():
		return err
	default:
	}

	cmp.Stop()

	if shot == nil {
		return curated.Errorf("render loop ended early")
	}

	res := <-shot
	if res.Err != nil {
		return res.Err
	}

	err = screenshot.Save(opts.output, res.Image)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "headless", "screenshot saved to %s", opts.output)

	return nil
}
