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

	"github.com/jetsetilly/compositor/compositor"
	"github.com/jetsetilly/compositor/gui/sdlgl"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/modalflag"
	"github.com/jetsetilly/compositor/prefs"
	"github.com/jetsetilly/compositor/source"
	"github.com/jetsetilly/compositor/statsview"
)

// desktop implements the GuiCreator interface.
type desktop struct {
	plt *sdlgl.Platform
	cmp *compositor.Compositor

	// the frame source runs until the context is cancelled
	ctx    context.Context
	cancel context.CancelFunc
}

// must be called from the main thread.
func newDesktop(elementID string, prf *preferences) (*desktop, error) {
	plt, err := sdlgl.NewPlatform(prf.scale.Get().(int), prf.vsync.Get().(bool))
	if err != nil {
		return nil, err
	}

	cmp := compositor.NewCompositor(plt)
	err = cmp.Initialise(elementID)
	if err != nil {
		plt.Destroy()
		return nil, err
	}

	d := &desktop{
		plt: plt,
		cmp: cmp,
	}
	d.ctx, d.cancel = context.WithCancel(context.Background())

	return d, nil
}

// Service implements the GuiCreator interface.
func (d *desktop) Service() bool {
	return d.plt.Service()
}

// Destroy implements the GuiCreator interface.
func (d *desktop) Destroy() error {
	d.cancel()
	d.cmp.Stop()
	d.plt.Destroy()

	logStats(d.cmp)

	select {
	case err := <-d.cmp.Fatal():
		return err
	default:
	}

	return nil
}

func logStats(cmp *compositor.Compositor) {
	st := cmp.Stats()
	logger.Logf(logger.Allow, "stats", "%d ticks: %d frames submitted, %d dropped, %d presented",
		cmp.Ticks(), st.Submitted, st.Dropped, st.Presented)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	elementID := md.AddString("title", "canvas", "window title")
	scale := md.AddInt("scale", 0, "window scale (overrides preference)")
	fps := md.AddInt("fps", 0, "source frame rate (overrides preference)")
	solid := md.AddString("solid", "", "show a solid colour (RRGGBB)")
	prefsOverride := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")
	stats := md.AddBool("statsview", false, "launch statistics server")
	save := md.AddBool("saveprefs", false, "save preferences, including -scale and -fps")
	log := md.AddBool("log", false, "echo log to stderr")
	md.AdditionalHelp("Arguments are image files to show as a slideshow. Without\nimage files a test pattern is shown.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogging(*log)

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	prf, err := newPreferences()
	if err != nil {
		return err
	}
	if *scale > 0 {
		if err := prf.scale.Set(*scale); err != nil {
			return err
		}
	}
	if *fps > 0 {
		if err := prf.fps.Set(*fps); err != nil {
			return err
		}
	}

	if *save {
		if err := prf.save(); err != nil {
			return err
		}
	}

	if *stats || prf.statsview.Get().(bool) {
		if err := statsview.Launch(); err != nil {
			logger.Log(logger.Allow, "statsview", err)
		}
	}

	src, err := selectSource(md.RemainingArgs(), *solid, prf.hold.Get().(int))
	if err != nil {
		return err
	}

	sync.creator <- func() (GuiCreator, error) {
		return newDesktop(*elementID, prf)
	}

	var d *desktop
	select {
	case g := <-sync.creation:
		d = g.(*desktop)
	case err := <-sync.creationError:
		return err
	}

	go func() {
		err := source.Run(d.ctx, d.cmp, src, prf.fps.Get().(int))
		if err != nil {
			logger.Log(logger.Allow, "source", err)
		}
	}()

	return nil
}
