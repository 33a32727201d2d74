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
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/compositor/prefs"
	"github.com/jetsetilly/compositor/source"
	"github.com/jetsetilly/compositor/test"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("#0a141e")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.R, 10)
	test.ExpectEquality(t, c.G, 20)
	test.ExpectEquality(t, c.B, 30)
	test.ExpectEquality(t, c.A, 255)

	_, err = parseColor("0a141")
	test.ExpectFailure(t, err)
	_, err = parseColor("zzzzzz")
	test.ExpectFailure(t, err)
}

func TestSelectSource(t *testing.T) {
	src, err := selectSource(nil, "", 1)
	test.DemandSuccess(t, err)
	_, ok := src.(*source.Pattern)
	test.ExpectSuccess(t, ok)

	src, err = selectSource(nil, "ff0000", 1)
	test.DemandSuccess(t, err)
	_, ok = src.(source.Solid)
	test.ExpectSuccess(t, ok)

	_, err = selectSource([]string{"a.png"}, "ff0000", 1)
	test.ExpectFailure(t, err)
}

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefsFile)

	prf, err := loadPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.scale.Get().(int), 4)
	test.ExpectEquality(t, prf.fps.Get().(int), 30)

	test.ExpectFailure(t, prf.scale.Set(0))
	test.ExpectFailure(t, prf.fps.Set(1000))
	test.ExpectSuccess(t, prf.fps.Set(25))
	test.DemandSuccess(t, prf.save())

	prf, err = loadPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.fps.Get().(int), 25)

	// session override from the command line
	prefs.PushCommandLineStack("compositor.scale::2")
	prf, err = loadPreferences(pth)
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.scale.Get().(int), 2)
}

func TestHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")

	err := runHeadless(context.Background(), headlessOptions{
		width:   64,
		height:  32,
		ticks:   10,
		fps:     200,
		refresh: 500,
		solid:   "0a141e",
		hold:    1,
		output:  out,
	})
	test.DemandSuccess(t, err)

	f, err := os.Open(out)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 64, 32))
}

func TestHeadlessErrors(t *testing.T) {
	opts := headlessOptions{width: 0, height: 32, ticks: 1, fps: 30, refresh: 60, hold: 1}
	test.ExpectFailure(t, runHeadless(context.Background(), opts))

	opts = headlessOptions{width: 32, height: 32, ticks: 1, fps: 30, refresh: 60, hold: 1,
		output: filepath.Join(t.TempDir(), "shot.gif")}
	test.ExpectFailure(t, runHeadless(context.Background(), opts))
}

// the frame source ends when the context is cancelled. the render loop must
// not carry on ticking without it and no screenshot is saved.
func TestHeadlessCancelled(t *testing.T) {
	out := filepath.Join(t.TempDir(), "shot.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runHeadless(ctx, headlessOptions{
		width:   16,
		height:  16,
		ticks:   1000,
		fps:     60,
		refresh: 60,
		hold:    1,
		output:  out,
	})
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))

	_, err = os.Stat(out)
	test.ExpectSuccess(t, os.IsNotExist(err))
}
