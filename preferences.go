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
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/paths"
	"github.com/jetsetilly/compositor/prefs"
)

// name of the preferences file in the resource directory.
const prefsFile = "preferences"

type preferences struct {
	dsk *prefs.Disk

	// window size is the frame size multiplied by scale
	scale prefs.Int

	// synchronise with the display's vertical retrace
	vsync prefs.Bool

	// rate at which the frame source produces frames
	fps prefs.Int

	// number of frames each image in a slideshow is shown for
	hold prefs.Int

	// launch the statistics server on startup
	statsview prefs.Bool
}

func newPreferences() (*preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}
	return loadPreferences(pth)
}

func loadPreferences(pth string) (*preferences, error) {
	p := &preferences{}
	p.setDefaults()

	p.scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > 16 {
			return curated.Errorf("scale must be between 1 and 16 (%d)", s)
		}
		return nil
	})

	p.fps.SetHookPre(func(v prefs.Value) error {
		if f := v.(int); f < 1 || f > 240 {
			return curated.Errorf("fps must be between 1 and 240 (%d)", f)
		}
		return nil
	})

	p.hold.SetHookPre(func(v prefs.Value) error {
		if h := v.(int); h < 1 {
			return curated.Errorf("hold must be at least 1 (%d)", h)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{key: "compositor.scale", v: &p.scale},
		{key: "compositor.vsync", v: &p.vsync},
		{key: "compositor.fps", v: &p.fps},
		{key: "compositor.hold", v: &p.hold},
		{key: "compositor.statsview", v: &p.statsview},
	} {
		err = p.dsk.Add(e.key, e.v)
		if err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() {
	_ = p.scale.Set(4)
	_ = p.vsync.Set(true)
	_ = p.fps.Set(30)
	_ = p.hold.Set(90)
	_ = p.statsview.Set(false)
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
