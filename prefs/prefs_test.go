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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/prefs"
	"github.com/jetsetilly/compositor/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "preferences")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.0))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set(" 99 "))
	test.ExpectFailure(t, w.Set("foo"))
	test.ExpectEquality(t, w.Get().(int), 99)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 99\n")
}

func TestFloatAndString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var f prefs.Float
	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("float", &f))
	test.ExpectSuccess(t, dsk.Add("string", &s))

	test.ExpectEquality(t, f.Get().(float64), 0.0)
	test.ExpectSuccess(t, f.Set("1.5"))
	test.ExpectSuccess(t, s.Set("hello world"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "float :: 1.500\nstring :: hello world\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// loading a file that does not exist is not an error
	var v prefs.Int
	test.DemandSuccess(t, dsk.Add("scale", &v))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.Get().(int), 0)

	test.ExpectSuccess(t, v.Set(3))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sharing the same file
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var w prefs.Int
	var b prefs.Bool
	test.DemandSuccess(t, dsk2.Add("scale", &w))
	test.DemandSuccess(t, dsk2.Add("vsync", &b))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, w.Get().(int), 3)

	test.ExpectSuccess(t, b.Set(true))
	test.DemandSuccess(t, dsk2.Save())
	cmpPrefFile(t, fn, "scale :: 3\nvsync :: true\n")

	// unknown keys are preserved when saving
	dsk3, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var o prefs.String
	test.DemandSuccess(t, dsk3.Add("other", &o))
	test.ExpectSuccess(t, o.Set("foo"))
	test.DemandSuccess(t, dsk3.Save())
	cmpPrefFile(t, fn, "other :: foo\nscale :: 3\nvsync :: true\n")
}

func TestNotPrefsFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("important data\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.DemandSuccess(t, dsk.Add("scale", &v))
	test.ExpectFailure(t, dsk.Load())
	test.ExpectFailure(t, dsk.Save())

	// file has not been overwritten
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "important data\n")
}

func TestAdd(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("key", &v))
	test.ExpectFailure(t, dsk.Add("", &v))
	test.ExpectFailure(t, dsk.Add(" key", &v))
	test.ExpectFailure(t, dsk.Add("a :: b", &v))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 1 {
			return curated.Errorf("value too small")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, post, 2)

	// pre-hook prevents the change
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 2)
	test.ExpectEquality(t, post, 2)
}

func TestReset(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	test.DemandSuccess(t, dsk.Add("b", &b))
	test.DemandSuccess(t, dsk.Add("s", &s))
	test.DemandSuccess(t, b.Set(true))
	test.DemandSuccess(t, s.Set("foo"))

	test.DemandSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, s.String(), "")
}
