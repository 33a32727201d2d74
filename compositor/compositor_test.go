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

package compositor_test

import (
	"bytes"
	"image"
	"testing"
	"time"

	"github.com/jetsetilly/compositor/compositor"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/gui/headless"
	"github.com/jetsetilly/compositor/surface"
	"github.com/jetsetilly/compositor/test"
)

const canvasID = "canvas"

func newCompositor(t *testing.T, width int, height int) (*compositor.Compositor, *headless.Platform) {
	t.Helper()
	plt := headless.NewPlatform()
	plt.AddCanvas(canvasID, width, height)
	cmp := compositor.NewCompositor(plt)
	test.DemandSuccess(t, cmp.Initialise(canvasID))
	return cmp, plt
}

// solid returns a frame with every pixel set to the same color.
func solid(r, g, b, a byte) []byte {
	return bytes.Repeat([]byte{r, g, b, a}, frame.Width*frame.Height)
}

// readPixels reads back the surface through the headless platform.
func readPixels(t *testing.T, plt *headless.Platform) *image.RGBA {
	t.Helper()
	img, err := plt.Surface(canvasID).ReadPixels()
	test.DemandSuccess(t, err)
	return img
}

// every pixel in the image must be the same color.
func expectUniform(t *testing.T, img *image.RGBA, r, g, b, a byte) {
	t.Helper()
	for i := 0; i < len(img.Pix); i += 4 {
		p := img.Pix[i : i+4]
		if p[0] != r || p[1] != g || p[2] != b || p[3] != a {
			t.Fatalf("pixel %d: got %v, wanted %v", i/4, p, []byte{r, g, b, a})
		}
	}
}

func TestInitialiseErrors(t *testing.T) {
	plt := headless.NewPlatform()
	cmp := compositor.NewCompositor(plt)

	err := cmp.Initialise("missing")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, surface.SurfaceUnavailable))
	test.ExpectFailure(t, plt.Pending())

	err = cmp.Initialise("missing")
	test.ExpectSuccess(t, curated.Is(err, compositor.AlreadyInitialised))

	// the render loop was never started so a screenshot can not be taken
	res := <-cmp.Screenshot()
	test.ExpectSuccess(t, curated.Is(res.Err, compositor.NotInitialised))
}

func TestInitialiseDriverFaults(t *testing.T) {
	plt := headless.NewPlatform()
	plt.AddCanvas(canvasID, 64, 64)

	plt.SetFault(headless.FaultCompile)
	err := compositor.NewCompositor(plt).Initialise(canvasID)
	test.ExpectSuccess(t, curated.Has(err, surface.ShaderCompileError))

	plt.SetFault(headless.FaultLink)
	err = compositor.NewCompositor(plt).Initialise(canvasID)
	test.ExpectSuccess(t, curated.Has(err, surface.ProgramLinkError))

	test.ExpectFailure(t, plt.Pending())
}

func TestInitialFrame(t *testing.T) {
	cmp, plt := newCompositor(t, 300, 150)

	// sentinel frame is drawn during initialisation
	test.ExpectSuccess(t, plt.Surface(canvasID).Mipmapped())
	expectUniform(t, readPixels(t, plt), 255, 255, 255, 255)

	// and still there after the first tick with no frame submitted
	test.DemandSuccess(t, plt.Step())
	expectUniform(t, readPixels(t, plt), 255, 255, 255, 255)

	test.ExpectEquality(t, cmp.Ticks(), 1)
	test.ExpectEquality(t, plt.Surface(canvasID).Uploads(), 0)
	test.ExpectSuccess(t, plt.Pending())
}

func TestChannelSwap(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	test.DemandSuccess(t, cmp.SubmitFrame(solid(10, 20, 30, 255)))
	test.DemandSuccess(t, plt.Step())

	expectUniform(t, readPixels(t, plt), 30, 20, 10, 255)
}

func TestOrientation(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	// top half red, bottom half blue
	data := solid(0, 0, 255, 255)
	for i := 0; i < len(data)/2; i += 4 {
		data[i], data[i+2] = 255, 0
	}
	test.DemandSuccess(t, cmp.SubmitFrame(data))
	test.DemandSuccess(t, plt.Step())

	img := readPixels(t, plt)

	// channels are swapped by the fragment stage
	top := img.RGBAAt(frame.Width/2, 0)
	bottom := img.RGBAAt(frame.Width/2, frame.Height-1)
	test.ExpectEquality(t, top.B, 255)
	test.ExpectEquality(t, top.R, 0)
	test.ExpectEquality(t, bottom.R, 255)
	test.ExpectEquality(t, bottom.B, 0)
}

func TestPersistence(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	test.DemandSuccess(t, cmp.SubmitFrame(solid(0, 128, 0, 255)))
	test.DemandSuccess(t, plt.Step())
	first := readPixels(t, plt)

	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, plt.Step())
		test.ExpectSuccess(t, bytes.Equal(first.Pix, readPixels(t, plt).Pix), i)
	}

	// only the first tick uploaded anything
	test.ExpectEquality(t, plt.Surface(canvasID).Uploads(), 1)
	test.ExpectEquality(t, plt.Surface(canvasID).Draws(), 12)

	st := cmp.Stats()
	test.ExpectEquality(t, st.Submitted, 1)
	test.ExpectEquality(t, st.Presented, 1)
	test.ExpectEquality(t, st.Dropped, 0)
}

func TestBusyDrop(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	test.DemandSuccess(t, cmp.SubmitFrame(solid(1, 1, 1, 255)))
	test.DemandSuccess(t, cmp.SubmitFrame(solid(2, 2, 2, 255)))
	test.DemandSuccess(t, plt.Step())

	// the first frame wins
	expectUniform(t, readPixels(t, plt), 1, 1, 1, 255)

	st := cmp.Stats()
	test.ExpectEquality(t, st.Submitted, 1)
	test.ExpectEquality(t, st.Dropped, 1)

	// buffer is free again after the tick
	test.DemandSuccess(t, cmp.SubmitFrame(solid(3, 3, 3, 255)))
	test.DemandSuccess(t, plt.Step())
	expectUniform(t, readPixels(t, plt), 3, 3, 3, 255)
}

func TestSizeMismatch(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	err := cmp.SubmitFrame(make([]byte, frame.BufferSize-1))
	test.ExpectSuccess(t, curated.Is(err, frame.SizeMismatch))

	test.DemandSuccess(t, plt.Step())
	expectUniform(t, readPixels(t, plt), 255, 255, 255, 255)
	test.ExpectEquality(t, cmp.Stats().Submitted, 0)
}

func TestStop(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	test.DemandSuccess(t, plt.Step())
	cmp.Stop()
	test.ExpectSuccess(t, cmp.Stopped())

	// the tick that was already registered runs but does nothing
	test.ExpectSuccess(t, plt.Step())
	test.ExpectFailure(t, plt.Pending())
	test.ExpectFailure(t, plt.Step())
	test.ExpectEquality(t, cmp.Ticks(), 1)

	res := <-cmp.Screenshot()
	test.ExpectFailure(t, res.Err == nil)
}

func TestUploadFailure(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	plt.SetFault(headless.FaultUpload)
	test.DemandSuccess(t, cmp.SubmitFrame(solid(10, 20, 30, 255)))
	test.DemandSuccess(t, plt.Step())

	test.ExpectSuccess(t, cmp.Stopped())
	test.ExpectFailure(t, plt.Pending())

	select {
	case err := <-cmp.Fatal():
		test.ExpectSuccess(t, curated.Has(err, surface.TextureUploadError))
	default:
		t.Fatalf("expected fatal error")
	}

	// the frame was never presented
	test.ExpectEquality(t, cmp.Stats().Presented, 0)
}

func TestScreenshot(t *testing.T) {
	cmp, plt := newCompositor(t, 64, 32)

	test.DemandSuccess(t, cmp.SubmitFrame(solid(200, 100, 50, 255)))

	finish := cmp.Screenshot()

	// a second request while the first is pending fails immediately
	res := <-cmp.Screenshot()
	test.ExpectFailure(t, res.Err == nil)

	test.DemandSuccess(t, plt.Step())

	select {
	case res = <-finish:
	default:
		t.Fatalf("screenshot not serviced by render tick")
	}
	test.DemandSuccess(t, res.Err)
	test.ExpectEquality(t, res.Image.Bounds(), image.Rect(0, 0, 64, 32))
	expectUniform(t, res.Image, 50, 100, 200, 255)
}

// the screenshot request must have been answered with LoopStopped.
func expectStoppedScreenshot(t *testing.T, finish <-chan compositor.ScreenshotResult) {
	t.Helper()
	select {
	case res := <-finish:
		test.ExpectSuccess(t, curated.Is(res.Err, compositor.LoopStopped))
		test.ExpectEquality(t, res.Image == nil, true)
	case <-time.After(time.Second):
		t.Fatalf("screenshot request left waiting")
	}
}

func TestScreenshotAfterStop(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	finish := cmp.Screenshot()
	cmp.Stop()
	test.ExpectSuccess(t, plt.Step())
	test.ExpectFailure(t, plt.Pending())
	expectStoppedScreenshot(t, finish)
}

func TestScreenshotAfterUploadFailure(t *testing.T) {
	cmp, plt := newCompositor(t, frame.Width, frame.Height)

	plt.SetFault(headless.FaultUpload)
	test.DemandSuccess(t, cmp.SubmitFrame(solid(10, 20, 30, 255)))

	finish := cmp.Screenshot()
	test.DemandSuccess(t, plt.Step())
	test.ExpectSuccess(t, cmp.Stopped())
	expectStoppedScreenshot(t, finish)

	// requests made after the halt are answered immediately
	expectStoppedScreenshot(t, cmp.Screenshot())
}
