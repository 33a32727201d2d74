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

package performance

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/jetsetilly/compositor/compositor"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/gui/headless"
	"github.com/jetsetilly/compositor/source"
)

// Results of a call to Check().
type Results struct {
	Duration time.Duration
	Ticks    uint64
	Stats    frame.Stats
}

// TicksPerSecond returns the rate at which the render loop ran.
func (r Results) TicksPerSecond() float64 {
	return float64(r.Ticks) / r.Duration.Seconds()
}

// PresentedPerSecond returns the rate at which new frames were presented.
func (r Results) PresentedPerSecond() float64 {
	return float64(r.Stats.Presented) / r.Duration.Seconds()
}

// DropRate returns the percentage of submitted frames that were dropped.
func (r Results) DropRate() float64 {
	total := r.Stats.Submitted + r.Stats.Dropped
	if total == 0 {
		return 0
	}
	return 100 * float64(r.Stats.Dropped) / float64(total)
}

func (r Results) String() string {
	return fmt.Sprintf("%.2f ticks/sec, %.2f frames/sec (%d ticks in %.2f seconds) %.1f%% dropped",
		r.TicksPerSecond(), r.PresentedPerSecond(), r.Ticks, r.Duration.Seconds(), r.DropRate())
}

// Check runs the compositor on a software surface of the given size for the
// specified duration. Profiles are written to profileDir.
func Check(output io.Writer, profile Profile, profileDir string, duration time.Duration, width int, height int) (Results, error) {
	var res Results

	if duration <= 0 {
		return res, curated.Errorf("performance: duration must be positive (%v)", duration)
	}

	plt := headless.NewPlatform()
	plt.AddCanvas("performance", width, height)

	cmp := compositor.NewCompositor(plt)
	err := cmp.Initialise("performance")
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	err = cpuProfile(profile, filepath.Join(profileDir, CPUProfileFile), func() error {
		done := make(chan struct{})
		var wg sync.WaitGroup

		// producer submits frames as quickly as possible
		wg.Add(1)
		go func() {
			defer wg.Done()
			src := source.NewPattern()
			data := make([]byte, frame.BufferSize)
			for {
				select {
				case <-done:
					return
				default:
				}
				_ = src.Next(data)
				_ = cmp.SubmitFrame(data)
			}
		}()

		start := time.Now()
		timesUp := time.After(duration)

	loop:
		for {
			select {
			case <-timesUp:
				break loop
			case err := <-cmp.Fatal():
				close(done)
				wg.Wait()
				return err
			default:
				plt.Step()
			}
		}

		res.Duration = time.Since(start)
		close(done)
		wg.Wait()

		return nil
	})

	cmp.Stop()

	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}

	res.Ticks = cmp.Ticks()
	res.Stats = cmp.Stats()

	if output != nil {
		fmt.Fprintln(output, res.String())
	}

	return res, memProfile(profile, filepath.Join(profileDir, MemProfileFile))
}
