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

// Package screenshot saves images read back from the compositor surface.
package screenshot

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/jetsetilly/compositor/curated"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "screenshot: unsupported format: %s"
)

// Save the image to the named file. The format is chosen by the file
// extension. Supported extensions are .png and .webp (lossless).
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))

	var encode func(*os.File) error
	switch ext {
	case ".png":
		encode = func(f *os.File) error {
			return png.Encode(f, img)
		}
	case ".webp":
		encode = func(f *os.File) error {
			return nativewebp.Encode(f, img, nil)
		}
	default:
		return curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	err = encode(f)
	if err != nil {
		_ = f.Close()
		return curated.Errorf("screenshot: %v", err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
