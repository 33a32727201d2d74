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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The label is included in the
// filename if it is not empty. The extension should not include the leading
// period.
func UniqueFilename(prepend string, label string, ext string) string {
	timestamp := time.Now().Format("20060102_150405")

	var fn string
	label = strings.TrimSpace(label)
	if label != "" {
		fn = fmt.Sprintf("%s_%s_%s", prepend, label, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return fn
	}
	return fmt.Sprintf("%s.%s", fn, ext)
}
