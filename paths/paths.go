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
	"os"
	"path/filepath"

	"github.com/jetsetilly/compositor/curated"
)

const localResourcePath = ".compositor"
const configResourcePath = "compositor"

// ResourcePath returns the path of the resource in the base resource
// directory. Empty path elements are ignored.
//
// The directory containing the resource is created if it does not exist.
// The resource itself is not created.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return resourcePath(base, resource...)
}

func resourcePath(base string, resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	pth := filepath.Join(p...)

	err := os.MkdirAll(filepath.Dir(pth), 0o700)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return pth, nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourcePath), nil
}
