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

// Package paths resolves the location of files used by the application, such
// as the preferences file and screenshots.
//
// If a directory named ".compositor" exists in the current working directory
// then that directory is used. This is useful during development. Otherwise
// the "compositor" directory in the user's configuration directory is used
// (see os.UserConfigDir()).
package paths
