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

// Package prefs facilitates the storage of preferences on disk.
//
// Preferences are typed values (Bool, Int, Float, String) that are added to
// a Disk instance under a key. The Disk instance loads and saves all the
// preferences added to it in a single file. Each line of the file has the
// form:
//
//	key :: value
//
// Keys in the file that have not been added to the Disk instance are
// preserved when the file is saved. This means that more than one Disk
// instance can share the same file.
//
// Preferences can be overridden for the duration of the program with the
// command line stack. The values in the top group of the stack are used in
// preference to those on disk. See PushCommandLineStack().
//
// Functions can be attached to a preference value that are run before and
// after the value is changed. The pre-hook can prevent the change by
// returning an error.
package prefs
