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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf(). The pattern
// is remembered and is used to identify the error later:
//
//	const SizeMismatch = "frame: size mismatch: %d bytes (wanted %d)"
//
//	err := curated.Errorf(SizeMismatch, len(data), frame.BufferSize)
//
//	if curated.Is(err, SizeMismatch) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// error chain. An error value is part of the chain if it was passed as one of
// the placeholder values.
//
//	f := curated.Errorf("compositor: %v", err)
//
//	curated.Is(f, SizeMismatch)  // false
//	curated.Has(f, SizeMismatch) // true
//
// Sentinal patterns should be stored as const strings in the package that
// raises them, suitably named and commented.
//
// The Error() function normalises the message by removing adjacent duplicate
// parts, where parts are separated by the sub-string ": ". This means that
// callers can wrap with the package prefix without worrying about whether the
// callee has already done so:
//
//	compositor: compositor: surface unavailable
//
// becomes
//
//	compositor: surface unavailable
//
// Curated errors implement Unwrap() so errors.Is() and errors.As() from the
// standard library see any error values in the chain.
package curated
