// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with Errorf(), which takes a pattern and a list
// of values, in the same way as fmt.Errorf().
//
// The pattern identifies the error. Packages declare the patterns they return
// as constants so that callers can test for them:
//
//	const UnsupportedMapper = "cartridge: unsupported mapper (%d)"
//
//	err := curated.Errorf(UnsupportedMapper, 5)
//	if curated.Is(err, cartridge.UnsupportedMapper) {
//		fmt.Println("cannot play this cartridge")
//	}
//
// Has() is similar to Is() but searches the values of a curated error for a
// matching pattern too. A cartridge error wrapped by the loader is still found:
//
//	f := curated.Errorf("gophernes: %v", err)
//	curated.Has(f, cartridge.UnsupportedMapper) // true
//	curated.Is(f, cartridge.UnsupportedMapper)  // false
//
// IsAny() answers whether the error was created by Errorf() at all. An
// uncurated error usually indicates an unexpected condition.
//
// The Error() string is normalised such that duplicate adjacent parts of the
// message are removed. This means that a function can wrap an error with its
// own prefix without worrying whether the called function used the same
// prefix.
//
// Curated errors also implement Unwrap() so they work with errors.Is() and
// errors.As() from the standard library.
package curated
