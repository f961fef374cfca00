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

// Package test contains helper functions that remove common boilerplate from
// the tests in the rest of the project.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// the remainder of the test depends on the value being correct. For example,
// demanding that a cartridge loads before testing its mapper.
//
// ExpectSuccess() and ExpectFailure() interpret bool and error values. A nil
// value is a success, because that is how Go indicates that no error has
// occurred.
//
// CompareWriter implements io.Writer and should be used to capture output for
// comparison with a predefined string.
package test
