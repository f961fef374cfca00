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

package logger

import "io"

// Permission is consulted by Log() and Logf() before an entry is added. The
// hardware instance implements Permission so that only the main emulation
// adds to the log. Regression and performance instances are silent.
type Permission interface {
	AllowLogging() bool
}

type allowAll struct{}

func (allowAll) AllowLogging() bool { return true }

// Allow is the Permission for log entries that are not made on behalf of a
// hardware instance.
var Allow Permission = allowAll{}

// the log shared by the whole program.
var central = newLogger(256)

func permitted(perm Permission) bool {
	return perm == Allow || perm == nil || perm.AllowLogging()
}

// Log adds an entry to the log. Consecutive identical entries are collapsed
// into one.
func Log(perm Permission, tag, detail string) {
	if permitted(perm) {
		central.log(tag, detail)
	}
}

// Logf is like Log() but the detail is a format string.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if permitted(perm) {
		central.logf(tag, detail, args...)
	}
}

// Clear removes every entry.
func Clear() {
	central.clear()
}

// Write every entry to the output.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the most recent entries to the output.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho writes each new entry to the output as it is made. A nil writer
// stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
