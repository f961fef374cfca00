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

// Package digest contains implementations of the frame and audio sink
// interfaces such that a cryptographic hash is produced. The hash can then be
// used to compare output from subsequent emulation executions. If a new hash
// differs from a previously recorded value then something has changed. This
// is the basis for regression tests of the video and audio output.
//
// The use of SHA-1 is fine because this is not a cryptographic task.
package digest

// Digest implementations return a hash of the output received so far.
type Digest interface {
	Hash() string
	ResetDigest()
}
