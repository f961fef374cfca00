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

package regression

import (
	"strings"

	"github.com/jetsetilly/gophernes/curated"
)

// Mode is the type of output that is digested by a regression entry.
type Mode int

// List of valid Mode values.
const (
	ModeVideo Mode = iota
	ModeAudio
)

// UnknownMode is the pattern for errors returned by ParseMode().
const UnknownMode = "regression: unknown digest mode (%s)"

func (m Mode) String() string {
	switch m {
	case ModeVideo:
		return "video"
	case ModeAudio:
		return "audio"
	}
	return "unknown"
}

// ParseMode returns the Mode named by the string. The comparison is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "video":
		return ModeVideo, nil
	case "audio":
		return ModeAudio, nil
	}
	return ModeVideo, curated.Errorf(UnknownMode, s)
}
