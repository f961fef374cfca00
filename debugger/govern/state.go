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

package govern

// State is the condition of the NES as seen by whatever is driving it. The
// console's Run() loop consults a State returned by its continue check on
// every instruction.
type State int

// The Initialising state is never seen by Run(). It is the state of a driver
// that has not yet attached a cartridge.
const (
	Initialising State = iota

	// the console is powered but no instructions are being executed
	Paused

	// instructions are being executed one at a time at the request of the
	// debugger
	Stepping

	// instructions are being executed continuously
	Running

	// Run() returns as soon as it sees this state
	Ending
)

var stateNames = [...]string{"initialising", "paused", "stepping", "running", "ending"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown state"
	}
	return stateNames[s]
}

// Active returns true if the state is one in which the CPU executes
// instructions.
func (s State) Active() bool {
	return s == Stepping || s == Running
}
