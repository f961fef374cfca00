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

package input

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/state"
)

// Sentinal error patterns.
const (
	QueueFull   = "input: pushed event queue is full: input dropped"
	InvalidPort = "input: invalid port (%d)"
)

// NumPorts is the number of controller ports.
const NumPorts = 2

// Event is a change in the state of a button on a controller.
type Event struct {
	Port    int
	Button  Button
	Pressed bool
}

// Input is the pair of controller ports.
type Input struct {
	Ports [NumPorts]Controller

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput() *Input {
	return &Input{
		pushed: make(chan Event, 64),
	}
}

// HandleInputEvent applies the event to the controller immediately. Must only
// be called from the emulation goroutine.
func (inp *Input) HandleInputEvent(ev Event) error {
	if ev.Port < 0 || ev.Port >= NumPorts {
		return curated.Errorf(InvalidPort, ev.Port)
	}
	inp.Ports[ev.Port].SetButton(ev.Button, ev.Pressed)
	return nil
}

// PushEvent queues an event to be applied on the next call to Process(). It
// is safe to call PushEvent() from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf(QueueFull)
	}
	return nil
}

// Process applies all pushed events.
func (inp *Input) Process() error {
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleInputEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// Strobe is called on writes to 0x4016. Bit 0 of the data is the strobe line
// of both controllers.
func (inp *Input) Strobe(data uint8) {
	for i := range inp.Ports {
		inp.Ports[i].Strobe(data&0x01 == 0x01)
	}
}

// Read is called on reads of 0x4016 (port 0) and 0x4017 (port 1).
func (inp *Input) Read(port int) uint8 {
	return inp.Ports[port].Read()
}

// Peek returns the value that Read() would return without side effects.
func (inp *Input) Peek(port int) uint8 {
	return inp.Ports[port].Peek()
}

// SaveState writes the state of the controllers to the encoder.
func (inp *Input) SaveState(enc *state.Encoder) {
	enc.Section("JOYP")
	for _, c := range inp.Ports {
		enc.Uint8(uint8(c.buttons))
		enc.Uint8(c.shift)
		enc.Bool(c.strobe)
	}
}

// LoadState restores the state of the controllers from the decoder.
func (inp *Input) LoadState(dec *state.Decoder) {
	dec.Section("JOYP")
	for i := range inp.Ports {
		inp.Ports[i].buttons = Button(dec.Uint8())
		inp.Ports[i].shift = dec.Uint8()
		inp.Ports[i].strobe = dec.Bool()
	}
}
