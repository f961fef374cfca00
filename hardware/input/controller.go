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
	"fmt"
	"strings"
)

// Button is a single button on the standard controller. The value of the
// Button is the bit it occupies in the controller's shift register.
type Button uint8

// List of valid Button values.
const (
	A Button = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

var buttonNames = []string{"A", "B", "Select", "Start", "Up", "Down", "Left", "Right"}

func (b Button) String() string {
	s := strings.Builder{}
	for i, n := range buttonNames {
		if b&(1<<i) != 0 {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(n)
		}
	}
	if s.Len() == 0 {
		return "none"
	}
	return s.String()
}

// ParseButton returns the button with the name. The comparison is case
// insensitive.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(1 << i), true
		}
	}
	return 0, false
}

// Controller is the standard NES controller.
type Controller struct {
	buttons Button
	shift   uint8
	strobe  bool
}

func (c *Controller) String() string {
	return fmt.Sprintf("%s [shift %08b]", c.buttons, c.shift)
}

// Buttons returns the buttons currently held down.
func (c *Controller) Buttons() Button {
	return c.buttons
}

// SetButton presses or releases the button.
func (c *Controller) SetButton(b Button, pressed bool) {
	if pressed {
		c.buttons |= b
	} else {
		c.buttons &^= b
	}
	if c.strobe {
		c.shift = uint8(c.buttons)
	}
}

// Strobe sets the state of the strobe line.
func (c *Controller) Strobe(high bool) {
	c.strobe = high
	if high {
		c.shift = uint8(c.buttons)
	}
}

// Read the next bit from the shift register. Ones are shifted in from the top
// so that reads after the eighth return 1.
func (c *Controller) Read() uint8 {
	if c.strobe {
		return uint8(c.buttons & A)
	}
	v := c.shift & 0x01
	c.shift = (c.shift >> 1) | 0x80
	return v
}

// Peek returns the value that would be returned by Read() without shifting
// the register.
func (c *Controller) Peek() uint8 {
	if c.strobe {
		return uint8(c.buttons & A)
	}
	return c.shift & 0x01
}
