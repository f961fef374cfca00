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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gophernes/curated"
)

// ConversionError is returned by Set() when the value can not be converted to
// the type of the preference.
const ConversionError = "prefs: %v can not be used as a %s preference"

// Value is the type used to set and get preference values. The dynamic type
// depends on the preference: bool for Bool, int for Int and string for String.
type Value interface{}

// pref is the interface the Disk type uses to save and load a preference.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hook is embedded in each preference type. The function is called after
// every successful Set().
type hook struct {
	post func(value Value) error
}

// SetHookPost sets the function to be called after the preference has been
// changed.
func (h *hook) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hook) changed(value Value) error {
	if h.post == nil {
		return nil
	}
	return h.post(value)
}

// Bool is a boolean preference. The zero value is false.
type Bool struct {
	hook
	v atomic.Bool
}

// Set accepts a bool or a string. Strings other than "true" (in any case) are
// treated as false.
func (p *Bool) Set(value Value) error {
	var b bool
	switch v := value.(type) {
	case bool:
		b = v
	case string:
		b = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return curated.Errorf(ConversionError, value, "bool")
	}
	p.v.Store(b)
	return p.changed(b)
}

// Get returns a bool.
func (p *Bool) Get() Value {
	return p.v.Load()
}

// Reset the preference to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.v.Load())
}

// Int is an integer preference. The zero value is 0.
type Int struct {
	hook
	v atomic.Int64
}

// Set accepts an int or a string containing a decimal number.
func (p *Int) Set(value Value) error {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case string:
		var err error
		n, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(ConversionError, strconv.Quote(v), "int")
		}
	default:
		return curated.Errorf(ConversionError, value, "int")
	}
	p.v.Store(int64(n))
	return p.changed(n)
}

// Get returns an int.
func (p *Int) Get() Value {
	return int(p.v.Load())
}

// Reset the preference to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

func (p *Int) String() string {
	return strconv.FormatInt(p.v.Load(), 10)
}

// String is a string preference. The zero value is the empty string.
type String struct {
	hook
	v atomic.Value
}

// Set accepts any value. Values that are not strings are formatted with the
// %v verb.
func (p *String) Set(value Value) error {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	p.v.Store(s)
	return p.changed(s)
}

// Get returns a string.
func (p *String) Get() Value {
	return p.String()
}

// Reset the preference to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

func (p *String) String() string {
	if s, ok := p.v.Load().(string); ok {
		return s
	}
	return ""
}
